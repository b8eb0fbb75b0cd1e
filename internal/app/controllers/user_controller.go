package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusboard/campusboard/internal/app/models/dto"
	"github.com/campusboard/campusboard/internal/app/services"
	"github.com/campusboard/campusboard/internal/middleware"
)

// UserController handles user account operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetAllUsers lists all users
// @Summary List users
// @Description Retrieves all users ascending by full name
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch users")
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// CreateUser creates a user together with its sign-in identity
// @Summary Create a user
// @Description Provisions a sign-in identity and stores the user profile under the same ID
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User information"
// @Success 201 {object} dto.CreatedUserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid user data").WithDetails(err.Error()))
		return
	}

	id, err := c.userService.CreateUser(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to create user")
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedUserResponse{
		ID:      id,
		Message: "User created successfully",
	})
}

// DeleteUser deletes a user and its sign-in identity
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.userService.DeleteUser(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to delete user")
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}
