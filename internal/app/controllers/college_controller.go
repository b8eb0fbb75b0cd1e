package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusboard/campusboard/internal/app/models"
	"github.com/campusboard/campusboard/internal/app/models/dto"
	"github.com/campusboard/campusboard/internal/app/services"
	"github.com/campusboard/campusboard/internal/middleware"
)

// CollegeController handles college-related operations
type CollegeController struct {
	collegeService services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
	}
}

// GetAllColleges lists all colleges
// @Summary List colleges
// @Description Retrieves all colleges ascending by name
// @Tags colleges
// @Produce json
// @Success 200 {array} models.College
// @Failure 500 {object} dto.ErrorResponse
// @Router /colleges [get]
func (c *CollegeController) GetAllColleges(ctx *gin.Context) {
	colleges, err := c.collegeService.GetAllColleges(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch colleges")
		return
	}

	ctx.JSON(http.StatusOK, colleges)
}

// CreateCollege creates a new college
// @Summary Create a college
// @Tags colleges
// @Accept json
// @Produce json
// @Param request body dto.CollegeRequest true "College information"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /colleges [post]
func (c *CollegeController) CreateCollege(ctx *gin.Context) {
	var req dto.CollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid college data").WithDetails(err.Error()))
		return
	}

	college := &models.College{Name: req.Name, Abbrv: req.Abbrv}
	id, err := c.collegeService.CreateCollege(ctx, college)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to create college")
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{
		ID:      id,
		Message: "College created successfully",
	})
}

// InspectCollege reports the state of a college and its programmes
// @Summary Inspect a college
// @Description Diagnostic view of a college document and its programme sub-collection
// @Tags colleges
// @Produce json
// @Param id path string true "College ID"
// @Success 200 {object} dto.CollegeInspection
// @Failure 500 {object} dto.ErrorResponse
// @Router /colleges/{id} [get]
func (c *CollegeController) InspectCollege(ctx *gin.Context) {
	inspection, err := c.collegeService.InspectCollege(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to inspect college")
		return
	}

	ctx.JSON(http.StatusOK, inspection)
}

// UpdateCollege updates an existing college
// @Summary Update a college
// @Tags colleges
// @Accept json
// @Produce json
// @Param id path string true "College ID"
// @Param request body dto.CollegeRequest true "Updated college information"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /colleges/{id} [put]
func (c *CollegeController) UpdateCollege(ctx *gin.Context) {
	var req dto.CollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid college data").WithDetails(err.Error()))
		return
	}

	college := &models.College{
		ID:    ctx.Param("id"),
		Name:  req.Name,
		Abbrv: req.Abbrv,
	}
	if err := c.collegeService.UpdateCollege(ctx, college); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update college")
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "College updated successfully"})
}

// DeleteCollege deletes a college and all its programmes
// @Summary Delete a college
// @Description Deletes the college and every programme under it atomically
// @Tags colleges
// @Produce json
// @Param id path string true "College ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /colleges/{id} [delete]
func (c *CollegeController) DeleteCollege(ctx *gin.Context) {
	if err := c.collegeService.DeleteCollege(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to delete college")
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "College deleted successfully"})
}
