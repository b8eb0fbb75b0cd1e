package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusboard/campusboard/internal/app/models/dto"
	"github.com/campusboard/campusboard/internal/app/services"
	"github.com/campusboard/campusboard/internal/middleware"
)

// AnnouncementController handles announcement operations
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// GetAllAnnouncements lists all announcements
// @Summary List announcements
// @Description Retrieves all announcements newest first
// @Tags announcements
// @Produce json
// @Success 200 {array} models.Announcement
// @Failure 500 {object} dto.ErrorResponse
// @Router /announcements [get]
func (c *AnnouncementController) GetAllAnnouncements(ctx *gin.Context) {
	announcements, err := c.announcementService.GetAllAnnouncements(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch announcements")
		return
	}

	ctx.JSON(http.StatusOK, announcements)
}

// CreateAnnouncement creates a new announcement
// @Summary Create an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param request body dto.AnnouncementRequest true "Announcement content"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /announcements [post]
func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	var req dto.AnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid announcement data").WithDetails(err.Error()))
		return
	}

	id, err := c.announcementService.CreateAnnouncement(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to create announcement")
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{
		ID:      id,
		Message: "Announcement created successfully",
	})
}

// UpdateAnnouncement updates an existing announcement
// @Summary Update an announcement
// @Description Rewrites the announcement content, leaving the creation time untouched
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param request body dto.AnnouncementRequest true "Updated announcement content"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /announcements/{id} [put]
func (c *AnnouncementController) UpdateAnnouncement(ctx *gin.Context) {
	var req dto.AnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid announcement data").WithDetails(err.Error()))
		return
	}

	if err := c.announcementService.UpdateAnnouncement(ctx, ctx.Param("id"), &req); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update announcement")
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Announcement updated successfully"})
}

// DeleteAnnouncement deletes an announcement
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /announcements/{id} [delete]
func (c *AnnouncementController) DeleteAnnouncement(ctx *gin.Context) {
	if err := c.announcementService.DeleteAnnouncement(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to delete announcement")
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Announcement deleted successfully"})
}
