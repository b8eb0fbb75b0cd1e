package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusboard/campusboard/internal/app/models"
	"github.com/campusboard/campusboard/internal/app/models/dto"
	"github.com/campusboard/campusboard/internal/app/services"
	"github.com/campusboard/campusboard/internal/middleware"
	"github.com/campusboard/campusboard/internal/pkg/apperrors"
)

// ProgrammeController handles programme operations scoped to a college
type ProgrammeController struct {
	programmeService services.ProgrammeService
}

// NewProgrammeController creates a new ProgrammeController
func NewProgrammeController(programmeService services.ProgrammeService) *ProgrammeController {
	return &ProgrammeController{
		programmeService: programmeService,
	}
}

// GetProgrammesByCollege lists the programmes of a college
// @Summary List programmes
// @Description Retrieves the programmes of a college ascending by name
// @Tags programmes
// @Produce json
// @Param collegeId path string true "College ID"
// @Success 200 {array} models.Programme
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /colleges/{collegeId}/programmes [get]
func (c *ProgrammeController) GetProgrammesByCollege(ctx *gin.Context) {
	programmes, err := c.programmeService.GetProgrammesByCollege(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrCollegeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("College not found"))
			return
		}
		middleware.HandleAPIError(ctx, err, "Failed to fetch programmes")
		return
	}

	ctx.JSON(http.StatusOK, programmes)
}

// CreateProgramme creates a programme under a college
// @Summary Create a programme
// @Tags programmes
// @Accept json
// @Produce json
// @Param collegeId path string true "College ID"
// @Param request body dto.ProgrammeRequest true "Programme information"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /colleges/{collegeId}/programmes [post]
func (c *ProgrammeController) CreateProgramme(ctx *gin.Context) {
	var req dto.ProgrammeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid programme data").WithDetails(err.Error()))
		return
	}

	programme := &models.Programme{
		Abbrv:       req.Abbrv,
		Name:        req.Name,
		Years:       req.Years,
		Duration:    req.Duration,
		Description: req.Description,
	}
	id, err := c.programmeService.CreateProgramme(ctx, ctx.Param("id"), programme)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to create programme")
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{
		ID:      id,
		Message: "Programme created successfully",
	})
}

// UpdateProgramme updates a programme under a college
// @Summary Update a programme
// @Tags programmes
// @Accept json
// @Produce json
// @Param collegeId path string true "College ID"
// @Param programmeId path string true "Programme ID"
// @Param request body dto.ProgrammeRequest true "Updated programme information"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /colleges/{collegeId}/programmes/{programmeId} [put]
func (c *ProgrammeController) UpdateProgramme(ctx *gin.Context) {
	var req dto.ProgrammeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid programme data").WithDetails(err.Error()))
		return
	}

	programme := &models.Programme{
		ID:          ctx.Param("programmeId"),
		Abbrv:       req.Abbrv,
		Name:        req.Name,
		Years:       req.Years,
		Duration:    req.Duration,
		Description: req.Description,
	}
	if err := c.programmeService.UpdateProgramme(ctx, ctx.Param("id"), programme); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update programme")
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Programme updated successfully"})
}

// DeleteProgramme deletes a programme under a college
// @Summary Delete a programme
// @Tags programmes
// @Produce json
// @Param collegeId path string true "College ID"
// @Param programmeId path string true "Programme ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /colleges/{collegeId}/programmes/{programmeId} [delete]
func (c *ProgrammeController) DeleteProgramme(ctx *gin.Context) {
	if err := c.programmeService.DeleteProgramme(ctx, ctx.Param("id"), ctx.Param("programmeId")); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to delete programme")
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Programme deleted successfully"})
}
