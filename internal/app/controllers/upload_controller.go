package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusboard/campusboard/internal/app/models/dto"
	"github.com/campusboard/campusboard/internal/app/services"
	"github.com/campusboard/campusboard/internal/middleware"
)

// UploadController handles announcement image uploads
type UploadController struct {
	uploadService services.UploadService
}

// NewUploadController creates a new UploadController
func NewUploadController(uploadService services.UploadService) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// UploadImages uploads announcement images and returns their public URLs
// @Summary Upload announcement images
// @Description Accepts multipart image files and returns one public URL per file, in request order
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param images formData file true "Image files"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /upload [post]
func (c *UploadController) UploadImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid multipart form").WithDetails(err.Error()))
		return
	}

	urls, err := c.uploadService.UploadImages(ctx, form.File["images"])
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to upload images")
		return
	}

	ctx.JSON(http.StatusOK, dto.UploadResponse{ImageURLs: urls})
}
