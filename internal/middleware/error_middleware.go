package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusboard/campusboard/internal/app/models/dto"
	"github.com/campusboard/campusboard/internal/pkg/apperrors"
)

// HandleAPIError maps workflow errors onto the wire error shape. Referenced
// entities that are missing surface as 400 (the programme listing is the one
// route that answers 404, and handles that itself); everything unexpected is
// a 500 carrying the caller-supplied fallback message.
func HandleAPIError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrCollegeNotFound):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("College not found"))
	case errors.Is(err, apperrors.ErrProgrammeNotFound):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Programme not found"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("User not found"))
	case errors.Is(err, apperrors.ErrAnnouncementNotFound):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Announcement not found"))
	case errors.Is(err, apperrors.ErrNoFilesProvided):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("No files provided"))
	case errors.Is(err, apperrors.ErrNotAnImage):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(userMessage(err, "File is not an image")))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(fallback).WithDetails(err.Error()))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrIdentityCreation):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to create authentication user"))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(fallback))
	}
}

// userMessage prefers the message of a CustomError in the chain over the
// generic fallback.
func userMessage(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
