package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
)

// HandleAPIError translates domain errors into HTTP responses with a
// structured {"message": ...} body. Validation and conflict errors map to
// 400, credential failures to 401, absences to 404; anything unrecognized
// falls back to a generic 500 without leaking internals.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("User already exists"))
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Already enrolled in this course"))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid credentials"))
	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found"))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Course not found"))
	case errors.Is(err, apperrors.ErrEnrollmentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Enrollment not found"))
	case errors.Is(err, apperrors.ErrProgressNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Progress record not found"))
	case errors.Is(err, apperrors.ErrReminderNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Reminder not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found"))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
