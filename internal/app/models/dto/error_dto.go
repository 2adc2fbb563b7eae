package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the structured error body returned by every failing
// handler: {"message": "..."}. No internal detail is ever included.
type ErrorResponse struct {
	Message string `json:"message" example:"Course not found"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// HandleValidationError renders a binding/validation error into a
// human-readable error response without leaking struct internals.
func HandleValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, formatValidationError(fe))
		}
		return NewErrorResponse(strings.Join(msgs, "; "))
	}
	return NewErrorResponse("Invalid request body")
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
