package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/internal/app/services"
	"github.com/oguzk/learnhub/internal/middleware"
)

// EnrollmentController handles enrollment operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
	logger            zerolog.Logger
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService, logger zerolog.Logger) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// Enroll creates an enrollment
// @Summary Enroll in a course
// @Description Enrolls a user in a course. Fails when the user is already enrolled.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrollmentRequest true "Enrollment data"
// @Success 200 {object} models.Enrollment
// @Failure 400 {object} dto.ErrorResponse "Invalid request or already enrolled"
// @Router /enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("userID", req.UserID).Str("courseID", req.CourseID).Msg("Enrollment failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("enrollmentID", enrollment.ID).Str("courseID", enrollment.CourseID).Msg("User enrolled")
	ctx.JSON(http.StatusOK, enrollment)
}

// GetUserEnrollments lists a user's enrollments
// @Summary List user enrollments
// @Tags enrollments
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {array} models.Enrollment
// @Router /users/{userId}/enrollments [get]
func (c *EnrollmentController) GetUserEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetUserEnrollments(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, enrollments)
}

// UpdateEnrollment merges fields into an enrollment
// @Summary Update enrollment
// @Description Merges the supplied fields; progress is clamped into [0,100], completed is derived, lastAccessed is always refreshed.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Enrollment id"
// @Param request body dto.UpdateEnrollmentRequest true "Fields to merge"
// @Success 200 {object} models.Enrollment
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [patch]
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	var req dto.UpdateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	enrollment, err := c.enrollmentService.UpdateEnrollment(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, enrollment)
}
