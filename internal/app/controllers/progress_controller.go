package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/internal/app/services"
	"github.com/oguzk/learnhub/internal/middleware"
)

// ProgressController handles per-lesson progress operations
type ProgressController struct {
	progressService services.ProgressService
}

// NewProgressController creates a new ProgressController
func NewProgressController(progressService services.ProgressService) *ProgressController {
	return &ProgressController{progressService: progressService}
}

// CreateProgress records a lesson progress marker
// @Summary Create progress record
// @Tags progress
// @Accept json
// @Produce json
// @Param request body dto.CreateProgressRequest true "Progress data"
// @Success 200 {object} models.Progress
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Router /progress [post]
func (c *ProgressController) CreateProgress(ctx *gin.Context) {
	var req dto.CreateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	progress, err := c.progressService.CreateProgress(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// GetUserProgress lists progress records for a user and course
// @Summary List progress records
// @Tags progress
// @Produce json
// @Param userId path string true "User id"
// @Param courseId path string true "Course id"
// @Success 200 {array} models.Progress
// @Router /users/{userId}/courses/{courseId}/progress [get]
func (c *ProgressController) GetUserProgress(ctx *gin.Context) {
	records, err := c.progressService.GetUserProgress(ctx.Request.Context(), ctx.Param("userId"), ctx.Param("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// UpdateProgress merges fields into a progress record
// @Summary Update progress record
// @Tags progress
// @Accept json
// @Produce json
// @Param id path string true "Progress record id"
// @Param request body dto.UpdateProgressRequest true "Fields to merge"
// @Success 200 {object} models.Progress
// @Failure 404 {object} dto.ErrorResponse "Progress record not found"
// @Router /progress/{id} [patch]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	var req dto.UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	progress, err := c.progressService.UpdateProgress(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}
