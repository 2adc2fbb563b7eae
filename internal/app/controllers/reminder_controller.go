package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/internal/app/services"
	"github.com/oguzk/learnhub/internal/middleware"
)

// ReminderController handles study reminder operations
type ReminderController struct {
	reminderService services.ReminderService
}

// NewReminderController creates a new ReminderController
func NewReminderController(reminderService services.ReminderService) *ReminderController {
	return &ReminderController{reminderService: reminderService}
}

// CreateReminder creates a study reminder
// @Summary Create study reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param request body dto.CreateReminderRequest true "Reminder data"
// @Success 200 {object} models.StudyReminder
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Router /reminders [post]
func (c *ReminderController) CreateReminder(ctx *gin.Context) {
	var req dto.CreateReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	reminder, err := c.reminderService.CreateReminder(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reminder)
}

// GetUserReminders lists a user's reminders
// @Summary List user reminders
// @Tags reminders
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {array} models.StudyReminder
// @Router /users/{userId}/reminders [get]
func (c *ReminderController) GetUserReminders(ctx *gin.Context) {
	reminders, err := c.reminderService.GetUserReminders(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reminders)
}

// UpdateReminder merges fields into a reminder
// @Summary Update study reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Reminder id"
// @Param request body dto.UpdateReminderRequest true "Fields to merge"
// @Success 200 {object} models.StudyReminder
// @Failure 404 {object} dto.ErrorResponse "Reminder not found"
// @Router /reminders/{id} [patch]
func (c *ReminderController) UpdateReminder(ctx *gin.Context) {
	var req dto.UpdateReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	reminder, err := c.reminderService.UpdateReminder(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reminder)
}
