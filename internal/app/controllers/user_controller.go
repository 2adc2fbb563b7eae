package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/learnhub/internal/app/services"
	"github.com/oguzk/learnhub/internal/middleware"
)

// UserController handles user-level aggregate operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetUserStats returns the computed dashboard summary
// @Summary Get user stats
// @Description Computes coursesCompleted, certificates and totalHours from the user's enrollments; streak passes through from the stored stats.
// @Tags users
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} dto.StatsResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{userId}/stats [get]
func (c *UserController) GetUserStats(ctx *gin.Context) {
	stats, err := c.userService.GetUserStats(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
