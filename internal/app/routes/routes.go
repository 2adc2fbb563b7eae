package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/learnhub/internal/app/controllers"
	"github.com/oguzk/learnhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	progressController *controllers.ProgressController,
	reminderController *controllers.ReminderController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/me", authMiddleware.JWTAuth(), authController.Me)
	}

	// --- Course catalog (public) ---
	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetCourses)
		courses.GET("/:id", courseController.GetCourseByID)
	}

	// --- Enrollments ---
	api.POST("/enrollments", enrollmentController.Enroll)
	api.PATCH("/enrollments/:id", enrollmentController.UpdateEnrollment)

	// --- Per-lesson progress ---
	api.POST("/progress", progressController.CreateProgress)
	api.PATCH("/progress/:id", progressController.UpdateProgress)

	// --- Study reminders ---
	api.POST("/reminders", reminderController.CreateReminder)
	api.PATCH("/reminders/:id", reminderController.UpdateReminder)

	// --- User-scoped reads ---
	users := api.Group("/users/:userId")
	{
		users.GET("/enrollments", enrollmentController.GetUserEnrollments)
		users.GET("/courses/:courseId/progress", progressController.GetUserProgress)
		users.GET("/reminders", reminderController.GetUserReminders)
		users.GET("/stats", userController.GetUserStats)
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
