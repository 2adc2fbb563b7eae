package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/learnhub/internal/app/services"
	"github.com/oguzk/learnhub/internal/middleware"
)

// CourseController handles catalog operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// GetCourses lists the catalog
// @Summary List courses
// @Description Returns all courses, optionally filtered by category and level
// @Tags courses
// @Produce json
// @Param category query string false "Course category" Enums(web-development, mobile-development, data-science, machine-learning, devops)
// @Param level query string false "Course level" Enums(beginner, intermediate, advanced)
// @Success 200 {array} models.Course
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetCourses(ctx.Request.Context(), ctx.Query("category"), ctx.Query("level"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetCourseByID retrieves a single course
// @Summary Get course
// @Tags courses
// @Produce json
// @Param id path string true "Course id"
// @Success 200 {object} models.Course
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}
