package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/app/repositories"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
)

// CourseService defines the interface for catalog operations
type CourseService interface {
	GetCourses(ctx context.Context, category, level string) ([]models.Course, error)
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{courseRepo: courseRepo}
}

// GetCourses returns the catalog, optionally narrowed by category and level.
// The category filter is applied first; the level filter is always applied on
// top of whatever the category filter produced.
func (s *courseServiceImpl) GetCourses(ctx context.Context, category, level string) ([]models.Course, error) {
	var (
		courses []models.Course
		err     error
	)
	if category != "" {
		courses, err = s.courseRepo.GetCoursesByCategory(ctx, models.Category(category))
	} else {
		courses, err = s.courseRepo.GetAllCourses(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	if level != "" {
		filtered := make([]models.Course, 0, len(courses))
		for _, course := range courses {
			if course.Level == models.Level(level) {
				filtered = append(filtered, course)
			}
		}
		courses = filtered
	}
	return courses, nil
}

// GetCourseByID retrieves a single catalog entry.
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}
