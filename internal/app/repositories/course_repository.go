package repositories

import (
	"context"
	"sync"

	"github.com/oguzk/learnhub/internal/app/models"
)

// CourseRepository keeps the course catalog in memory. The catalog is seeded
// at startup and read-mostly afterwards.
type CourseRepository struct {
	mu    sync.RWMutex
	table map[string]models.Course
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{table: make(map[string]models.Course)}
}

// CreateCourse inserts a course. Seeded courses carry their own well-known
// ids; an id is only minted when none is supplied.
func (r *CourseRepository) CreateCourse(_ context.Context, course models.Course) (models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if course.ID == "" {
		course.ID = newID()
	}
	r.table[course.ID] = course
	return course, nil
}

// GetCourseByID retrieves a course by id.
func (r *CourseRepository) GetCourseByID(_ context.Context, id string) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.table[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &course, nil
}

// GetAllCourses returns the full catalog.
func (r *CourseRepository) GetAllCourses(_ context.Context) ([]models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := make([]models.Course, 0, len(r.table))
	for _, course := range r.table {
		courses = append(courses, course)
	}
	return courses, nil
}

// GetCoursesByCategory filters the catalog by category.
func (r *CourseRepository) GetCoursesByCategory(_ context.Context, category models.Category) ([]models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := make([]models.Course, 0)
	for _, course := range r.table {
		if course.Category == category {
			courses = append(courses, course)
		}
	}
	return courses, nil
}

// GetCoursesByLevel filters the catalog by level.
func (r *CourseRepository) GetCoursesByLevel(_ context.Context, level models.Level) ([]models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := make([]models.Course, 0)
	for _, course := range r.table {
		if course.Level == level {
			courses = append(courses, course)
		}
	}
	return courses, nil
}
