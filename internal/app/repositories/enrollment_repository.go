package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/oguzk/learnhub/internal/app/models"
)

// UpdateEnrollmentParams carries the optional fields of an enrollment merge.
// Completed is set here only by the service layer, which derives it from the
// resulting progress; it is never taken from client input directly.
type UpdateEnrollmentParams struct {
	Progress     *float64
	Completed    *bool
	LastAccessed *time.Time
	TimeSpent    *int
}

// EnrollmentRepository keeps enrollment records in memory.
type EnrollmentRepository struct {
	mu    sync.RWMutex
	table map[string]models.Enrollment
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository() *EnrollmentRepository {
	return &EnrollmentRepository{table: make(map[string]models.Enrollment)}
}

// CreateEnrollment inserts an enrollment and assigns a fresh id.
func (r *EnrollmentRepository) CreateEnrollment(_ context.Context, enrollment models.Enrollment) (models.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	enrollment.ID = newID()
	r.table[enrollment.ID] = enrollment
	return enrollment, nil
}

// GetEnrollmentByID retrieves an enrollment by id.
func (r *EnrollmentRepository) GetEnrollmentByID(_ context.Context, id string) (*models.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	enrollment, ok := r.table[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &enrollment, nil
}

// GetEnrollment scans for the unique (userID, courseID) pair.
func (r *EnrollmentRepository) GetEnrollment(_ context.Context, userID, courseID string) (*models.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, enrollment := range r.table {
		if enrollment.UserID == userID && enrollment.CourseID == courseID {
			e := enrollment
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

// GetUserEnrollments returns all enrollments belonging to a user.
func (r *EnrollmentRepository) GetUserEnrollments(_ context.Context, userID string) ([]models.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	enrollments := make([]models.Enrollment, 0)
	for _, enrollment := range r.table {
		if enrollment.UserID == userID {
			enrollments = append(enrollments, enrollment)
		}
	}
	return enrollments, nil
}

// UpdateEnrollment merges the supplied fields into an existing enrollment.
func (r *EnrollmentRepository) UpdateEnrollment(_ context.Context, id string, params UpdateEnrollmentParams) (*models.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	enrollment, ok := r.table[id]
	if !ok {
		return nil, ErrNotFound
	}
	if params.Progress != nil {
		enrollment.Progress = *params.Progress
	}
	if params.Completed != nil {
		enrollment.Completed = *params.Completed
	}
	if params.LastAccessed != nil {
		enrollment.LastAccessed = *params.LastAccessed
	}
	if params.TimeSpent != nil {
		enrollment.TimeSpent = *params.TimeSpent
	}
	r.table[id] = enrollment
	return &enrollment, nil
}
