package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/oguzk/learnhub/internal/app/models"
)

// UpdateProgressParams carries the optional fields of a progress merge.
type UpdateProgressParams struct {
	Completed   *bool
	CompletedAt *time.Time
	TimeSpent   *int
}

// ProgressRepository keeps per-lesson progress records in memory.
type ProgressRepository struct {
	mu    sync.RWMutex
	table map[string]models.Progress
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{table: make(map[string]models.Progress)}
}

// CreateProgress inserts a progress record and assigns a fresh id.
func (r *ProgressRepository) CreateProgress(_ context.Context, progress models.Progress) (models.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	progress.ID = newID()
	r.table[progress.ID] = progress
	return progress, nil
}

// GetProgressByID retrieves a progress record by id.
func (r *ProgressRepository) GetProgressByID(_ context.Context, id string) (*models.Progress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	progress, ok := r.table[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &progress, nil
}

// GetUserProgress returns all progress records for a (user, course) pair.
func (r *ProgressRepository) GetUserProgress(_ context.Context, userID, courseID string) ([]models.Progress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]models.Progress, 0)
	for _, progress := range r.table {
		if progress.UserID == userID && progress.CourseID == courseID {
			records = append(records, progress)
		}
	}
	return records, nil
}

// UpdateProgress merges the supplied fields into an existing record.
func (r *ProgressRepository) UpdateProgress(_ context.Context, id string, params UpdateProgressParams) (*models.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	progress, ok := r.table[id]
	if !ok {
		return nil, ErrNotFound
	}
	if params.Completed != nil {
		progress.Completed = *params.Completed
	}
	if params.CompletedAt != nil {
		progress.CompletedAt = params.CompletedAt
	}
	if params.TimeSpent != nil {
		progress.TimeSpent = *params.TimeSpent
	}
	r.table[id] = progress
	return &progress, nil
}
