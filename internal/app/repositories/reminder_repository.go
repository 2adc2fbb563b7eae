package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/oguzk/learnhub/internal/app/models"
)

// UpdateReminderParams carries the optional fields of a reminder merge.
type UpdateReminderParams struct {
	ReminderTime *string
	Enabled      *bool
	LastShown    *time.Time
}

// ReminderRepository keeps study reminders in memory.
type ReminderRepository struct {
	mu    sync.RWMutex
	table map[string]models.StudyReminder
}

// NewReminderRepository creates a new ReminderRepository
func NewReminderRepository() *ReminderRepository {
	return &ReminderRepository{table: make(map[string]models.StudyReminder)}
}

// CreateReminder inserts a reminder and assigns a fresh id.
func (r *ReminderRepository) CreateReminder(_ context.Context, reminder models.StudyReminder) (models.StudyReminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reminder.ID = newID()
	r.table[reminder.ID] = reminder
	return reminder, nil
}

// GetReminderByID retrieves a reminder by id.
func (r *ReminderRepository) GetReminderByID(_ context.Context, id string) (*models.StudyReminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reminder, ok := r.table[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &reminder, nil
}

// GetUserReminders returns all reminders belonging to a user.
func (r *ReminderRepository) GetUserReminders(_ context.Context, userID string) ([]models.StudyReminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reminders := make([]models.StudyReminder, 0)
	for _, reminder := range r.table {
		if reminder.UserID == userID {
			reminders = append(reminders, reminder)
		}
	}
	return reminders, nil
}

// GetAllReminders returns every reminder. Used by the scheduler sweep.
func (r *ReminderRepository) GetAllReminders(_ context.Context) ([]models.StudyReminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reminders := make([]models.StudyReminder, 0, len(r.table))
	for _, reminder := range r.table {
		reminders = append(reminders, reminder)
	}
	return reminders, nil
}

// UpdateReminder merges the supplied fields into an existing reminder.
func (r *ReminderRepository) UpdateReminder(_ context.Context, id string, params UpdateReminderParams) (*models.StudyReminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reminder, ok := r.table[id]
	if !ok {
		return nil, ErrNotFound
	}
	if params.ReminderTime != nil {
		reminder.ReminderTime = *params.ReminderTime
	}
	if params.Enabled != nil {
		reminder.Enabled = *params.Enabled
	}
	if params.LastShown != nil {
		reminder.LastShown = params.LastShown
	}
	r.table[id] = reminder
	return &reminder, nil
}
