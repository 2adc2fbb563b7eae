package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/internal/app/repositories"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
)

// ReminderService defines the interface for study reminder operations
type ReminderService interface {
	CreateReminder(ctx context.Context, req *dto.CreateReminderRequest) (*models.StudyReminder, error)
	GetUserReminders(ctx context.Context, userID string) ([]models.StudyReminder, error)
	UpdateReminder(ctx context.Context, id string, req *dto.UpdateReminderRequest) (*models.StudyReminder, error)
	DueReminders(ctx context.Context, now time.Time) ([]models.StudyReminder, error)
	MarkShown(ctx context.Context, id string, shownAt time.Time) error
}

// reminderServiceImpl implements the ReminderService interface
type reminderServiceImpl struct {
	reminderRepo *repositories.ReminderRepository
}

// NewReminderService creates a new reminder service instance
func NewReminderService(reminderRepo *repositories.ReminderRepository) ReminderService {
	return &reminderServiceImpl{reminderRepo: reminderRepo}
}

// CreateReminder creates a study reminder. Enabled defaults to true.
func (s *reminderServiceImpl) CreateReminder(ctx context.Context, req *dto.CreateReminderRequest) (*models.StudyReminder, error) {
	if _, err := parseReminderTime(req.ReminderTime); err != nil {
		return nil, apperrors.NewValidationError("reminderTime must be in HH:MM format")
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	reminder, err := s.reminderRepo.CreateReminder(ctx, models.StudyReminder{
		UserID:       req.UserID,
		CourseID:     req.CourseID,
		ReminderTime: req.ReminderTime,
		Enabled:      enabled,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating reminder: %w", err)
	}
	return &reminder, nil
}

// GetUserReminders returns all reminders belonging to a user.
func (s *reminderServiceImpl) GetUserReminders(ctx context.Context, userID string) ([]models.StudyReminder, error) {
	reminders, err := s.reminderRepo.GetUserReminders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving reminders: %w", err)
	}
	return reminders, nil
}

// UpdateReminder merges the supplied fields into a reminder.
func (s *reminderServiceImpl) UpdateReminder(ctx context.Context, id string, req *dto.UpdateReminderRequest) (*models.StudyReminder, error) {
	if req.ReminderTime != nil {
		if _, err := parseReminderTime(*req.ReminderTime); err != nil {
			return nil, apperrors.NewValidationError("reminderTime must be in HH:MM format")
		}
	}

	reminder, err := s.reminderRepo.UpdateReminder(ctx, id, repositories.UpdateReminderParams{
		ReminderTime: req.ReminderTime,
		Enabled:      req.Enabled,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrReminderNotFound
		}
		return nil, fmt.Errorf("error updating reminder: %w", err)
	}
	return reminder, nil
}

// DueReminders returns every enabled reminder whose wall-clock time has
// passed today and which has not been shown since that instant.
func (s *reminderServiceImpl) DueReminders(ctx context.Context, now time.Time) ([]models.StudyReminder, error) {
	reminders, err := s.reminderRepo.GetAllReminders(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving reminders: %w", err)
	}

	due := make([]models.StudyReminder, 0)
	for _, reminder := range reminders {
		if reminderDue(reminder, now) {
			due = append(due, reminder)
		}
	}
	return due, nil
}

// MarkShown stamps a reminder's lastShown time.
func (s *reminderServiceImpl) MarkShown(ctx context.Context, id string, shownAt time.Time) error {
	_, err := s.reminderRepo.UpdateReminder(ctx, id, repositories.UpdateReminderParams{
		LastShown: &shownAt,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrReminderNotFound
		}
		return fmt.Errorf("error marking reminder shown: %w", err)
	}
	return nil
}

// reminderDue reports whether a reminder should fire at the given instant.
// Reminders with an unparsable time never fire.
func reminderDue(reminder models.StudyReminder, now time.Time) bool {
	if !reminder.Enabled {
		return false
	}
	tod, err := parseReminderTime(reminder.ReminderTime)
	if err != nil {
		return false
	}

	fireAt := time.Date(now.Year(), now.Month(), now.Day(), tod.Hour(), tod.Minute(), 0, 0, now.Location())
	if now.Before(fireAt) {
		return false
	}
	return reminder.LastShown == nil || reminder.LastShown.Before(fireAt)
}

// parseReminderTime parses an "HH:MM" wall-clock time of day.
func parseReminderTime(value string) (time.Time, error) {
	return time.Parse("15:04", value)
}
