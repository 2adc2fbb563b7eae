// Package scheduler runs the background sweep that delivers due study
// reminders. It polls the reminder service on a cron schedule, notifies the
// user for each due reminder, and stamps the reminder so the same firing is
// not delivered twice.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/oguzk/learnhub/internal/app/services"
	"github.com/oguzk/learnhub/internal/pkg/email"
)

// ReminderScheduler periodically sweeps for due study reminders.
type ReminderScheduler struct {
	cron            *cron.Cron
	schedule        string
	reminderService services.ReminderService
	authService     services.AuthService
	courseService   services.CourseService
	emailService    email.EmailService
	logger          zerolog.Logger
}

// NewReminderScheduler creates a reminder scheduler. The schedule string is a
// cron spec (robfig/cron syntax, "@every 1m" style descriptors included).
func NewReminderScheduler(
	schedule string,
	reminderService services.ReminderService,
	authService services.AuthService,
	courseService services.CourseService,
	emailService email.EmailService,
	logger zerolog.Logger,
) *ReminderScheduler {
	return &ReminderScheduler{
		cron:            cron.New(),
		schedule:        schedule,
		reminderService: reminderService,
		authService:     authService,
		courseService:   courseService,
		emailService:    emailService,
		logger:          logger,
	}
}

// Start registers the sweep job and starts the cron loop.
func (s *ReminderScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, func() {
		s.Sweep(context.Background(), time.Now())
	}); err != nil {
		return fmt.Errorf("invalid reminder check schedule %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.logger.Info().Str("schedule", s.schedule).Msg("Reminder scheduler started")
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *ReminderScheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info().Msg("Reminder scheduler stopped")
}

// Sweep delivers every reminder due at the given instant. Failures on a
// single reminder are logged and do not abort the rest of the sweep.
func (s *ReminderScheduler) Sweep(ctx context.Context, now time.Time) {
	due, err := s.reminderService.DueReminders(ctx, now)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to collect due reminders")
		return
	}
	if len(due) == 0 {
		return
	}
	s.logger.Debug().Int("count", len(due)).Msg("Delivering due study reminders")

	for _, reminder := range due {
		if err := s.deliver(ctx, reminder.ID, reminder.UserID, reminder.CourseID, reminder.ReminderTime); err != nil {
			s.logger.Error().Err(err).
				Str("reminderID", reminder.ID).
				Str("userID", reminder.UserID).
				Msg("Failed to deliver study reminder")
			continue
		}
		if err := s.reminderService.MarkShown(ctx, reminder.ID, now); err != nil {
			s.logger.Error().Err(err).Str("reminderID", reminder.ID).Msg("Failed to mark reminder shown")
		}
	}
}

func (s *ReminderScheduler) deliver(ctx context.Context, reminderID, userID, courseID, reminderTime string) error {
	user, err := s.authService.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("looking up user for reminder %s: %w", reminderID, err)
	}
	course, err := s.courseService.GetCourseByID(ctx, courseID)
	if err != nil {
		return fmt.Errorf("looking up course for reminder %s: %w", reminderID, err)
	}
	return s.emailService.SendStudyReminderEmail(user.Email, user.Name, course.Title, reminderTime)
}
