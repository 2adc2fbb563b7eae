package models

import "time"

// StudyReminder schedules a daily nudge for a user to continue a course.
// ReminderTime is a wall-clock time of day in "HH:MM" (24h) format.
type StudyReminder struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	CourseID     string     `json:"courseId"`
	ReminderTime string     `json:"reminderTime" example:"19:30"`
	Enabled      bool       `json:"enabled"`
	LastShown    *time.Time `json:"lastShown,omitempty"`
}
