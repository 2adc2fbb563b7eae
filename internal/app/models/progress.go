package models

import "time"

// Progress is a per-lesson completion marker, distinct from the aggregate
// Enrollment.Progress percentage. Any number of records may exist per
// (user, course) pair.
type Progress struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	CourseID    string     `json:"courseId"`
	LessonID    string     `json:"lessonId"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	TimeSpent   int        `json:"timeSpent"` // Minutes
}
