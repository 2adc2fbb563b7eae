package models

import "time"

// Enrollment associates a user with a course and tracks aggregate completion.
// At most one enrollment exists per (UserID, CourseID) pair.
type Enrollment struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	CourseID     string    `json:"courseId"`
	EnrolledDate time.Time `json:"enrolledDate"`
	Progress     float64   `json:"progress"`  // Percentage in [0,100]
	Completed    bool      `json:"completed"` // Derived: Progress >= 100
	LastAccessed time.Time `json:"lastAccessed"`
	TimeSpent    int       `json:"timeSpent"` // Minutes, never decreases
}
