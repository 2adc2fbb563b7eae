package models

import "time"

// UserStats holds the aggregate counters shown on a user's dashboard.
type UserStats struct {
	CoursesCompleted int `json:"coursesCompleted"`
	TotalHours       int `json:"totalHours"`
	Streak           int `json:"streak"`
	Certificates     int `json:"certificates"`
}

// User defines a registered learner.
type User struct {
	ID       string    `json:"id" example:"1736872345123-a1b2c3d4"` // Unique identifier assigned by the store
	Name     string    `json:"name" example:"John Doe"`
	Email    string    `json:"email" example:"john@example.com"` // Unique among users
	Password string    `json:"-"`                                // Bcrypt hash, excluded from JSON
	JoinDate time.Time `json:"joinDate" example:"2024-01-01T10:00:00Z"`
	Stats    UserStats `json:"stats"`
}
