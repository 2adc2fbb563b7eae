package dto

// CreateProgressRequest represents a request to record per-lesson progress
type CreateProgressRequest struct {
	UserID    string `json:"userId" binding:"required"`
	CourseID  string `json:"courseId" binding:"required"`
	LessonID  string `json:"lessonId" binding:"required"`
	Completed bool   `json:"completed"`
	TimeSpent int    `json:"timeSpent" binding:"omitempty,min=0"`
}

// UpdateProgressRequest carries the merge fields for a progress record.
// Only supplied fields are applied.
type UpdateProgressRequest struct {
	Completed *bool `json:"completed,omitempty"`
	TimeSpent *int  `json:"timeSpent,omitempty" binding:"omitempty,min=0"`
}
