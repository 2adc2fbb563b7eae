package dto

// CreateEnrollmentRequest represents a request to enroll a user in a course
type CreateEnrollmentRequest struct {
	UserID   string `json:"userId" binding:"required"`
	CourseID string `json:"courseId" binding:"required"`
}

// UpdateEnrollmentRequest carries the merge fields for an enrollment update.
// Only supplied fields are applied. Completed is never accepted here; it is
// derived from the resulting progress.
type UpdateEnrollmentRequest struct {
	Progress  *float64 `json:"progress,omitempty"`
	TimeSpent *int     `json:"timeSpent,omitempty" binding:"omitempty,min=0"`
}
