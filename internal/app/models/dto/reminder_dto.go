package dto

// CreateReminderRequest represents a request to create a study reminder.
// Enabled defaults to true when omitted.
type CreateReminderRequest struct {
	UserID       string `json:"userId" binding:"required"`
	CourseID     string `json:"courseId" binding:"required"`
	ReminderTime string `json:"reminderTime" binding:"required"`
	Enabled      *bool  `json:"enabled,omitempty"`
}

// UpdateReminderRequest carries the merge fields for a study reminder.
type UpdateReminderRequest struct {
	ReminderTime *string `json:"reminderTime,omitempty"`
	Enabled      *bool   `json:"enabled,omitempty"`
}
