package dto

// StatsResponse is the computed dashboard summary for a user.
// CoursesCompleted and Certificates count completed enrollments, TotalHours
// is the floored hour sum of enrollment time, Streak is passed through from
// the stored user stats.
type StatsResponse struct {
	CoursesCompleted int `json:"coursesCompleted"`
	TotalHours       int `json:"totalHours"`
	Streak           int `json:"streak"`
	Certificates     int `json:"certificates"`
}
