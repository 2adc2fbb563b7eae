package models

// CourseSection is one ordered block of a course curriculum.
type CourseSection struct {
	Title    string   `json:"title"`
	Lessons  []string `json:"lessons"`
	Duration string   `json:"duration,omitempty"`
}

// Course represents a catalog entry. Courses are seeded at startup and
// read-mostly; the id is immutable once created.
type Course struct {
	ID          string          `json:"id" example:"js-course-2024"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Instructor  string          `json:"instructor"`
	Category    Category        `json:"category" example:"web-development"`
	Level       Level           `json:"level" example:"beginner"`
	Duration    string          `json:"duration" example:"42 hours"`
	Price       float64         `json:"price"`
	Rating      float64         `json:"rating"`
	Students    string          `json:"students" example:"15.2k"`
	Thumbnail   string          `json:"thumbnail"`
	VideoURL    string          `json:"videoUrl"`
	Curriculum  []CourseSection `json:"curriculum"`
}
