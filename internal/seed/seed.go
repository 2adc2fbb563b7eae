// Package seed loads the fixed course catalog into the storage engine at
// startup. The catalog carries well-known ids so restarts always produce the
// same data set.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/app/repositories"
)

// Catalog returns the fixed six-course catalog.
func Catalog() []models.Course {
	return []models.Course{
		{
			ID:          "js-course-2024",
			Title:       "Complete JavaScript Course 2024",
			Description: "Master modern JavaScript from basics to advanced concepts including ES6+, async/await, and real-world projects.",
			Instructor:  "Jonas Schmedtmann",
			Category:    models.CategoryWebDevelopment,
			Level:       models.LevelBeginner,
			Duration:    "42 hours",
			Price:       49.99,
			Rating:      4.9,
			Students:    "15.2k",
			Thumbnail:   "https://images.unsplash.com/photo-1551650975-87deedd944c3?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			VideoURL:    "https://www.youtube.com/embed/W6NZfCO5SIk",
			Curriculum: []models.CourseSection{
				{
					Title:    "JavaScript Fundamentals",
					Lessons:  []string{"Variables and Data Types", "Functions and Scope", "Control Structures"},
					Duration: "8 hours",
				},
				{
					Title:    "Modern JavaScript",
					Lessons:  []string{"ES6 Features", "Async Programming", "Modules"},
					Duration: "12 hours",
				},
			},
		},
		{
			ID:          "react-masterclass",
			Title:       "React.js Masterclass",
			Description: "Build modern React applications with hooks, context, and advanced patterns. Includes Next.js and deployment.",
			Instructor:  "Maximilian Schwarzmuller",
			Category:    models.CategoryWebDevelopment,
			Level:       models.LevelIntermediate,
			Duration:    "38 hours",
			Price:       79.99,
			Rating:      4.7,
			Students:    "9.8k",
			Thumbnail:   "https://images.unsplash.com/photo-1633356122544-f134324a6cee?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			VideoURL:    "https://www.youtube.com/embed/Ke90Tje7VS0",
			Curriculum: []models.CourseSection{
				{
					Title:    "React Basics",
					Lessons:  []string{"Components", "Props & State", "Event Handling"},
					Duration: "10 hours",
				},
				{
					Title:    "Advanced React",
					Lessons:  []string{"Hooks", "Context API", "Performance"},
					Duration: "15 hours",
				},
			},
		},
		{
			ID:          "python-data-science",
			Title:       "Python for Data Science",
			Description: "Complete Python data science course covering pandas, numpy, matplotlib, and machine learning basics.",
			Instructor:  "Jose Portilla",
			Category:    models.CategoryDataScience,
			Level:       models.LevelBeginner,
			Duration:    "56 hours",
			Price:       59.99,
			Rating:      4.8,
			Students:    "22.1k",
			Thumbnail:   "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			VideoURL:    "https://www.youtube.com/embed/_uQrJ0TkZlc",
			Curriculum: []models.CourseSection{
				{
					Title:    "Python Basics",
					Lessons:  []string{"Syntax", "Data Structures", "Control Flow"},
					Duration: "16 hours",
				},
				{
					Title:    "Data Analysis",
					Lessons:  []string{"Pandas", "NumPy", "Visualization"},
					Duration: "20 hours",
				},
			},
		},
		{
			ID:          "flutter-development",
			Title:       "Flutter App Development",
			Description: "Create beautiful cross-platform mobile apps with Flutter. Build real apps for iOS and Android.",
			Instructor:  "Angela Yu",
			Category:    models.CategoryMobileDevelopment,
			Level:       models.LevelIntermediate,
			Duration:    "45 hours",
			Price:       69.99,
			Rating:      4.6,
			Students:    "7.5k",
			Thumbnail:   "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			VideoURL:    "https://www.youtube.com/embed/x0uinJvhNxI",
			Curriculum: []models.CourseSection{
				{
					Title:    "Flutter Basics",
					Lessons:  []string{"Widgets", "Layouts", "Navigation"},
					Duration: "18 hours",
				},
				{
					Title:    "Advanced Flutter",
					Lessons:  []string{"State Management", "APIs", "Publishing"},
					Duration: "20 hours",
				},
			},
		},
		{
			ID:          "tensorflow-deep-learning",
			Title:       "Deep Learning with TensorFlow",
			Description: "Master neural networks and deep learning with TensorFlow. Build AI applications from scratch.",
			Instructor:  "Andrew Ng",
			Category:    models.CategoryMachineLearning,
			Level:       models.LevelAdvanced,
			Duration:    "62 hours",
			Price:       99.99,
			Rating:      4.9,
			Students:    "4.2k",
			Thumbnail:   "https://images.unsplash.com/photo-1555949963-aa79dcee981c?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			VideoURL:    "https://www.youtube.com/embed/aircAruvnKk",
			Curriculum: []models.CourseSection{
				{
					Title:    "Neural Networks",
					Lessons:  []string{"Perceptrons", "Backpropagation", "Optimization"},
					Duration: "25 hours",
				},
				{
					Title:    "Deep Learning",
					Lessons:  []string{"CNNs", "RNNs", "Transfer Learning"},
					Duration: "30 hours",
				},
			},
		},
		{
			ID:          "fullstack-bootcamp",
			Title:       "Full Stack Web Development",
			Description: "Complete bootcamp covering HTML, CSS, JavaScript, Node.js, Express, MongoDB, and React.",
			Instructor:  "Colt Steele",
			Category:    models.CategoryWebDevelopment,
			Level:       models.LevelBeginner,
			Duration:    "78 hours",
			Price:       89.99,
			Rating:      4.5,
			Students:    "18.7k",
			Thumbnail:   "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			VideoURL:    "https://www.youtube.com/embed/nu_pCVPKzTk",
			Curriculum: []models.CourseSection{
				{
					Title:    "Frontend",
					Lessons:  []string{"HTML/CSS", "JavaScript", "React"},
					Duration: "35 hours",
				},
				{
					Title:    "Backend",
					Lessons:  []string{"Node.js", "Express", "Databases"},
					Duration: "30 hours",
				},
			},
		},
	}
}

// CreateDefaultData loads the course catalog into the repository.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	for _, course := range Catalog() {
		if _, err := repos.CourseRepository.CreateCourse(ctx, course); err != nil {
			lgr.Error().Err(err).Str("courseID", course.ID).Msg("Error seeding course")
			return fmt.Errorf("seeding course %s: %w", course.ID, err)
		}
	}
	lgr.Info().Int("courses", len(Catalog())).Msg("Course catalog seeded")
	return nil
}
