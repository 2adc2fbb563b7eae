package models

// Category defines the course category enum
type Category string

// Course categories
const (
	CategoryWebDevelopment    Category = "web-development"
	CategoryMobileDevelopment Category = "mobile-development"
	CategoryDataScience       Category = "data-science"
	CategoryMachineLearning   Category = "machine-learning"
	CategoryDevOps            Category = "devops"
)

// Level defines the course difficulty enum
type Level string

// Course levels
const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ValidCategory reports whether c is one of the known course categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryWebDevelopment, CategoryMobileDevelopment, CategoryDataScience,
		CategoryMachineLearning, CategoryDevOps:
		return true
	}
	return false
}

// ValidLevel reports whether l is one of the known course levels.
func ValidLevel(l Level) bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}
