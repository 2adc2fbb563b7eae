// Package repositories implements the in-memory storage engine. It is the
// sole authoritative keeper of entity state for the process lifetime;
// restarting the process resets it to the seeded catalog.
package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oguzk/learnhub/internal/pkg/apperrors"
)

// ErrNotFound is the shared absence sentinel returned for unknown ids.
var ErrNotFound = apperrors.ErrResourceNotFound

// Repositories holds one repository per entity type.
type Repositories struct {
	UserRepository       *UserRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	ProgressRepository   *ProgressRepository
	ReminderRepository   *ReminderRepository
}

// NewRepositories creates the full set of in-memory repositories.
func NewRepositories() *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(),
		CourseRepository:     NewCourseRepository(),
		EnrollmentRepository: NewEnrollmentRepository(),
		ProgressRepository:   NewProgressRepository(),
		ReminderRepository:   NewReminderRepository(),
	}
}

// newID mints a record id: millisecond timestamp plus a random suffix.
// Ids are never reassigned once handed out.
func newID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), suffix)
}
