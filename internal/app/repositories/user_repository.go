package repositories

import (
	"context"
	"sync"

	"github.com/oguzk/learnhub/internal/app/models"
)

// UpdateUserParams carries the optional fields of a user update. Only
// non-nil fields are merged into the stored record.
type UpdateUserParams struct {
	Name     *string
	Email    *string
	Password *string
	Stats    *models.UserStats
}

// UserRepository keeps user records in memory.
type UserRepository struct {
	mu    sync.RWMutex
	table map[string]models.User
}

// NewUserRepository creates a new UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{table: make(map[string]models.User)}
}

// CreateUser inserts a user and assigns a fresh id.
func (r *UserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = newID()
	r.table[user.ID] = user
	return user, nil
}

// GetUserByID retrieves a user by id.
func (r *UserRepository) GetUserByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.table[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// GetUserByEmail scans for the first user with the given email.
func (r *UserRepository) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.table {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateUser merges the supplied fields into an existing user.
func (r *UserRepository) UpdateUser(_ context.Context, id string, params UpdateUserParams) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.table[id]
	if !ok {
		return nil, ErrNotFound
	}
	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.Password != nil {
		user.Password = *params.Password
	}
	if params.Stats != nil {
		user.Stats = *params.Stats
	}
	r.table[id] = user
	return &user, nil
}
