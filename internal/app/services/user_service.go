package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/internal/app/repositories"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
)

// UserService defines the interface for user-level aggregate operations
type UserService interface {
	GetUserStats(ctx context.Context, userID string) (*dto.StatsResponse, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo       *repositories.UserRepository
	enrollmentRepo *repositories.EnrollmentRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository, enrollmentRepo *repositories.EnrollmentRepository) UserService {
	return &userServiceImpl{
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// GetUserStats computes the dashboard summary for a user. Completed
// enrollments drive coursesCompleted and certificates, enrollment minutes
// sum to floored hours, and streak passes through from the stored stats.
func (s *userServiceImpl) GetUserStats(ctx context.Context, userID string) (*dto.StatsResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	enrollments, err := s.enrollmentRepo.GetUserEnrollments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}

	completed := 0
	totalMinutes := 0
	for _, enrollment := range enrollments {
		if enrollment.Completed {
			completed++
		}
		totalMinutes += enrollment.TimeSpent
	}

	return &dto.StatsResponse{
		CoursesCompleted: completed,
		TotalHours:       totalMinutes / 60,
		Streak:           user.Stats.Streak,
		Certificates:     completed,
	}, nil
}
