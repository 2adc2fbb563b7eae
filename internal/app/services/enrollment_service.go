package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/internal/app/repositories"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
)

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	Enroll(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error)
	GetUserEnrollments(ctx context.Context, userID string) ([]models.Enrollment, error)
	UpdateEnrollment(ctx context.Context, id string, req *dto.UpdateEnrollmentRequest) (*models.Enrollment, error)
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	enrollmentRepo *repositories.EnrollmentRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo *repositories.EnrollmentRepository) EnrollmentService {
	return &enrollmentServiceImpl{enrollmentRepo: enrollmentRepo}
}

// Enroll creates an enrollment for a (user, course) pair. At most one
// enrollment may exist per pair; a duplicate request is a conflict.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	if _, err := s.enrollmentRepo.GetEnrollment(ctx, req.UserID, req.CourseID); err == nil {
		return nil, apperrors.ErrAlreadyEnrolled
	} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, fmt.Errorf("error checking existing enrollment: %w", err)
	}

	now := time.Now()
	enrollment, err := s.enrollmentRepo.CreateEnrollment(ctx, models.Enrollment{
		UserID:       req.UserID,
		CourseID:     req.CourseID,
		EnrolledDate: now,
		LastAccessed: now,
		Progress:     0,
		Completed:    false,
		TimeSpent:    0,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}
	return &enrollment, nil
}

// GetUserEnrollments returns all enrollments belonging to a user.
func (s *enrollmentServiceImpl) GetUserEnrollments(ctx context.Context, userID string) ([]models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetUserEnrollments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	return enrollments, nil
}

// UpdateEnrollment merges the supplied fields into an enrollment. Progress is
// clamped into [0,100] and Completed is derived from the result; TimeSpent
// never decreases; LastAccessed is always stamped with the current time.
func (s *enrollmentServiceImpl) UpdateEnrollment(ctx context.Context, id string, req *dto.UpdateEnrollmentRequest) (*models.Enrollment, error) {
	current, err := s.enrollmentRepo.GetEnrollmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	now := time.Now()
	params := repositories.UpdateEnrollmentParams{LastAccessed: &now}

	if req.Progress != nil {
		progress := clampProgress(*req.Progress)
		completed := progress >= 100
		params.Progress = &progress
		params.Completed = &completed
	}
	if req.TimeSpent != nil {
		spent := *req.TimeSpent
		if spent < current.TimeSpent {
			spent = current.TimeSpent
		}
		params.TimeSpent = &spent
	}

	enrollment, err := s.enrollmentRepo.UpdateEnrollment(ctx, id, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error updating enrollment: %w", err)
	}
	return enrollment, nil
}

// clampProgress bounds a progress percentage into [0,100].
func clampProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
