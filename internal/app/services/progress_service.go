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

// ProgressService defines the interface for per-lesson progress operations
type ProgressService interface {
	CreateProgress(ctx context.Context, req *dto.CreateProgressRequest) (*models.Progress, error)
	GetUserProgress(ctx context.Context, userID, courseID string) ([]models.Progress, error)
	UpdateProgress(ctx context.Context, id string, req *dto.UpdateProgressRequest) (*models.Progress, error)
}

// progressServiceImpl implements the ProgressService interface
type progressServiceImpl struct {
	progressRepo *repositories.ProgressRepository
}

// NewProgressService creates a new progress service instance
func NewProgressService(progressRepo *repositories.ProgressRepository) ProgressService {
	return &progressServiceImpl{progressRepo: progressRepo}
}

// CreateProgress records a per-lesson completion marker. CompletedAt is
// stamped when the lesson arrives already completed.
func (s *progressServiceImpl) CreateProgress(ctx context.Context, req *dto.CreateProgressRequest) (*models.Progress, error) {
	record := models.Progress{
		UserID:    req.UserID,
		CourseID:  req.CourseID,
		LessonID:  req.LessonID,
		Completed: req.Completed,
		TimeSpent: req.TimeSpent,
	}
	if req.Completed {
		now := time.Now()
		record.CompletedAt = &now
	}

	progress, err := s.progressRepo.CreateProgress(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("error creating progress record: %w", err)
	}
	return &progress, nil
}

// GetUserProgress returns all progress records for a (user, course) pair.
func (s *progressServiceImpl) GetUserProgress(ctx context.Context, userID, courseID string) ([]models.Progress, error) {
	records, err := s.progressRepo.GetUserProgress(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving progress records: %w", err)
	}
	return records, nil
}

// UpdateProgress merges the supplied fields into a progress record.
// CompletedAt is stamped on the transition to completed.
func (s *progressServiceImpl) UpdateProgress(ctx context.Context, id string, req *dto.UpdateProgressRequest) (*models.Progress, error) {
	current, err := s.progressRepo.GetProgressByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrProgressNotFound
		}
		return nil, fmt.Errorf("error retrieving progress record: %w", err)
	}

	params := repositories.UpdateProgressParams{
		Completed: req.Completed,
		TimeSpent: req.TimeSpent,
	}
	if req.Completed != nil && *req.Completed && !current.Completed {
		now := time.Now()
		params.CompletedAt = &now
	}

	progress, err := s.progressRepo.UpdateProgress(ctx, id, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrProgressNotFound
		}
		return nil, fmt.Errorf("error updating progress record: %w", err)
	}
	return progress, nil
}
