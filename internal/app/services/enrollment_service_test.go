package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/internal/app/repositories"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
)

func TestEnroll(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewEnrollmentRepository()
	svc := NewEnrollmentService(repo)

	req := &dto.CreateEnrollmentRequest{UserID: "u1", CourseID: "js-course-2024"}

	enrollment, err := svc.Enroll(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, enrollment.Progress)
	assert.False(t, enrollment.Completed)
	assert.Equal(t, 0, enrollment.TimeSpent)
	assert.False(t, enrollment.EnrolledDate.IsZero())
	assert.False(t, enrollment.LastAccessed.IsZero())

	t.Run("duplicate pair is a conflict", func(t *testing.T) {
		_, err := svc.Enroll(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)

		all, err := repo.GetUserEnrollments(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, all, 1, "conflict must not insert a second record")
	})

	t.Run("same user different course", func(t *testing.T) {
		_, err := svc.Enroll(ctx, &dto.CreateEnrollmentRequest{UserID: "u1", CourseID: "react-masterclass"})
		assert.NoError(t, err)
	})
}

func TestUpdateEnrollment(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewEnrollmentRepository()
	svc := NewEnrollmentService(repo)

	enrollment, err := svc.Enroll(ctx, &dto.CreateEnrollmentRequest{UserID: "u1", CourseID: "c1"})
	require.NoError(t, err)

	t.Run("progress over 100 clamps and completes", func(t *testing.T) {
		progress := 150.0
		got, err := svc.UpdateEnrollment(ctx, enrollment.ID, &dto.UpdateEnrollmentRequest{Progress: &progress})
		require.NoError(t, err)
		assert.Equal(t, 100.0, got.Progress)
		assert.True(t, got.Completed)
	})

	t.Run("negative progress clamps to zero and uncompletes", func(t *testing.T) {
		progress := -10.0
		got, err := svc.UpdateEnrollment(ctx, enrollment.ID, &dto.UpdateEnrollmentRequest{Progress: &progress})
		require.NoError(t, err)
		assert.Equal(t, 0.0, got.Progress)
		assert.False(t, got.Completed)
	})

	t.Run("timeSpent never decreases", func(t *testing.T) {
		spent := 120
		got, err := svc.UpdateEnrollment(ctx, enrollment.ID, &dto.UpdateEnrollmentRequest{TimeSpent: &spent})
		require.NoError(t, err)
		assert.Equal(t, 120, got.TimeSpent)

		lower := 30
		got, err = svc.UpdateEnrollment(ctx, enrollment.ID, &dto.UpdateEnrollmentRequest{TimeSpent: &lower})
		require.NoError(t, err)
		assert.Equal(t, 120, got.TimeSpent)
	})

	t.Run("lastAccessed always stamped", func(t *testing.T) {
		before, err := repo.GetEnrollmentByID(ctx, enrollment.ID)
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)
		got, err := svc.UpdateEnrollment(ctx, enrollment.ID, &dto.UpdateEnrollmentRequest{})
		require.NoError(t, err)
		assert.True(t, got.LastAccessed.After(before.LastAccessed))
		assert.Equal(t, before.Progress, got.Progress, "empty merge must not touch progress")
	})

	t.Run("unknown id", func(t *testing.T) {
		progress := 50.0
		_, err := svc.UpdateEnrollment(ctx, "missing", &dto.UpdateEnrollmentRequest{Progress: &progress})
		assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
	})
}
