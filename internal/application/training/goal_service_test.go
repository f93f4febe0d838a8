package training

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/summitmind/backend/internal/domain/shared"
	"github.com/summitmind/backend/internal/domain/training"
)

func TestGoalService_CreateGoal(t *testing.T) {
	ctx := context.Background()
	athleteID := uuid.New()

	t.Run("creates active goal with target date", func(t *testing.T) {
		repo := new(MockGoalRepository)
		service := NewGoalService(repo, zap.NewNop())
		repo.On("Create", ctx, mock.AnythingOfType("*training.Goal")).Return(nil)

		target := "2026-06-01"
		resp, err := service.CreateGoal(ctx, athleteID, CreateGoalRequest{
			Title:      "Stay composed in finals",
			Category:   "competition",
			TargetDate: &target,
		})
		require.NoError(t, err)
		assert.Equal(t, "active", resp.Status)
		require.NotNil(t, resp.TargetDate)
		assert.Equal(t, "2026-06-01", resp.TargetDate.Format(training.CheckInDateLayout))
	})

	t.Run("malformed target date is rejected", func(t *testing.T) {
		repo := new(MockGoalRepository)
		service := NewGoalService(repo, zap.NewNop())

		target := "06/01/2026"
		_, err := service.CreateGoal(ctx, athleteID, CreateGoalRequest{
			Title:      "Stay composed",
			TargetDate: &target,
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DATE", domainErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGoalService_ListGoals(t *testing.T) {
	ctx := context.Background()
	athleteID := uuid.New()

	t.Run("status filter is passed through", func(t *testing.T) {
		repo := new(MockGoalRepository)
		service := NewGoalService(repo, zap.NewNop())

		goal, err := training.NewGoal(athleteID, "Stay composed", "", "")
		require.NoError(t, err)
		completed := training.GoalStatusCompleted
		repo.On("FindByAthlete", ctx, athleteID, &completed).Return([]*training.Goal{goal}, nil)

		result, err := service.ListGoals(ctx, athleteID, "completed")
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		repo := new(MockGoalRepository)
		service := NewGoalService(repo, zap.NewNop())

		_, err := service.ListGoals(ctx, athleteID, "paused")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATUS", domainErr.Code)
	})
}

func TestGoalService_Ownership(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	repo := new(MockGoalRepository)
	service := NewGoalService(repo, zap.NewNop())

	goal, err := training.NewGoal(owner, "Stay composed", "", "")
	require.NoError(t, err)
	repo.On("FindByID", ctx, goal.ID).Return(goal, nil)

	t.Run("another athlete's goal looks missing", func(t *testing.T) {
		_, err := service.CompleteGoal(ctx, intruder, goal.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		err = service.DeleteGoal(ctx, intruder, goal.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGoalService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	athleteID := uuid.New()

	t.Run("complete then archive", func(t *testing.T) {
		repo := new(MockGoalRepository)
		service := NewGoalService(repo, zap.NewNop())

		goal, err := training.NewGoal(athleteID, "Stay composed", "", "")
		require.NoError(t, err)
		repo.On("FindByID", ctx, goal.ID).Return(goal, nil)
		repo.On("Update", ctx, goal).Return(nil)

		completed, err := service.CompleteGoal(ctx, athleteID, goal.ID)
		require.NoError(t, err)
		assert.Equal(t, "completed", completed.Status)
		require.NotNil(t, completed.CompletedAt)

		archived, err := service.ArchiveGoal(ctx, athleteID, goal.ID)
		require.NoError(t, err)
		assert.Equal(t, "archived", archived.Status)
	})

	t.Run("double complete is rejected", func(t *testing.T) {
		repo := new(MockGoalRepository)
		service := NewGoalService(repo, zap.NewNop())

		goal, err := training.NewGoal(athleteID, "Stay composed", "", "")
		require.NoError(t, err)
		require.NoError(t, goal.Complete())
		repo.On("FindByID", ctx, goal.ID).Return(goal, nil)

		_, err = service.CompleteGoal(ctx, athleteID, goal.ID)
		require.Error(t, err)
	})
}

func TestGoalService_UpdateGoal(t *testing.T) {
	ctx := context.Background()
	athleteID := uuid.New()

	t.Run("clears target date with empty string", func(t *testing.T) {
		repo := new(MockGoalRepository)
		service := NewGoalService(repo, zap.NewNop())

		goal, err := training.NewGoal(athleteID, "Stay composed", "", "")
		require.NoError(t, err)
		target, err := parseDate("2026-06-01")
		require.NoError(t, err)
		goal.SetTargetDate(&target)
		repo.On("FindByID", ctx, goal.ID).Return(goal, nil)
		repo.On("Update", ctx, goal).Return(nil)

		empty := ""
		resp, err := service.UpdateGoal(ctx, athleteID, goal.ID, UpdateGoalRequest{TargetDate: &empty})
		require.NoError(t, err)
		assert.Nil(t, resp.TargetDate)
	})
}
