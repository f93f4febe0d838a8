package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/summitmind/backend/internal/domain/shared"
	"github.com/summitmind/backend/internal/domain/training"
)

func TestGormGoalRepository_CRUD(t *testing.T) {
	db := setupTrainingTestDB(t)
	repo := NewGormGoalRepository(db)
	ctx := context.Background()
	athleteID := uuid.New()

	goal, err := training.NewGoal(athleteID, "Stay calm at the start line", "", "composure")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, goal))

	t.Run("finds created goal", func(t *testing.T) {
		found, err := repo.FindByID(ctx, goal.ID)

		require.NoError(t, err)
		assert.Equal(t, "Stay calm at the start line", found.Title)
		assert.Equal(t, training.GoalStatusActive, found.Status)
	})

	t.Run("update persists completion", func(t *testing.T) {
		found, err := repo.FindByID(ctx, goal.ID)
		require.NoError(t, err)
		require.NoError(t, found.Complete())

		require.NoError(t, repo.Update(ctx, found))

		reloaded, err := repo.FindByID(ctx, goal.ID)
		require.NoError(t, err)
		assert.Equal(t, training.GoalStatusCompleted, reloaded.Status)
		assert.NotNil(t, reloaded.CompletedAt)
	})

	t.Run("delete removes the goal", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, goal.ID))

		_, err := repo.FindByID(ctx, goal.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, goal.ID), shared.ErrNotFound)
	})
}

func TestGormGoalRepository_FindByAthlete(t *testing.T) {
	db := setupTrainingTestDB(t)
	repo := NewGormGoalRepository(db)
	ctx := context.Background()
	athleteID := uuid.New()

	active, err := training.NewGoal(athleteID, "Visualize the course daily", "", "visualization")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, active))

	done, err := training.NewGoal(athleteID, "Build a pre-race routine", "", "routine")
	require.NoError(t, err)
	require.NoError(t, done.Complete())
	require.NoError(t, repo.Create(ctx, done))

	other, err := training.NewGoal(uuid.New(), "Unrelated goal", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, other))

	t.Run("returns all goals for the athlete", func(t *testing.T) {
		goals, err := repo.FindByAthlete(ctx, athleteID, nil)

		require.NoError(t, err)
		assert.Len(t, goals, 2)
	})

	t.Run("filters by status", func(t *testing.T) {
		status := training.GoalStatusActive
		goals, err := repo.FindByAthlete(ctx, athleteID, &status)

		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, active.ID, goals[0].ID)
	})
}

func TestGormSessionRepository_FindByAthlete(t *testing.T) {
	db := setupTrainingTestDB(t)
	repo := NewGormSessionRepository(db)
	ctx := context.Background()
	athleteID := uuid.New()
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		session, err := training.NewTrainingSession(athleteID, nil, 600, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, session))
	}

	t.Run("newest first with limit", func(t *testing.T) {
		sessions, err := repo.FindByAthlete(ctx, athleteID, 2)

		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.True(t, sessions[0].CompletedAt.After(sessions[1].CompletedAt))
	})

	t.Run("non-positive limit uses the default", func(t *testing.T) {
		sessions, err := repo.FindByAthlete(ctx, athleteID, 0)

		require.NoError(t, err)
		assert.Len(t, sessions, 3)
	})
}

func TestGormVoiceSessionRepository_Close(t *testing.T) {
	db := setupTrainingTestDB(t)
	repo := NewGormVoiceSessionRepository(db)
	ctx := context.Background()
	athleteID := uuid.New()
	startedAt := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	session, err := training.NewVoiceSession(athleteID, "coach-room-1", startedAt)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, session))

	require.NoError(t, session.Close(startedAt.Add(20*time.Minute), "worked on reframing pre-race nerves"))
	require.NoError(t, repo.Update(ctx, session))

	reloaded, err := repo.FindByID(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.EndedAt)
	assert.Equal(t, "worked on reframing pre-race nerves", reloaded.Summary)
}
