package training

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoal(t *testing.T) {
	athleteID := uuid.New()

	goal, err := NewGoal(athleteID, "  Stay calm under pressure  ", "Pre-race routine", "focus")
	require.NoError(t, err)

	assert.Equal(t, athleteID, goal.AthleteID)
	assert.Equal(t, "Stay calm under pressure", goal.Title)
	assert.Equal(t, GoalStatusActive, goal.Status)
	assert.Nil(t, goal.CompletedAt)
}

func TestNewGoal_Validation(t *testing.T) {
	athleteID := uuid.New()

	_, err := NewGoal(athleteID, "", "", "")
	assert.Error(t, err)

	_, err = NewGoal(athleteID, strings.Repeat("x", 201), "", "")
	assert.Error(t, err)
}

func TestGoal_Complete(t *testing.T) {
	goal, err := NewGoal(uuid.New(), "Visualize daily", "", "visualization")
	require.NoError(t, err)

	require.NoError(t, goal.Complete())
	assert.Equal(t, GoalStatusCompleted, goal.Status)
	assert.NotNil(t, goal.CompletedAt)

	// completing twice is rejected
	assert.Error(t, goal.Complete())
}

func TestGoal_Archive(t *testing.T) {
	goal, err := NewGoal(uuid.New(), "Visualize daily", "", "visualization")
	require.NoError(t, err)

	require.NoError(t, goal.Archive())
	assert.Equal(t, GoalStatusArchived, goal.Status)
	assert.Error(t, goal.Archive())
}
