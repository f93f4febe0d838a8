// Package training provides domain models for the athlete dashboard:
// goals, daily check-ins, training sessions, and voice coaching sessions.
package training

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/summitmind/backend/internal/domain/shared"
)

// GoalStatus represents the lifecycle state of a goal
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusArchived  GoalStatus = "archived"
)

// Goal represents a mental-training goal an athlete is working toward
type Goal struct {
	shared.BaseAggregateRoot
	AthleteID   uuid.UUID
	Title       string
	Description string
	Category    string
	TargetDate  *time.Time
	Status      GoalStatus
	CompletedAt *time.Time
}

// NewGoal creates a new active goal for an athlete
func NewGoal(athleteID uuid.UUID, title, description, category string) (*Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Goal title is required")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Goal title cannot exceed 200 characters")
	}

	return &Goal{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		AthleteID:         athleteID,
		Title:             title,
		Description:       strings.TrimSpace(description),
		Category:          strings.TrimSpace(category),
		Status:            GoalStatusActive,
	}, nil
}

// SetTargetDate sets or clears the goal's target date
func (g *Goal) SetTargetDate(date *time.Time) {
	g.TargetDate = date
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
}

// Complete marks the goal as achieved
func (g *Goal) Complete() error {
	if g.Status != GoalStatusActive {
		return shared.ErrInvalidState
	}

	now := time.Now()
	g.Status = GoalStatusCompleted
	g.CompletedAt = &now
	g.UpdatedAt = now
	g.IncrementVersion()

	return nil
}

// Archive hides the goal from the active list without deleting it
func (g *Goal) Archive() error {
	if g.Status == GoalStatusArchived {
		return shared.ErrInvalidState
	}

	g.Status = GoalStatusArchived
	g.UpdatedAt = time.Now()
	g.IncrementVersion()

	return nil
}
