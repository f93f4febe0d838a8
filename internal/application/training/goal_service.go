// Package training provides the application services behind the dashboard
// training features: goals, daily check-ins, completed sessions, and
// voice coach sessions.
package training

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/summitmind/backend/internal/domain/shared"
	"github.com/summitmind/backend/internal/domain/training"
)

// GoalService handles goal CRUD for the dashboard
type GoalService struct {
	goals  training.GoalRepository
	logger *zap.Logger
}

// NewGoalService creates a new GoalService
func NewGoalService(goals training.GoalRepository, logger *zap.Logger) *GoalService {
	return &GoalService{goals: goals, logger: logger}
}

// CreateGoal creates an active goal for the athlete
func (s *GoalService) CreateGoal(ctx context.Context, athleteID uuid.UUID, req CreateGoalRequest) (*GoalResponse, error) {
	goal, err := training.NewGoal(athleteID, req.Title, req.Description, req.Category)
	if err != nil {
		return nil, err
	}

	if req.TargetDate != nil {
		target, err := parseDate(*req.TargetDate)
		if err != nil {
			return nil, err
		}
		goal.SetTargetDate(&target)
	}

	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goalResponse(goal), nil
}

// ListGoals returns the athlete's goals, optionally filtered by status
func (s *GoalService) ListGoals(ctx context.Context, athleteID uuid.UUID, status string) ([]*GoalResponse, error) {
	var filter *training.GoalStatus
	if status != "" {
		goalStatus := training.GoalStatus(status)
		switch goalStatus {
		case training.GoalStatusActive, training.GoalStatusCompleted, training.GoalStatusArchived:
			filter = &goalStatus
		default:
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown goal status")
		}
	}

	goals, err := s.goals.FindByAthlete(ctx, athleteID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*GoalResponse, 0, len(goals))
	for _, goal := range goals {
		responses = append(responses, goalResponse(goal))
	}
	return responses, nil
}

// UpdateGoal applies partial edits to the athlete's goal
func (s *GoalService) UpdateGoal(ctx context.Context, athleteID, goalID uuid.UUID, req UpdateGoalRequest) (*GoalResponse, error) {
	goal, err := s.findOwnedGoal(ctx, athleteID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := *req.Title
		if title == "" {
			return nil, shared.NewDomainError("INVALID_TITLE", "Goal title is required")
		}
		if len(title) > 200 {
			return nil, shared.NewDomainError("INVALID_TITLE", "Goal title cannot exceed 200 characters")
		}
		goal.Title = title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.Category != nil {
		goal.Category = *req.Category
	}
	if req.TargetDate != nil {
		if *req.TargetDate == "" {
			goal.SetTargetDate(nil)
		} else {
			target, err := parseDate(*req.TargetDate)
			if err != nil {
				return nil, err
			}
			goal.SetTargetDate(&target)
		}
	}
	goal.UpdatedAt = time.Now()
	goal.IncrementVersion()

	if err := s.goals.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goalResponse(goal), nil
}

// CompleteGoal marks the athlete's goal completed
func (s *GoalService) CompleteGoal(ctx context.Context, athleteID, goalID uuid.UUID) (*GoalResponse, error) {
	goal, err := s.findOwnedGoal(ctx, athleteID, goalID)
	if err != nil {
		return nil, err
	}

	if err := goal.Complete(); err != nil {
		return nil, err
	}

	if err := s.goals.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goalResponse(goal), nil
}

// ArchiveGoal archives the athlete's goal
func (s *GoalService) ArchiveGoal(ctx context.Context, athleteID, goalID uuid.UUID) (*GoalResponse, error) {
	goal, err := s.findOwnedGoal(ctx, athleteID, goalID)
	if err != nil {
		return nil, err
	}

	if err := goal.Archive(); err != nil {
		return nil, err
	}

	if err := s.goals.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goalResponse(goal), nil
}

// DeleteGoal deletes the athlete's goal
func (s *GoalService) DeleteGoal(ctx context.Context, athleteID, goalID uuid.UUID) error {
	if _, err := s.findOwnedGoal(ctx, athleteID, goalID); err != nil {
		return err
	}
	return s.goals.Delete(ctx, goalID)
}

// findOwnedGoal loads a goal and verifies ownership. Another athlete's
// goal is indistinguishable from a missing one.
func (s *GoalService) findOwnedGoal(ctx context.Context, athleteID, goalID uuid.UUID) (*training.Goal, error) {
	goal, err := s.goals.FindByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal.AthleteID != athleteID {
		return nil, shared.ErrNotFound
	}
	return goal, nil
}

// parseDate parses a local date in check-in layout
func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(training.CheckInDateLayout, value)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Date must be in YYYY-MM-DD format")
	}
	return parsed, nil
}
