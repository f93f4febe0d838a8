package training

import (
	"context"

	"github.com/google/uuid"
)

// GoalRepository defines the interface for goal persistence
type GoalRepository interface {
	Create(ctx context.Context, goal *Goal) error
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Goal, error)
	FindByAthlete(ctx context.Context, athleteID uuid.UUID, status *GoalStatus) ([]*Goal, error)
}

// CheckInRepository defines the interface for check-in persistence
type CheckInRepository interface {
	Create(ctx context.Context, checkIn *CheckIn) error
	FindByAthleteAndDate(ctx context.Context, athleteID uuid.UUID, date string) (*CheckIn, error)
	FindByAthlete(ctx context.Context, athleteID uuid.UUID, from, to string) ([]*CheckIn, error)
}

// SessionRepository defines the interface for training session persistence
type SessionRepository interface {
	Create(ctx context.Context, session *TrainingSession) error
	Update(ctx context.Context, session *TrainingSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*TrainingSession, error)
	FindByAthlete(ctx context.Context, athleteID uuid.UUID, limit int) ([]*TrainingSession, error)
}

// VoiceSessionRepository defines the interface for voice session persistence
type VoiceSessionRepository interface {
	Create(ctx context.Context, session *VoiceSession) error
	Update(ctx context.Context, session *VoiceSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*VoiceSession, error)
	FindByAthlete(ctx context.Context, athleteID uuid.UUID, limit int) ([]*VoiceSession, error)
}
