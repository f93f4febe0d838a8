package training

import (
	"time"

	"github.com/google/uuid"

	"github.com/summitmind/backend/internal/domain/shared"
)

// TrainingSession records one completed listen-through of a script or
// self-guided practice block
type TrainingSession struct {
	shared.BaseEntity
	AthleteID       uuid.UUID
	ScriptID        *uuid.UUID
	DurationSeconds int
	CompletedAt     time.Time
	Rating          *int
}

// NewTrainingSession creates a completed training session record
func NewTrainingSession(athleteID uuid.UUID, scriptID *uuid.UUID, durationSeconds int, completedAt time.Time) (*TrainingSession, error) {
	if durationSeconds <= 0 {
		return nil, shared.NewDomainError("INVALID_DURATION", "Session duration must be positive")
	}

	return &TrainingSession{
		BaseEntity:      shared.NewBaseEntity(),
		AthleteID:       athleteID,
		ScriptID:        scriptID,
		DurationSeconds: durationSeconds,
		CompletedAt:     completedAt,
	}, nil
}

// SetRating attaches a 1-5 athlete rating to the session
func (s *TrainingSession) SetRating(rating int) error {
	if rating < 1 || rating > 5 {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}
	s.Rating = &rating
	s.UpdatedAt = time.Now()
	return nil
}

// VoiceSession records one conversation with the voice coach
type VoiceSession struct {
	shared.BaseEntity
	AthleteID uuid.UUID
	RoomName  string
	StartedAt time.Time
	EndedAt   *time.Time
	Summary   string
}

// NewVoiceSession opens a voice session record
func NewVoiceSession(athleteID uuid.UUID, roomName string, startedAt time.Time) (*VoiceSession, error) {
	if roomName == "" {
		return nil, shared.NewDomainError("INVALID_ROOM", "Room name is required")
	}

	return &VoiceSession{
		BaseEntity: shared.NewBaseEntity(),
		AthleteID:  athleteID,
		RoomName:   roomName,
		StartedAt:  startedAt,
	}, nil
}

// Close ends the session and stores the transcript summary
func (s *VoiceSession) Close(endedAt time.Time, summary string) error {
	if s.EndedAt != nil {
		return shared.ErrInvalidState
	}
	if endedAt.Before(s.StartedAt) {
		return shared.NewDomainError("INVALID_TIME", "Session cannot end before it started")
	}

	s.EndedAt = &endedAt
	s.Summary = summary
	s.UpdatedAt = time.Now()

	return nil
}
