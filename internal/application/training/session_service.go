package training

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/summitmind/backend/internal/domain/identity"
	"github.com/summitmind/backend/internal/domain/shared"
	"github.com/summitmind/backend/internal/domain/training"
)

// SessionService records completed training sessions and manages voice
// coach sessions. Starting a voice session requires an entitled billing
// status, mirroring the premium gate on the session token endpoint.
type SessionService struct {
	sessions      training.SessionRepository
	voiceSessions training.VoiceSessionRepository
	athletes      identity.AthleteRepository
	logger        *zap.Logger
	now           func() time.Time
}

// NewSessionService creates a new SessionService
func NewSessionService(
	sessions training.SessionRepository,
	voiceSessions training.VoiceSessionRepository,
	athletes identity.AthleteRepository,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		sessions:      sessions,
		voiceSessions: voiceSessions,
		athletes:      athletes,
		logger:        logger,
		now:           time.Now,
	}
}

// RecordSession stores a completed training session
func (s *SessionService) RecordSession(ctx context.Context, athleteID uuid.UUID, req RecordSessionRequest) (*SessionResponse, error) {
	var scriptID *uuid.UUID
	if req.ScriptID != nil && *req.ScriptID != "" {
		parsed, err := uuid.Parse(*req.ScriptID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_SCRIPT_ID", "Script ID is not a valid UUID")
		}
		scriptID = &parsed
	}

	completedAt := s.now()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	session, err := training.NewTrainingSession(athleteID, scriptID, req.DurationSeconds, completedAt)
	if err != nil {
		return nil, err
	}
	if req.Rating != nil {
		if err := session.SetRating(*req.Rating); err != nil {
			return nil, err
		}
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return sessionResponse(session), nil
}

// RateSession attaches a rating to one of the athlete's sessions
func (s *SessionService) RateSession(ctx context.Context, athleteID, sessionID uuid.UUID, rating int) (*SessionResponse, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.AthleteID != athleteID {
		return nil, shared.ErrNotFound
	}

	if err := session.SetRating(rating); err != nil {
		return nil, err
	}

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return sessionResponse(session), nil
}

// ListSessions returns the athlete's most recent sessions
func (s *SessionService) ListSessions(ctx context.Context, athleteID uuid.UUID, limit int) ([]*SessionResponse, error) {
	sessions, err := s.sessions.FindByAthlete(ctx, athleteID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, sessionResponse(session))
	}
	return responses, nil
}

// StartVoiceSession opens a voice coach session. The voice coach is a
// premium feature, so the athlete's billing status is checked first.
func (s *SessionService) StartVoiceSession(ctx context.Context, athleteID uuid.UUID) (*VoiceSessionResponse, error) {
	athlete, err := s.athletes.FindByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ATHLETE_NOT_FOUND", "Athlete not found")
		}
		return nil, err
	}
	if !athlete.Billing.IsPremium() {
		return nil, shared.ErrPremiumRequired
	}

	roomName := fmt.Sprintf("voice-%s", uuid.New().String())
	session, err := training.NewVoiceSession(athleteID, roomName, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.voiceSessions.Create(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Voice session started",
		zap.String("athlete_id", athleteID.String()),
		zap.String("room", roomName),
	)
	return voiceSessionResponse(session), nil
}

// EndVoiceSession closes the athlete's voice session and stores the
// transcript summary
func (s *SessionService) EndVoiceSession(ctx context.Context, athleteID, sessionID uuid.UUID, req EndVoiceSessionRequest) (*VoiceSessionResponse, error) {
	session, err := s.voiceSessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.AthleteID != athleteID {
		return nil, shared.ErrNotFound
	}

	if err := session.Close(s.now(), req.Summary); err != nil {
		if errors.Is(err, shared.ErrInvalidState) {
			return nil, shared.NewDomainError("SESSION_CLOSED", "Voice session is already closed")
		}
		return nil, err
	}

	if err := s.voiceSessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return voiceSessionResponse(session), nil
}

// ListVoiceSessions returns the athlete's most recent voice sessions
func (s *SessionService) ListVoiceSessions(ctx context.Context, athleteID uuid.UUID, limit int) ([]*VoiceSessionResponse, error) {
	sessions, err := s.voiceSessions.FindByAthlete(ctx, athleteID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*VoiceSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, voiceSessionResponse(session))
	}
	return responses, nil
}
