package training

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/summitmind/backend/internal/domain/billing"
	"github.com/summitmind/backend/internal/domain/identity"
	"github.com/summitmind/backend/internal/domain/shared"
	"github.com/summitmind/backend/internal/domain/training"
)

func newTestSessionService() (*SessionService, *MockSessionRepository, *MockVoiceSessionRepository, *MockAthleteRepository) {
	sessions := new(MockSessionRepository)
	voice := new(MockVoiceSessionRepository)
	athletes := new(MockAthleteRepository)
	service := NewSessionService(sessions, voice, athletes, zap.NewNop())
	return service, sessions, voice, athletes
}

func entitledAthlete(t *testing.T, status billing.Status) *identity.Athlete {
	t.Helper()
	athlete, err := identity.NewAthlete("casey@example.com", "str0ngpass", "Casey")
	require.NoError(t, err)
	athlete.Billing.Status = status
	return athlete
}

func TestSessionService_RecordSession(t *testing.T) {
	ctx := context.Background()
	athleteID := uuid.New()

	t.Run("records session with script and rating", func(t *testing.T) {
		service, sessions, _, _ := newTestSessionService()
		sessions.On("Create", ctx, mock.AnythingOfType("*training.TrainingSession")).Return(nil)

		scriptID := uuid.New().String()
		rating := 4
		resp, err := service.RecordSession(ctx, athleteID, RecordSessionRequest{
			ScriptID:        &scriptID,
			DurationSeconds: 600,
			Rating:          &rating,
		})
		require.NoError(t, err)
		require.NotNil(t, resp.ScriptID)
		assert.Equal(t, scriptID, *resp.ScriptID)
		require.NotNil(t, resp.Rating)
		assert.Equal(t, 4, *resp.Rating)
	})

	t.Run("zero duration is rejected", func(t *testing.T) {
		service, sessions, _, _ := newTestSessionService()

		_, err := service.RecordSession(ctx, athleteID, RecordSessionRequest{DurationSeconds: 0})
		require.Error(t, err)
		sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("malformed script id is rejected", func(t *testing.T) {
		service, _, _, _ := newTestSessionService()

		bad := "not-a-uuid"
		_, err := service.RecordSession(ctx, athleteID, RecordSessionRequest{
			ScriptID:        &bad,
			DurationSeconds: 300,
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_SCRIPT_ID", domainErr.Code)
	})
}

func TestSessionService_RateSession(t *testing.T) {
	ctx := context.Background()
	athleteID := uuid.New()

	t.Run("attaches rating to own session", func(t *testing.T) {
		service, sessions, _, _ := newTestSessionService()
		session, err := training.NewTrainingSession(athleteID, nil, 300, service.now())
		require.NoError(t, err)
		sessions.On("FindByID", ctx, session.ID).Return(session, nil)
		sessions.On("Update", ctx, session).Return(nil)

		resp, err := service.RateSession(ctx, athleteID, session.ID, 5)
		require.NoError(t, err)
		require.NotNil(t, resp.Rating)
		assert.Equal(t, 5, *resp.Rating)
	})

	t.Run("another athlete's session looks missing", func(t *testing.T) {
		service, sessions, _, _ := newTestSessionService()
		session, err := training.NewTrainingSession(athleteID, nil, 300, service.now())
		require.NoError(t, err)
		sessions.On("FindByID", ctx, session.ID).Return(session, nil)

		_, err = service.RateSession(ctx, uuid.New(), session.ID, 5)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSessionService_StartVoiceSession(t *testing.T) {
	ctx := context.Background()

	t.Run("premium athlete gets a room", func(t *testing.T) {
		service, _, voice, athletes := newTestSessionService()
		athlete := entitledAthlete(t, billing.StatusActive)
		athletes.On("FindByID", ctx, athlete.ID).Return(athlete, nil)
		voice.On("Create", ctx, mock.AnythingOfType("*training.VoiceSession")).Return(nil)

		resp, err := service.StartVoiceSession(ctx, athlete.ID)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(resp.RoomName, "voice-"))
		assert.Nil(t, resp.EndedAt)
	})

	t.Run("trial status is entitled", func(t *testing.T) {
		service, _, voice, athletes := newTestSessionService()
		athlete := entitledAthlete(t, billing.StatusTrial)
		athletes.On("FindByID", ctx, athlete.ID).Return(athlete, nil)
		voice.On("Create", ctx, mock.AnythingOfType("*training.VoiceSession")).Return(nil)

		_, err := service.StartVoiceSession(ctx, athlete.ID)
		require.NoError(t, err)
	})

	t.Run("expired status is refused", func(t *testing.T) {
		service, _, voice, athletes := newTestSessionService()
		athlete := entitledAthlete(t, billing.StatusExpired)
		athletes.On("FindByID", ctx, athlete.ID).Return(athlete, nil)

		_, err := service.StartVoiceSession(ctx, athlete.ID)
		assert.ErrorIs(t, err, shared.ErrPremiumRequired)
		voice.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestSessionService_EndVoiceSession(t *testing.T) {
	ctx := context.Background()
	athleteID := uuid.New()

	t.Run("closes session with summary", func(t *testing.T) {
		service, _, voice, _ := newTestSessionService()
		session, err := training.NewVoiceSession(athleteID, "voice-room", service.now())
		require.NoError(t, err)
		voice.On("FindByID", ctx, session.ID).Return(session, nil)
		voice.On("Update", ctx, session).Return(nil)

		resp, err := service.EndVoiceSession(ctx, athleteID, session.ID, EndVoiceSessionRequest{
			Summary: "Worked on pre-race nerves",
		})
		require.NoError(t, err)
		require.NotNil(t, resp.EndedAt)
		assert.Equal(t, "Worked on pre-race nerves", resp.Summary)
	})

	t.Run("double close maps to SESSION_CLOSED", func(t *testing.T) {
		service, _, voice, _ := newTestSessionService()
		session, err := training.NewVoiceSession(athleteID, "voice-room", service.now())
		require.NoError(t, err)
		require.NoError(t, session.Close(service.now(), "first"))
		voice.On("FindByID", ctx, session.ID).Return(session, nil)

		_, err = service.EndVoiceSession(ctx, athleteID, session.ID, EndVoiceSessionRequest{})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "SESSION_CLOSED", domainErr.Code)
	})
}
