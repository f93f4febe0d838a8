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

func TestCheckInService_CreateCheckIn(t *testing.T) {
	ctx := context.Background()
	athleteID := uuid.New()

	t.Run("records a daily check-in", func(t *testing.T) {
		repo := new(MockCheckInRepository)
		service := NewCheckInService(repo, zap.NewNop())
		repo.On("Create", ctx, mock.AnythingOfType("*training.CheckIn")).Return(nil)

		resp, err := service.CreateCheckIn(ctx, athleteID, CreateCheckInRequest{
			Date:   "2026-03-01",
			Mood:   7,
			Energy: 6,
			Stress: 3,
			Note:   "Slept well",
		})
		require.NoError(t, err)
		assert.Equal(t, "2026-03-01", resp.Date)
		assert.Equal(t, 7, resp.Mood)
	})

	t.Run("second check-in on the same date maps to CHECKIN_EXISTS", func(t *testing.T) {
		repo := new(MockCheckInRepository)
		service := NewCheckInService(repo, zap.NewNop())
		repo.On("Create", ctx, mock.AnythingOfType("*training.CheckIn")).Return(shared.ErrAlreadyExists)

		_, err := service.CreateCheckIn(ctx, athleteID, CreateCheckInRequest{
			Date: "2026-03-01", Mood: 5, Energy: 5, Stress: 5,
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CHECKIN_EXISTS", domainErr.Code)
	})

	t.Run("out-of-range scale is rejected by the domain", func(t *testing.T) {
		repo := new(MockCheckInRepository)
		service := NewCheckInService(repo, zap.NewNop())

		_, err := service.CreateCheckIn(ctx, athleteID, CreateCheckInRequest{
			Date: "2026-03-01", Mood: 11, Energy: 5, Stress: 5,
		})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCheckInService_ListCheckIns(t *testing.T) {
	ctx := context.Background()
	athleteID := uuid.New()

	t.Run("passes range bounds through", func(t *testing.T) {
		repo := new(MockCheckInRepository)
		service := NewCheckInService(repo, zap.NewNop())

		checkIn, err := training.NewCheckIn(athleteID, "2026-03-01", 7, 6, 3, "")
		require.NoError(t, err)
		repo.On("FindByAthlete", ctx, athleteID, "2026-03-01", "2026-03-31").
			Return([]*training.CheckIn{checkIn}, nil)

		result, err := service.ListCheckIns(ctx, athleteID, "2026-03-01", "2026-03-31")
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("malformed bound is rejected", func(t *testing.T) {
		repo := new(MockCheckInRepository)
		service := NewCheckInService(repo, zap.NewNop())

		_, err := service.ListCheckIns(ctx, athleteID, "March 1", "")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DATE", domainErr.Code)
	})
}

func TestCheckInService_GetCheckIn(t *testing.T) {
	ctx := context.Background()
	athleteID := uuid.New()

	repo := new(MockCheckInRepository)
	service := NewCheckInService(repo, zap.NewNop())

	checkIn, err := training.NewCheckIn(athleteID, "2026-03-01", 7, 6, 3, "")
	require.NoError(t, err)
	repo.On("FindByAthleteAndDate", ctx, athleteID, "2026-03-01").Return(checkIn, nil)

	resp, err := service.GetCheckIn(ctx, athleteID, "2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, checkIn.ID.String(), resp.ID)
}
