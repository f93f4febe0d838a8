package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/summitmind/backend/internal/domain/billing"
	"github.com/summitmind/backend/internal/domain/identity"
	"github.com/summitmind/backend/internal/domain/shared"
	"github.com/summitmind/backend/internal/infrastructure/auth"
)

func newTestAthleteService() (*AthleteService, *MockAthleteRepository, *auth.InMemoryTokenBlacklist) {
	repo := new(MockAthleteRepository)
	blacklist := auth.NewInMemoryTokenBlacklist()
	service := NewAthleteService(repo, newTestJWTService(), blacklist, zap.NewNop())
	return service, repo, blacklist
}

func TestAthleteService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("returns account with billing snapshot", func(t *testing.T) {
		service, repo, _ := newTestAthleteService()
		athlete, err := identity.NewAthlete("casey@example.com", "str0ngpass", "Casey")
		require.NoError(t, err)
		trialEnd := time.Now().Add(7 * 24 * time.Hour)
		athlete.Billing.Status = billing.StatusTrial
		athlete.Billing.Plan = billing.PlanMonthly
		athlete.Billing.StripeSubscriptionID = "sub_123"
		athlete.Billing.TrialEnd = &trialEnd
		repo.On("FindByID", ctx, athlete.ID).Return(athlete, nil)

		profile, err := service.GetProfile(ctx, athlete.ID)
		require.NoError(t, err)
		assert.Equal(t, "casey@example.com", profile.Athlete.Email)
		assert.Equal(t, "trial", profile.Billing.Status)
		assert.True(t, profile.Billing.Premium)
		assert.True(t, profile.Billing.HasSubscription)
		require.NotNil(t, profile.Billing.TrialEnd)
	})

	t.Run("unknown athlete returns domain error", func(t *testing.T) {
		service, repo, _ := newTestAthleteService()
		athlete, err := identity.NewAthlete("casey@example.com", "str0ngpass", "Casey")
		require.NoError(t, err)
		repo.On("FindByID", ctx, athlete.ID).Return(nil, shared.ErrNotFound)

		_, err = service.GetProfile(ctx, athlete.ID)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ATHLETE_NOT_FOUND", domainErr.Code)
	})
}

func TestAthleteService_GetBilling(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestAthleteService()

	athlete, err := identity.NewAthlete("casey@example.com", "str0ngpass", "Casey")
	require.NoError(t, err)
	repo.On("FindByID", ctx, athlete.ID).Return(athlete, nil)

	info, err := service.GetBilling(ctx, athlete.ID)
	require.NoError(t, err)
	assert.Equal(t, "none", info.Status)
	assert.False(t, info.Premium)
	assert.False(t, info.HasSubscription)
}

func TestAthleteService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("applies partial edits", func(t *testing.T) {
		service, repo, _ := newTestAthleteService()
		athlete, err := identity.NewAthlete("casey@example.com", "str0ngpass", "Casey")
		require.NoError(t, err)
		repo.On("FindByID", ctx, athlete.ID).Return(athlete, nil)
		repo.On("Update", ctx, athlete).Return(nil)

		sport := "trail running"
		profile, err := service.UpdateProfile(ctx, athlete.ID, UpdateProfileInput{Sport: &sport})
		require.NoError(t, err)
		assert.Equal(t, "trail running", profile.Athlete.Sport)
		assert.Equal(t, "Casey", profile.Athlete.DisplayName, "unspecified fields stay untouched")
	})

	t.Run("invalid display name is rejected", func(t *testing.T) {
		service, repo, _ := newTestAthleteService()
		athlete, err := identity.NewAthlete("casey@example.com", "str0ngpass", "Casey")
		require.NoError(t, err)
		repo.On("FindByID", ctx, athlete.ID).Return(athlete, nil)

		blank := "  "
		_, err = service.UpdateProfile(ctx, athlete.ID, UpdateProfileInput{DisplayName: &blank})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestAthleteService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("changes hash and invalidates earlier sessions", func(t *testing.T) {
		service, repo, blacklist := newTestAthleteService()
		athlete, err := identity.NewAthlete("casey@example.com", "oldpassw0rd", "Casey")
		require.NoError(t, err)
		repo.On("FindByID", ctx, athlete.ID).Return(athlete, nil)
		repo.On("Update", ctx, athlete).Return(nil)

		issuedBefore := time.Now().Add(-time.Minute)

		err = service.ChangePassword(ctx, athlete.ID, ChangePasswordInput{
			CurrentPassword: "oldpassw0rd",
			NewPassword:     "newpassw0rd",
		})
		require.NoError(t, err)
		assert.True(t, athlete.CheckPassword("newpassw0rd"))

		invalidated, err := blacklist.IsAthleteTokenInvalidated(ctx, athlete.ID.String(), issuedBefore)
		require.NoError(t, err)
		assert.True(t, invalidated)
	})

	t.Run("wrong current password is rejected", func(t *testing.T) {
		service, repo, _ := newTestAthleteService()
		athlete, err := identity.NewAthlete("casey@example.com", "oldpassw0rd", "Casey")
		require.NoError(t, err)
		repo.On("FindByID", ctx, athlete.ID).Return(athlete, nil)

		err = service.ChangePassword(ctx, athlete.ID, ChangePasswordInput{
			CurrentPassword: "wrongpass1",
			NewPassword:     "newpassw0rd",
		})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
