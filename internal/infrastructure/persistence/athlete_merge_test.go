package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/summitmind/backend/internal/domain/billing"
	"github.com/summitmind/backend/internal/domain/identity"
	"github.com/summitmind/backend/internal/infrastructure/persistence/models"
)

func setupAthleteTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.AthleteModel{})
	require.NoError(t, err)

	return db
}

func createTestAthlete(t *testing.T, repo *GormAthleteRepository) *identity.Athlete {
	t.Helper()
	athlete, err := identity.NewAthlete("casey@example.com", "str0ngpass", "Casey")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), athlete))
	return athlete
}

// End-to-end merge semantics against a real database: columns absent from
// the patch keep their stored value across successive webhook deliveries.
func TestGormAthleteRepository_MergeBilling_RoundTrip(t *testing.T) {
	db := setupAthleteTestDB(t)
	repo := NewGormAthleteRepository(db)
	ctx := context.Background()
	athlete := createTestAthlete(t, repo)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	periodEnd := now.AddDate(0, 1, 0)

	// checkout completed: customer link only
	patch := billing.NewPatch(now).SetCustomerID("cus_77")
	require.NoError(t, repo.MergeBilling(ctx, athlete.ID, patch))

	// subscription created: full snapshot
	patch = billing.NewPatch(now).
		SetStatus(billing.StatusActive).
		SetPlan(billing.PlanMonthly).
		SetSubscriptionID("sub_42").
		SetPriceID("price_m").
		SetCancelAtPeriodEnd(false).
		SetPeriod(now, periodEnd)
	require.NoError(t, repo.MergeBilling(ctx, athlete.ID, patch))

	stored, err := repo.FindByID(ctx, athlete.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusActive, stored.Billing.Status)
	assert.Equal(t, "cus_77", stored.Billing.StripeCustomerID)
	assert.Equal(t, "sub_42", stored.Billing.StripeSubscriptionID)
	assert.Equal(t, "price_m", stored.Billing.StripePriceID)
	require.NotNil(t, stored.Billing.CurrentPeriodEnd)
	assert.True(t, stored.Billing.CurrentPeriodEnd.Equal(periodEnd))

	// payment succeeded: touches status and last payment only
	patch = billing.NewPatch(now.Add(time.Minute)).
		SetStatus(billing.StatusActive).
		SetLastPaymentAt(now.Add(time.Minute))
	require.NoError(t, repo.MergeBilling(ctx, athlete.ID, patch))

	stored, err = repo.FindByID(ctx, athlete.ID)
	require.NoError(t, err)
	assert.Equal(t, "sub_42", stored.Billing.StripeSubscriptionID, "untouched columns keep their value")
	assert.Equal(t, "cus_77", stored.Billing.StripeCustomerID)
	require.NotNil(t, stored.Billing.LastPaymentAt)

	// subscription deleted: expire, drop the subscription link, keep the customer
	patch = billing.NewPatch(now.Add(2 * time.Minute)).
		SetStatus(billing.StatusExpired).
		ClearSubscription().
		SetCancelAtPeriodEnd(false)
	require.NoError(t, repo.MergeBilling(ctx, athlete.ID, patch))

	stored, err = repo.FindByID(ctx, athlete.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusExpired, stored.Billing.Status)
	assert.Empty(t, stored.Billing.StripeSubscriptionID)
	assert.Equal(t, "cus_77", stored.Billing.StripeCustomerID)
	assert.False(t, stored.Billing.CancelAtPeriodEnd)
}

func TestGormAthleteRepository_EmailLookups(t *testing.T) {
	db := setupAthleteTestDB(t)
	repo := NewGormAthleteRepository(db)
	ctx := context.Background()
	athlete := createTestAthlete(t, repo)

	t.Run("lookup is case insensitive", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "Casey@Example.com")

		require.NoError(t, err)
		assert.Equal(t, athlete.ID, found.ID)
	})

	t.Run("exists by email", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "casey@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
