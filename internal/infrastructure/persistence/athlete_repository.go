package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/summitmind/backend/internal/domain/billing"
	"github.com/summitmind/backend/internal/domain/identity"
	"github.com/summitmind/backend/internal/domain/shared"
	"github.com/summitmind/backend/internal/infrastructure/persistence/models"
)

// GormAthleteRepository implements AthleteRepository using GORM
type GormAthleteRepository struct {
	db *gorm.DB
}

// NewGormAthleteRepository creates a new GormAthleteRepository
func NewGormAthleteRepository(db *gorm.DB) *GormAthleteRepository {
	return &GormAthleteRepository{db: db}
}

// Create creates a new athlete
func (r *GormAthleteRepository) Create(ctx context.Context, athlete *identity.Athlete) error {
	model := models.AthleteModelFromDomain(athlete)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing athlete
func (r *GormAthleteRepository) Update(ctx context.Context, athlete *identity.Athlete) error {
	model := models.AthleteModelFromDomain(athlete)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an athlete by ID
func (r *GormAthleteRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Athlete, error) {
	var model models.AthleteModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds an athlete by email
func (r *GormAthleteRepository) FindByEmail(ctx context.Context, email string) (*identity.Athlete, error) {
	if email == "" {
		return nil, shared.ErrNotFound
	}
	var model models.AthleteModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByStripeCustomerID finds the athlete linked to a provider customer
func (r *GormAthleteRepository) FindByStripeCustomerID(ctx context.Context, customerID string) (*identity.Athlete, error) {
	if customerID == "" {
		return nil, shared.ErrNotFound
	}
	var model models.AthleteModel
	if err := r.db.WithContext(ctx).
		Where("stripe_customer_id = ?", customerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByStripeSubscriptionID finds the athlete linked to a provider subscription
func (r *GormAthleteRepository) FindByStripeSubscriptionID(ctx context.Context, subscriptionID string) (*identity.Athlete, error) {
	if subscriptionID == "" {
		return nil, shared.ErrNotFound
	}
	var model models.AthleteModel
	if err := r.db.WithContext(ctx).
		Where("stripe_subscription_id = ?", subscriptionID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByEmail checks if an email is already registered
func (r *GormAthleteRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AthleteModel{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// MergeBilling applies a partial billing update to the athlete row. Only
// the columns the patch carries appear in the UPDATE statement; columns
// the patch does not mention keep their stored value.
func (r *GormAthleteRepository) MergeBilling(ctx context.Context, id uuid.UUID, patch *billing.Patch) error {
	updates := billingColumns(patch)
	if len(updates) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.AthleteModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// billingColumns translates a billing patch into the column map for a
// partial UPDATE. A cleared subscription ID becomes an explicit NULL.
func billingColumns(patch *billing.Patch) map[string]any {
	if patch == nil {
		return nil
	}

	updates := make(map[string]any)
	if patch.Status != nil {
		updates["billing_status"] = *patch.Status
	}
	if patch.Plan != nil {
		updates["billing_plan"] = *patch.Plan
	}
	if patch.CustomerID != nil {
		updates["stripe_customer_id"] = *patch.CustomerID
	}
	if patch.SubscriptionID != nil {
		updates["stripe_subscription_id"] = *patch.SubscriptionID
	}
	if patch.ClearSubscriptionID {
		updates["stripe_subscription_id"] = nil
	}
	if patch.PriceID != nil {
		updates["stripe_price_id"] = *patch.PriceID
	}
	if patch.CancelAtPeriodEnd != nil {
		updates["billing_cancel_at_period_end"] = *patch.CancelAtPeriodEnd
	}
	if patch.CurrentPeriodStart != nil {
		updates["billing_current_period_start"] = *patch.CurrentPeriodStart
	}
	if patch.CurrentPeriodEnd != nil {
		updates["billing_current_period_end"] = *patch.CurrentPeriodEnd
	}
	if patch.TrialStart != nil {
		updates["billing_trial_start"] = *patch.TrialStart
	}
	if patch.TrialEnd != nil {
		updates["billing_trial_end"] = *patch.TrialEnd
	}
	if patch.LastPaymentAt != nil {
		updates["billing_last_payment_at"] = *patch.LastPaymentAt
	}

	// an otherwise empty patch does not touch the row at all
	if len(updates) == 0 {
		return nil
	}
	if patch.UpdatedAt != nil {
		updates["billing_updated_at"] = *patch.UpdatedAt
	}

	return updates
}

// Ensure GormAthleteRepository implements AthleteRepository
var _ identity.AthleteRepository = (*GormAthleteRepository)(nil)
