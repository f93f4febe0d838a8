package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/summitmind/backend/internal/domain/billing"
)

// AthleteRepository defines the interface for athlete persistence
type AthleteRepository interface {
	// Create creates a new athlete
	Create(ctx context.Context, athlete *Athlete) error

	// Update updates an existing athlete
	Update(ctx context.Context, athlete *Athlete) error

	// FindByID finds an athlete by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Athlete, error)

	// FindByEmail finds an athlete by email
	FindByEmail(ctx context.Context, email string) (*Athlete, error)

	// FindByStripeCustomerID finds the athlete linked to a provider customer
	FindByStripeCustomerID(ctx context.Context, customerID string) (*Athlete, error)

	// FindByStripeSubscriptionID finds the athlete linked to a provider subscription
	FindByStripeSubscriptionID(ctx context.Context, subscriptionID string) (*Athlete, error)

	// ExistsByEmail checks if an email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// MergeBilling applies a partial billing update to the athlete row.
	// Only the columns the patch carries are written; everything else
	// keeps its stored value.
	MergeBilling(ctx context.Context, id uuid.UUID, patch *billing.Patch) error
}
