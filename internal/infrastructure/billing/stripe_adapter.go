package billing

import (
	"context"
	"fmt"
	"maps"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v81"
	portalsession "github.com/stripe/stripe-go/v81/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/subscription"
	"go.uber.org/zap"

	domainbilling "github.com/summitmind/backend/internal/domain/billing"
)

// StripeAdapter implements Stripe billing operations for subscription management
type StripeAdapter struct {
	config *StripeConfig
	logger *zap.Logger
}

// NewStripeAdapter creates a new Stripe adapter
func NewStripeAdapter(config *StripeConfig, logger *zap.Logger) (*StripeAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Initialize Stripe client
	config.InitStripeClient()

	return &StripeAdapter{
		config: config,
		logger: logger,
	}, nil
}

// CheckoutSessionInput contains input for creating a checkout session
type CheckoutSessionInput struct {
	AthleteID uuid.UUID
	Email     string
	Plan      domainbilling.PlanType
	Metadata  map[string]string
}

// CheckoutSessionOutput contains the result of creating a checkout session
type CheckoutSessionOutput struct {
	SessionID string
	URL       string
}

// CreateCheckoutSession creates a Stripe Checkout session in subscription
// mode. The athlete ID is written into both the session metadata and the
// subscription metadata so that every later webhook event can be joined back
// to the internal account.
func (a *StripeAdapter) CreateCheckoutSession(ctx context.Context, input CheckoutSessionInput) (*CheckoutSessionOutput, error) {
	a.logger.Debug("Creating Stripe checkout session",
		zap.String("athlete_id", input.AthleteID.String()),
		zap.String("plan", input.Plan.String()))

	priceID, err := a.config.GetPriceID(input.Plan)
	if err != nil {
		return nil, err
	}

	metadata := map[string]string{
		"user_id":   input.AthleteID.String(),
		"plan_type": input.Plan.String(),
	}
	maps.Copy(metadata, input.Metadata)

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail: stripe.String(input.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(a.config.SuccessURL),
		CancelURL:  stripe.String(a.config.CancelURL),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: metadata,
		},
	}
	params.Context = ctx
	params.Metadata = metadata

	if a.config.TrialDays > 0 {
		params.SubscriptionData.TrialPeriodDays = stripe.Int64(int64(a.config.TrialDays))
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		a.logger.Error("Failed to create Stripe checkout session",
			zap.String("athlete_id", input.AthleteID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("stripe: failed to create checkout session: %w", err)
	}

	a.logger.Info("Created Stripe checkout session",
		zap.String("athlete_id", input.AthleteID.String()),
		zap.String("session_id", sess.ID))

	return &CheckoutSessionOutput{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

// CreateBillingPortalSession creates a Stripe billing portal session for an
// existing customer
func (a *StripeAdapter) CreateBillingPortalSession(ctx context.Context, customerID string) (string, error) {
	a.logger.Debug("Creating Stripe billing portal session",
		zap.String("customer_id", customerID))

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(a.config.BillingPortalReturnURL),
	}
	params.Context = ctx

	sess, err := portalsession.New(params)
	if err != nil {
		a.logger.Error("Failed to create Stripe billing portal session",
			zap.String("customer_id", customerID),
			zap.Error(err))
		return "", fmt.Errorf("stripe: failed to create billing portal session: %w", err)
	}

	return sess.URL, nil
}

// FetchSubscription retrieves a subscription from Stripe. Used by the
// webhook service to recover the athlete ID from subscription metadata when
// an invoice event only carries the subscription reference. The call is
// bounded by the configured API timeout.
func (a *StripeAdapter) FetchSubscription(ctx context.Context, subscriptionID string) (*stripe.Subscription, error) {
	a.logger.Debug("Fetching Stripe subscription",
		zap.String("subscription_id", subscriptionID))

	if a.config.APITimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.APITimeout)
		defer cancel()
	}

	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	sub, err := subscription.Get(subscriptionID, params)
	if err != nil {
		a.logger.Error("Failed to fetch Stripe subscription",
			zap.String("subscription_id", subscriptionID),
			zap.Error(err))
		return nil, fmt.Errorf("stripe: failed to fetch subscription: %w", err)
	}

	return sub, nil
}

// CancelSubscription cancels a subscription, either immediately or at the
// end of the current billing period
func (a *StripeAdapter) CancelSubscription(ctx context.Context, subscriptionID string, atPeriodEnd bool) error {
	a.logger.Debug("Canceling Stripe subscription",
		zap.String("subscription_id", subscriptionID),
		zap.Bool("at_period_end", atPeriodEnd))

	if atPeriodEnd {
		params := &stripe.SubscriptionParams{
			CancelAtPeriodEnd: stripe.Bool(true),
		}
		params.Context = ctx
		if _, err := subscription.Update(subscriptionID, params); err != nil {
			return fmt.Errorf("stripe: failed to schedule cancellation: %w", err)
		}
		return nil
	}

	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx
	if _, err := subscription.Cancel(subscriptionID, params); err != nil {
		return fmt.Errorf("stripe: failed to cancel subscription: %w", err)
	}

	return nil
}
