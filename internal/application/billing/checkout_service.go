package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainbilling "github.com/summitmind/backend/internal/domain/billing"
	"github.com/summitmind/backend/internal/domain/identity"
	"github.com/summitmind/backend/internal/domain/shared"
	infrabilling "github.com/summitmind/backend/internal/infrastructure/billing"
)

// PaymentGateway is the outbound interface the checkout flow needs from the
// payment provider adapter
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, input infrabilling.CheckoutSessionInput) (*infrabilling.CheckoutSessionOutput, error)
	CreateBillingPortalSession(ctx context.Context, customerID string) (string, error)
}

// CheckoutService starts checkout and billing portal flows. It is the
// counterpart of the webhook service: checkout stamps the athlete ID into
// the provider metadata that webhook events later carry back.
type CheckoutService struct {
	gateway  PaymentGateway
	athletes identity.AthleteRepository
	logger   *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(gateway PaymentGateway, athletes identity.AthleteRepository, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		gateway:  gateway,
		athletes: athletes,
		logger:   logger,
	}
}

// CheckoutResponse is returned to the dashboard to redirect into Stripe
type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// StartCheckout creates a checkout session for the athlete and plan
func (s *CheckoutService) StartCheckout(ctx context.Context, athleteID uuid.UUID, plan domainbilling.PlanType) (*CheckoutResponse, error) {
	if !plan.IsValid() {
		return nil, shared.NewDomainError("INVALID_PLAN", "Unknown plan type")
	}

	athlete, err := s.athletes.FindByID(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	if athlete.Billing.IsPremium() {
		return nil, shared.NewDomainError("ALREADY_SUBSCRIBED", "An active subscription already exists")
	}

	out, err := s.gateway.CreateCheckoutSession(ctx, infrabilling.CheckoutSessionInput{
		AthleteID: athlete.ID,
		Email:     athlete.Email,
		Plan:      plan,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start checkout: %w", err)
	}

	s.logger.Info("Checkout session started",
		zap.String("athlete_id", athlete.ID.String()),
		zap.String("plan", plan.String()))

	return &CheckoutResponse{SessionID: out.SessionID, URL: out.URL}, nil
}

// PortalResponse is returned to the dashboard to redirect into the billing portal
type PortalResponse struct {
	URL string `json:"url"`
}

// OpenBillingPortal creates a billing portal session for an athlete with an
// established provider customer
func (s *CheckoutService) OpenBillingPortal(ctx context.Context, athleteID uuid.UUID) (*PortalResponse, error) {
	athlete, err := s.athletes.FindByID(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	if athlete.Billing.StripeCustomerID == "" {
		return nil, shared.NewDomainError("NO_BILLING_ACCOUNT", "No billing account exists yet")
	}

	url, err := s.gateway.CreateBillingPortalSession(ctx, athlete.Billing.StripeCustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to open billing portal: %w", err)
	}

	return &PortalResponse{URL: url}, nil
}
