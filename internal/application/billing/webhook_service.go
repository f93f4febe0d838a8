package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/zap"

	domainbilling "github.com/summitmind/backend/internal/domain/billing"
	"github.com/summitmind/backend/internal/domain/identity"
	"github.com/summitmind/backend/internal/domain/shared"
	infrabilling "github.com/summitmind/backend/internal/infrastructure/billing"
	"github.com/summitmind/backend/internal/infrastructure/telemetry"
)

// SubscriptionFetcher retrieves subscriptions from the payment provider.
// Implemented by the Stripe adapter; invoice events only carry a subscription
// reference, so the service fetches the full object to recover the athlete ID
// stored in its metadata.
type SubscriptionFetcher interface {
	FetchSubscription(ctx context.Context, subscriptionID string) (*stripe.Subscription, error)
}

// WebhookService processes Stripe webhook deliveries and keeps the billing
// snapshot on the athletes table in sync with the provider.
//
// Every handled event results in exactly one field-level merge write derived
// purely from the event payload, so redelivering an event writes the same
// state again. Out-of-order deliveries apply last-write-wins; Stripe
// near-simultaneous events for the same subscription converge on refetch, and
// the product reads billing state on page load rather than holding it live.
type WebhookService struct {
	config   *infrabilling.StripeConfig
	athletes identity.AthleteRepository
	subs     SubscriptionFetcher
	eventBus shared.EventBus
	metrics  *telemetry.BillingMetrics
	logger   *zap.Logger
	now      func() time.Time
}

// WebhookServiceConfig contains configuration for WebhookService
type WebhookServiceConfig struct {
	Config        *infrabilling.StripeConfig
	Athletes      identity.AthleteRepository
	Subscriptions SubscriptionFetcher
	EventBus      shared.EventBus

	// Metrics is optional; merge writes are counted when set
	Metrics *telemetry.BillingMetrics
	Logger  *zap.Logger

	// Now overrides the clock, used by tests to pin trial-window checks
	Now func() time.Time
}

// NewWebhookService creates a new WebhookService
func NewWebhookService(cfg WebhookServiceConfig) *WebhookService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &WebhookService{
		config:   cfg.Config,
		athletes: cfg.Athletes,
		subs:     cfg.Subscriptions,
		eventBus: cfg.EventBus,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
		now:      now,
	}
}

// WebhookResult contains the result of processing a webhook
type WebhookResult struct {
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	Processed bool   `json:"processed"`
	Message   string `json:"message,omitempty"`
}

// ErrInvalidSignature is returned when the delivery fails signature
// verification. The handler maps it to 400 so Stripe does not retry.
var ErrInvalidSignature = errors.New("webhook signature verification failed")

// Process verifies and dispatches a Stripe webhook delivery. The payload must
// be the raw request body; signature verification runs over the exact bytes.
func (s *WebhookService) Process(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	event, err := webhook.ConstructEvent(payload, signature, s.config.WebhookSecret)
	if err != nil {
		s.logger.Error("Failed to verify webhook signature", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	s.logger.Info("Processing Stripe webhook event",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))

	result := &WebhookResult{
		EventID:   event.ID,
		EventType: string(event.Type),
		Processed: true,
	}

	switch event.Type {
	case "checkout.session.completed":
		err = s.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.created", "customer.subscription.updated":
		err = s.handleSubscriptionChange(ctx, event)
	case "customer.subscription.deleted":
		err = s.handleSubscriptionDeleted(ctx, event)
	case "invoice.payment_succeeded":
		err = s.handleInvoicePaymentSucceeded(ctx, event)
	case "invoice.payment_failed":
		err = s.handleInvoicePaymentFailed(ctx, event)
	default:
		s.logger.Debug("Unhandled webhook event type",
			zap.String("event_type", string(event.Type)))
		result.Message = "Event type not handled"
	}

	if err != nil {
		s.logger.Error("Failed to process webhook event",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
		result.Processed = false
		result.Message = err.Error()
		return result, err
	}

	return result, nil
}

// handleCheckoutCompleted links the newly created Stripe customer to the
// athlete who started the checkout. Subscription details arrive separately
// via customer.subscription.created, so only the customer reference is
// merged here.
func (s *WebhookService) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to unmarshal checkout session: %w", err)
	}

	athleteID, ok := athleteIDFromMetadata(sess.Metadata)
	if !ok {
		// A session created outside our checkout flow (or with corrupted
		// metadata) cannot be joined to an account. Acknowledge receipt so
		// Stripe does not retry a delivery we can never process.
		s.logger.Warn("Checkout session has no usable user_id metadata, skipping",
			zap.String("session_id", sess.ID))
		return nil
	}

	s.logger.Info("Handling checkout completed",
		zap.String("session_id", sess.ID),
		zap.String("athlete_id", athleteID.String()))

	patch := domainbilling.NewPatch(s.now()).
		SetCustomerID(customerIDOf(sess.Customer))

	return s.merge(ctx, athleteID, patch, string(event.Type))
}

// handleSubscriptionChange handles customer.subscription.created and
// customer.subscription.updated, which carry the full subscription state
func (s *WebhookService) handleSubscriptionChange(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	s.logger.Info("Handling subscription change",
		zap.String("subscription_id", sub.ID),
		zap.String("status", string(sub.Status)))

	athleteID, ok, err := s.resolveAthleteForSubscription(ctx, &sub)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Warn("No athlete found for subscription, skipping",
			zap.String("subscription_id", sub.ID))
		return nil
	}

	trialEnd := unixTime(sub.TrialEnd)
	status := domainbilling.ResolveStatus(string(sub.Status), trialEnd, s.now())

	patch := domainbilling.NewPatch(s.now()).
		SetStatus(status).
		SetCustomerID(customerIDOf(sub.Customer)).
		SetSubscriptionID(sub.ID).
		SetPriceID(priceIDOf(&sub)).
		SetPlan(domainbilling.ParsePlanType(sub.Metadata["plan_type"])).
		SetCancelAtPeriodEnd(sub.CancelAtPeriodEnd)

	if start, end := unixTime(sub.CurrentPeriodStart), unixTime(sub.CurrentPeriodEnd); start != nil && end != nil {
		patch.SetPeriod(*start, *end)
	}
	// Trial bounds merge independently. An event can carry trial_end without
	// trial_start, and a trial status must never be written without its end
	// date.
	if start := unixTime(sub.TrialStart); start != nil {
		patch.SetTrialStart(*start)
	}
	if trialEnd != nil {
		patch.SetTrialEnd(*trialEnd)
	}

	return s.merge(ctx, athleteID, patch, string(event.Type))
}

// handleSubscriptionDeleted handles customer.subscription.deleted. The
// customer link is kept so the athlete can resubscribe under the same
// provider customer.
func (s *WebhookService) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	s.logger.Info("Handling subscription deleted",
		zap.String("subscription_id", sub.ID))

	athleteID, ok, err := s.resolveAthleteForSubscription(ctx, &sub)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Warn("No athlete found for subscription, skipping",
			zap.String("subscription_id", sub.ID))
		return nil
	}

	patch := domainbilling.NewPatch(s.now()).
		SetStatus(domainbilling.StatusExpired).
		ClearSubscription().
		SetCancelAtPeriodEnd(false)

	return s.merge(ctx, athleteID, patch, string(event.Type))
}

// handleInvoicePaymentSucceeded handles invoice.payment_succeeded
func (s *WebhookService) handleInvoicePaymentSucceeded(ctx context.Context, event stripe.Event) error {
	athleteID, ok, err := s.resolveAthleteForInvoice(ctx, event)
	if err != nil || !ok {
		return err
	}

	patch := domainbilling.NewPatch(s.now()).
		SetStatus(domainbilling.StatusActive).
		SetLastPaymentAt(s.now())

	return s.merge(ctx, athleteID, patch, string(event.Type))
}

// handleInvoicePaymentFailed handles invoice.payment_failed
func (s *WebhookService) handleInvoicePaymentFailed(ctx context.Context, event stripe.Event) error {
	athleteID, ok, err := s.resolveAthleteForInvoice(ctx, event)
	if err != nil || !ok {
		return err
	}

	patch := domainbilling.NewPatch(s.now()).
		SetStatus(domainbilling.StatusPastDue)

	return s.merge(ctx, athleteID, patch, string(event.Type))
}

// resolveAthleteForSubscription finds the internal account a subscription
// event refers to: metadata first, then the stored subscription link, then
// the stored customer link.
func (s *WebhookService) resolveAthleteForSubscription(ctx context.Context, sub *stripe.Subscription) (uuid.UUID, bool, error) {
	if id, ok := athleteIDFromMetadata(sub.Metadata); ok {
		return id, true, nil
	}

	athlete, err := s.athletes.FindByStripeSubscriptionID(ctx, sub.ID)
	if err == nil {
		return athlete.ID, true, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return uuid.Nil, false, fmt.Errorf("failed to find athlete by subscription: %w", err)
	}

	customerID := customerIDOf(sub.Customer)
	if customerID == "" {
		return uuid.Nil, false, nil
	}

	athlete, err = s.athletes.FindByStripeCustomerID(ctx, customerID)
	if err == nil {
		return athlete.ID, true, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return uuid.Nil, false, fmt.Errorf("failed to find athlete by customer: %w", err)
	}

	return uuid.Nil, false, nil
}

// resolveAthleteForInvoice recovers the account behind an invoice event.
// Invoices do not carry our metadata, so the subscription is fetched from
// Stripe to read it back. A fetch failure is returned as an error so the
// delivery fails with 500 and the provider retries once Stripe is reachable.
func (s *WebhookService) resolveAthleteForInvoice(ctx context.Context, event stripe.Event) (uuid.UUID, bool, error) {
	var inv stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to unmarshal invoice: %w", err)
	}

	subscriptionID := subscriptionIDOf(&inv)
	if subscriptionID == "" {
		s.logger.Debug("Invoice is not for a subscription, skipping",
			zap.String("invoice_id", inv.ID))
		return uuid.Nil, false, nil
	}

	s.logger.Info("Handling invoice event",
		zap.String("event_type", string(event.Type)),
		zap.String("invoice_id", inv.ID),
		zap.String("subscription_id", subscriptionID))

	sub, err := s.subs.FetchSubscription(ctx, subscriptionID)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to fetch subscription %s: %w", subscriptionID, err)
	}

	if id, ok := athleteIDFromMetadata(sub.Metadata); ok {
		return id, true, nil
	}

	// The fetched subscription had no usable metadata; fall back to the
	// stored links.
	return s.resolveAthleteForSubscription(ctx, sub)
}

// merge applies the patch as a single partial write and publishes the status
// change for downstream listeners
func (s *WebhookService) merge(ctx context.Context, athleteID uuid.UUID, patch *domainbilling.Patch, sourceEvent string) error {
	if err := s.athletes.MergeBilling(ctx, athleteID, patch); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			// The referenced account no longer exists. Acknowledge so the
			// provider stops redelivering.
			s.logger.Warn("Athlete not found for billing merge, skipping",
				zap.String("athlete_id", athleteID.String()),
				zap.String("source_event", sourceEvent))
			return nil
		}
		return fmt.Errorf("failed to merge billing update: %w", err)
	}

	if s.metrics != nil {
		status := ""
		if patch.Status != nil {
			status = string(*patch.Status)
		}
		s.metrics.RecordMergeWrite(ctx, sourceEvent, status)
	}

	if s.eventBus != nil && patch.Status != nil {
		event := identity.NewBillingStatusChangedEvent(athleteID, *patch.Status, sourceEvent)
		if err := s.eventBus.Publish(ctx, event); err != nil {
			s.logger.Error("Failed to publish billing status event",
				zap.String("athlete_id", athleteID.String()),
				zap.Error(err))
		}
	}

	s.logger.Info("Billing merge applied",
		zap.String("athlete_id", athleteID.String()),
		zap.String("source_event", sourceEvent))

	return nil
}
