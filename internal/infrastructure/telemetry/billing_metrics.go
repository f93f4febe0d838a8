package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// BillingMetrics records billing-related measurements: webhook deliveries,
// the merge writes they produce, and checkout sessions started from the app.
type BillingMetrics struct {
	webhookEvents   *Counter
	webhookDuration *Histogram
	mergeWrites     *Counter
	checkoutStarted *Counter
	logger          *zap.Logger
}

// BillingMetricsConfig contains configuration for BillingMetrics.
type BillingMetricsConfig struct {
	Meter  metric.Meter
	Logger *zap.Logger
}

// NewBillingMetrics creates billing metrics instruments on the given meter.
func NewBillingMetrics(cfg BillingMetricsConfig) (*BillingMetrics, error) {
	if cfg.Meter == nil {
		return nil, fmt.Errorf("NewBillingMetrics: %w", ErrMeterNil)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	webhookEvents, err := NewCounter(cfg.Meter,
		"summitmind_billing_webhook_events_total",
		"Total Stripe webhook deliveries by event type and outcome",
		"{event}",
	)
	if err != nil {
		return nil, err
	}

	webhookDuration, err := NewHistogram(cfg.Meter, HistogramOpts{
		Name:        "summitmind_billing_webhook_duration_seconds",
		Description: "Webhook processing duration by event type",
		Unit:        "s",
		Boundaries:  WebhookDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	mergeWrites, err := NewCounter(cfg.Meter,
		"summitmind_billing_merge_writes_total",
		"Partial billing updates applied to the athletes table",
		"{write}",
	)
	if err != nil {
		return nil, err
	}

	checkoutStarted, err := NewCounter(cfg.Meter,
		"summitmind_billing_checkout_sessions_total",
		"Checkout sessions created for athletes",
		"{session}",
	)
	if err != nil {
		return nil, err
	}

	return &BillingMetrics{
		webhookEvents:   webhookEvents,
		webhookDuration: webhookDuration,
		mergeWrites:     mergeWrites,
		checkoutStarted: checkoutStarted,
		logger:          logger,
	}, nil
}

// RecordWebhookEvent records one webhook delivery with its processing outcome.
// Outcome is one of "processed", "skipped", "failed", "invalid_signature".
func (m *BillingMetrics) RecordWebhookEvent(ctx context.Context, eventType, outcome string, duration time.Duration) {
	m.webhookEvents.Inc(ctx,
		AttrEventType.String(eventType),
		AttrEventOutcome.String(outcome),
	)
	m.webhookDuration.RecordDuration(ctx, duration,
		AttrEventType.String(eventType),
	)
}

// RecordMergeWrite records a billing merge write and the status it set.
func (m *BillingMetrics) RecordMergeWrite(ctx context.Context, eventType, status string) {
	m.mergeWrites.Inc(ctx,
		AttrEventType.String(eventType),
		AttrBillingStatus.String(status),
	)
}

// RecordCheckoutStarted records a checkout session created for a plan.
func (m *BillingMetrics) RecordCheckoutStarted(ctx context.Context, plan string) {
	m.checkoutStarted.Inc(ctx,
		AttrPlan.String(plan),
	)
}
