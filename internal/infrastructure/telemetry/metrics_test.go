package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"

	"github.com/summitmind/backend/internal/infrastructure/telemetry"
)

func TestNewMeterProvider_Disabled(t *testing.T) {
	ctx := context.Background()

	mp, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:     false,
		ServiceName: "summitmind-test",
	}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, mp)

	assert.False(t, mp.IsEnabled())
	require.NotNil(t, mp.Meter("test"))

	assert.NoError(t, mp.Shutdown(ctx))
	assert.NoError(t, mp.ForceFlush(ctx))
}

func TestCounter(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")

	counter, err := telemetry.NewCounter(meter, "test_counter", "A test counter", "{item}")
	require.NoError(t, err)

	ctx := context.Background()

	// Recording should not panic.
	counter.Inc(ctx)
	counter.Add(ctx, 5, telemetry.AttrEventType.String("checkout.session.completed"))
}

func TestHistogram(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")

	histogram, err := telemetry.NewHistogram(meter, telemetry.HistogramOpts{
		Name:        "test_duration_seconds",
		Description: "A test histogram",
		Unit:        "s",
		Boundaries:  telemetry.WebhookDurationBuckets,
	})
	require.NoError(t, err)

	ctx := context.Background()

	histogram.Record(ctx, 0.25)
	histogram.RecordDuration(ctx, 150*time.Millisecond, telemetry.AttrEventType.String("invoice.payment_succeeded"))
}

func TestGauge(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")

	gauge, err := telemetry.NewGauge(meter, "test_gauge", "A test gauge", "{connection}")
	require.NoError(t, err)

	gauge.Record(context.Background(), 42)
}
