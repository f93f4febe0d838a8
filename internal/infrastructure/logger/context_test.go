package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContext_RoundTrip(t *testing.T) {
	logger := zap.NewNop()
	ctx := WithContext(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContext_Missing(t *testing.T) {
	logger := FromContext(context.Background())

	require.NotNil(t, logger)
	// no-op logger, safe to use
	logger.Info("ignored")
}

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	ctx, enriched := WithRequestID(context.Background(), logger, "req-123")

	assert.Equal(t, "req-123", GetRequestID(ctx))
	enriched.Info("test")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-123", logs.All()[0].ContextMap()["request_id"])
}

func TestWithAthleteID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	ctx, enriched := WithAthleteID(context.Background(), logger, "ath-42")

	assert.Equal(t, "ath-42", GetAthleteID(ctx))
	enriched.Info("test")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "ath-42", logs.All()[0].ContextMap()["athlete_id"])
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
	assert.Empty(t, GetAthleteID(context.Background()))
}

func TestGetTraceID_NoSpan(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
	assert.Empty(t, GetSpanID(context.Background()))
}

func TestWithTraceContext_NoSpan(t *testing.T) {
	logger := zap.NewNop()
	assert.Same(t, logger, WithTraceContext(context.Background(), logger))
}

func TestL_EnrichesFromContext(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	ctx := WithContext(context.Background(), logger)
	ctx = context.WithValue(ctx, RequestIDKey, "req-9")
	ctx = context.WithValue(ctx, AthleteIDKey, "ath-9")

	L(ctx).Info("event processed", zap.String("event_type", "invoice.payment_succeeded"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "event processed", entry.Message)
	assert.Equal(t, "req-9", entry.ContextMap()["request_id"])
	assert.Equal(t, "ath-9", entry.ContextMap()["athlete_id"])
	assert.Equal(t, "invoice.payment_succeeded", entry.ContextMap()["event_type"])
}

func TestL_MissingLogger(t *testing.T) {
	// no logger in context, must not panic
	L(context.Background()).Info("ignored")
}

func TestContextLogger_With(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := WithContext(context.Background(), zap.New(core))

	L(ctx).With(zap.String("component", "billing")).Warn("retrying")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "billing", logs.All()[0].ContextMap()["component"])
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	WithLogger(context.Background(), zap.New(core)).Error("boom")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zap.ErrorLevel, logs.All()[0].Level)
}
