package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/summitmind/backend/internal/domain/billing"
	"github.com/summitmind/backend/internal/domain/identity"
	"github.com/summitmind/backend/internal/domain/shared"
)

// recordingHandler collects the events it receives
type recordingHandler struct {
	eventTypes []string
	received   []shared.DomainEvent
	err        error
	panics     bool
}

func (h *recordingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("handler exploded")
	}
	h.received = append(h.received, event)
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.eventTypes
}

func TestInMemoryEventBus_PublishToSubscriber(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{eventTypes: []string{identity.EventTypeBillingStatusChanged}}
	bus.Subscribe(handler)

	event := identity.NewBillingStatusChangedEvent(uuid.New(), billing.StatusActive, "invoice.payment_succeeded")
	require.NoError(t, bus.Publish(context.Background(), event))

	require.Len(t, handler.received, 1)
	assert.Equal(t, identity.EventTypeBillingStatusChanged, handler.received[0].EventType())
}

func TestInMemoryEventBus_TypeFiltering(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	billingHandler := &recordingHandler{eventTypes: []string{identity.EventTypeBillingStatusChanged}}
	wildcardHandler := &recordingHandler{}
	bus.Subscribe(billingHandler)
	bus.Subscribe(wildcardHandler)

	athlete, err := identity.NewAthlete("casey@example.com", "str0ngpass", "Casey")
	require.NoError(t, err)
	registered := identity.NewAthleteRegisteredEvent(athlete)

	require.NoError(t, bus.Publish(context.Background(), registered))

	assert.Empty(t, billingHandler.received)
	assert.Len(t, wildcardHandler.received, 1)
}

func TestInMemoryEventBus_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	failing := &recordingHandler{
		eventTypes: []string{identity.EventTypeBillingStatusChanged},
		err:        errors.New("boom"),
	}
	healthy := &recordingHandler{eventTypes: []string{identity.EventTypeBillingStatusChanged}}
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	event := identity.NewBillingStatusChangedEvent(uuid.New(), billing.StatusPastDue, "invoice.payment_failed")
	require.NoError(t, bus.Publish(context.Background(), event))

	assert.Len(t, healthy.received, 1)
}

func TestInMemoryEventBus_HandlerPanicIsRecovered(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	panicking := &recordingHandler{
		eventTypes: []string{identity.EventTypeBillingStatusChanged},
		panics:     true,
	}
	bus.Subscribe(panicking)

	event := identity.NewBillingStatusChangedEvent(uuid.New(), billing.StatusExpired, "customer.subscription.deleted")
	assert.NotPanics(t, func() {
		_ = bus.Publish(context.Background(), event)
	})
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{eventTypes: []string{identity.EventTypeBillingStatusChanged}}
	bus.Subscribe(handler)
	bus.Unsubscribe(handler)

	event := identity.NewBillingStatusChangedEvent(uuid.New(), billing.StatusTrial, "customer.subscription.created")
	require.NoError(t, bus.Publish(context.Background(), event))

	assert.Empty(t, handler.received)
}

func TestInMemoryEventBus_StartStop(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	ctx := context.Background()

	require.NoError(t, bus.Start(ctx))
	require.NoError(t, bus.Stop(ctx))
}
