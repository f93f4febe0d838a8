package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/summitmind/backend/internal/domain/billing"
	"github.com/summitmind/backend/internal/domain/shared"
)

// Aggregate type constant for Athlete
const AggregateTypeAthlete = "Athlete"

// Athlete domain event types
const (
	EventTypeAthleteRegistered    = "AthleteRegistered"
	EventTypeBillingStatusChanged = "BillingStatusChanged"
)

// AthleteRegisteredEvent is published when an athlete signs up
type AthleteRegisteredEvent struct {
	shared.BaseDomainEvent
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// NewAthleteRegisteredEvent creates a new AthleteRegisteredEvent
func NewAthleteRegisteredEvent(athlete *Athlete) *AthleteRegisteredEvent {
	return &AthleteRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAthleteRegistered, AggregateTypeAthlete, athlete.ID),
		Email:           athlete.Email,
		DisplayName:     athlete.DisplayName,
	}
}

// BillingStatusChangedEvent is published after a webhook merge updates the
// billing snapshot of an athlete
type BillingStatusChangedEvent struct {
	shared.BaseDomainEvent
	AthleteID   uuid.UUID      `json:"athlete_id"`
	Status      billing.Status `json:"status"`
	SourceEvent string         `json:"source_event"`
	ChangedAt   time.Time      `json:"changed_at"`
}

// NewBillingStatusChangedEvent creates a new BillingStatusChangedEvent
func NewBillingStatusChangedEvent(athleteID uuid.UUID, status billing.Status, sourceEvent string) *BillingStatusChangedEvent {
	return &BillingStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBillingStatusChanged, AggregateTypeAthlete, athleteID),
		AthleteID:       athleteID,
		Status:          status,
		SourceEvent:     sourceEvent,
		ChangedAt:       time.Now(),
	}
}
