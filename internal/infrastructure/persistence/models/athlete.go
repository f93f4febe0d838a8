package models

import (
	"time"

	"github.com/summitmind/backend/internal/domain/billing"
	"github.com/summitmind/backend/internal/domain/identity"
)

// AthleteModel is the persistence model for the Athlete domain entity.
// The billing snapshot lives on the same row as the account: webhook
// deliveries update a subset of the billing_* columns and never touch
// the account fields.
type AthleteModel struct {
	AggregateModel
	Email        string        `gorm:"type:varchar(254);not null;uniqueIndex"`
	PasswordHash string        `gorm:"type:varchar(255);not null"`
	DisplayName  string        `gorm:"type:varchar(200);not null"`
	Sport        string        `gorm:"type:varchar(100)"`
	Role         identity.Role `gorm:"type:varchar(20);not null;default:'athlete'"`
	LastLoginAt  *time.Time

	BillingStatus             billing.Status   `gorm:"column:billing_status;type:varchar(20);not null;default:'none'"`
	BillingPlan               billing.PlanType `gorm:"column:billing_plan;type:varchar(20)"`
	StripeCustomerID          *string          `gorm:"column:stripe_customer_id;type:varchar(255);index"`
	StripeSubscriptionID      *string          `gorm:"column:stripe_subscription_id;type:varchar(255);index"`
	StripePriceID             *string          `gorm:"column:stripe_price_id;type:varchar(255)"`
	BillingCancelAtPeriodEnd  bool             `gorm:"column:billing_cancel_at_period_end;not null;default:false"`
	BillingCurrentPeriodStart *time.Time       `gorm:"column:billing_current_period_start"`
	BillingCurrentPeriodEnd   *time.Time       `gorm:"column:billing_current_period_end"`
	BillingTrialStart         *time.Time       `gorm:"column:billing_trial_start"`
	BillingTrialEnd           *time.Time       `gorm:"column:billing_trial_end"`
	BillingLastPaymentAt      *time.Time       `gorm:"column:billing_last_payment_at"`
	BillingUpdatedAt          *time.Time       `gorm:"column:billing_updated_at"`
}

// TableName returns the table name for GORM
func (AthleteModel) TableName() string {
	return "athletes"
}

// ToDomain converts the persistence model to a domain Athlete entity.
func (m *AthleteModel) ToDomain() *identity.Athlete {
	athlete := &identity.Athlete{
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		DisplayName:  m.DisplayName,
		Sport:        m.Sport,
		Role:         m.Role,
		LastLoginAt:  m.LastLoginAt,
		Billing: billing.Record{
			Status:               m.BillingStatus,
			Plan:                 m.BillingPlan,
			StripeCustomerID:     stringValue(m.StripeCustomerID),
			StripeSubscriptionID: stringValue(m.StripeSubscriptionID),
			StripePriceID:        stringValue(m.StripePriceID),
			CancelAtPeriodEnd:    m.BillingCancelAtPeriodEnd,
			CurrentPeriodStart:   m.BillingCurrentPeriodStart,
			CurrentPeriodEnd:     m.BillingCurrentPeriodEnd,
			TrialStart:           m.BillingTrialStart,
			TrialEnd:             m.BillingTrialEnd,
			LastPaymentAt:        m.BillingLastPaymentAt,
			UpdatedAt:            m.BillingUpdatedAt,
		},
	}
	m.PopulateAggregateRoot(&athlete.BaseAggregateRoot)
	return athlete
}

// FromDomain populates the persistence model from a domain Athlete entity.
func (m *AthleteModel) FromDomain(a *identity.Athlete) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.Email = a.Email
	m.PasswordHash = a.PasswordHash
	m.DisplayName = a.DisplayName
	m.Sport = a.Sport
	m.Role = a.Role
	m.LastLoginAt = a.LastLoginAt
	m.BillingStatus = a.Billing.Status
	m.BillingPlan = a.Billing.Plan
	m.StripeCustomerID = stringPtr(a.Billing.StripeCustomerID)
	m.StripeSubscriptionID = stringPtr(a.Billing.StripeSubscriptionID)
	m.StripePriceID = stringPtr(a.Billing.StripePriceID)
	m.BillingCancelAtPeriodEnd = a.Billing.CancelAtPeriodEnd
	m.BillingCurrentPeriodStart = a.Billing.CurrentPeriodStart
	m.BillingCurrentPeriodEnd = a.Billing.CurrentPeriodEnd
	m.BillingTrialStart = a.Billing.TrialStart
	m.BillingTrialEnd = a.Billing.TrialEnd
	m.BillingLastPaymentAt = a.Billing.LastPaymentAt
	m.BillingUpdatedAt = a.Billing.UpdatedAt
}

// AthleteModelFromDomain creates a new persistence model from a domain Athlete entity.
func AthleteModelFromDomain(a *identity.Athlete) *AthleteModel {
	m := &AthleteModel{}
	m.FromDomain(a)
	return m
}

// stringPtr maps the empty string to SQL NULL
func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
