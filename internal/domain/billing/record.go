package billing

import "time"

// Record is the subscription snapshot mirrored from the payment provider.
// It is embedded in the Athlete aggregate and persisted as nullable columns
// on the athletes table. All fields except Status are optional: events from
// the provider only ever carry a subset, and the merge semantics of Patch
// guarantee that absent fields keep their stored value.
type Record struct {
	Status               Status
	Plan                 PlanType
	StripeCustomerID     string
	StripeSubscriptionID string
	StripePriceID        string
	CancelAtPeriodEnd    bool
	CurrentPeriodStart   *time.Time
	CurrentPeriodEnd     *time.Time
	TrialStart           *time.Time
	TrialEnd             *time.Time
	LastPaymentAt        *time.Time
	UpdatedAt            *time.Time
}

// NewRecord returns the zero-value billing record of a fresh athlete
func NewRecord() Record {
	return Record{Status: StatusNone}
}

// IsPremium reports whether the record currently grants premium access
func (r Record) IsPremium() bool {
	return r.Status.IsPremium()
}

// HasSubscription reports whether a provider subscription is linked
func (r Record) HasSubscription() bool {
	return r.StripeSubscriptionID != ""
}

// Apply merges a patch into the record in memory. The persistence layer
// performs the equivalent column-level UPDATE; this method exists so that
// services and tests can reason about the post-merge state without a
// round trip.
func (r Record) Apply(p *Patch) Record {
	if p == nil {
		return r
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Plan != nil {
		r.Plan = *p.Plan
	}
	if p.CustomerID != nil {
		r.StripeCustomerID = *p.CustomerID
	}
	if p.SubscriptionID != nil {
		r.StripeSubscriptionID = *p.SubscriptionID
	}
	if p.ClearSubscriptionID {
		r.StripeSubscriptionID = ""
	}
	if p.PriceID != nil {
		r.StripePriceID = *p.PriceID
	}
	if p.CancelAtPeriodEnd != nil {
		r.CancelAtPeriodEnd = *p.CancelAtPeriodEnd
	}
	if p.CurrentPeriodStart != nil {
		r.CurrentPeriodStart = p.CurrentPeriodStart
	}
	if p.CurrentPeriodEnd != nil {
		r.CurrentPeriodEnd = p.CurrentPeriodEnd
	}
	if p.TrialStart != nil {
		r.TrialStart = p.TrialStart
	}
	if p.TrialEnd != nil {
		r.TrialEnd = p.TrialEnd
	}
	if p.LastPaymentAt != nil {
		r.LastPaymentAt = p.LastPaymentAt
	}
	if p.UpdatedAt != nil {
		r.UpdatedAt = p.UpdatedAt
	}
	return r
}
