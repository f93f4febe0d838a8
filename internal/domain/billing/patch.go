package billing

import "time"

// Patch is a partial, merge-only update to a billing Record. A nil pointer
// means "leave the stored value alone"; only fields derived from the current
// provider event are set. Repositories translate a Patch into a column-level
// UPDATE so that two events touching disjoint fields never clobber each other.
type Patch struct {
	Status              *Status
	Plan                *PlanType
	CustomerID          *string
	SubscriptionID      *string
	ClearSubscriptionID bool
	PriceID             *string
	CancelAtPeriodEnd   *bool
	CurrentPeriodStart  *time.Time
	CurrentPeriodEnd    *time.Time
	TrialStart          *time.Time
	TrialEnd            *time.Time
	LastPaymentAt       *time.Time
	UpdatedAt           *time.Time
}

// NewPatch creates an empty patch stamped with the given update time
func NewPatch(now time.Time) *Patch {
	return &Patch{UpdatedAt: &now}
}

// SetStatus records the new internal status
func (p *Patch) SetStatus(s Status) *Patch {
	p.Status = &s
	return p
}

// SetPlan records the plan type
func (p *Patch) SetPlan(plan PlanType) *Patch {
	p.Plan = &plan
	return p
}

// SetCustomerID records the provider customer identifier
func (p *Patch) SetCustomerID(id string) *Patch {
	if id != "" {
		p.CustomerID = &id
	}
	return p
}

// SetSubscriptionID records the provider subscription identifier
func (p *Patch) SetSubscriptionID(id string) *Patch {
	if id != "" {
		p.SubscriptionID = &id
	}
	return p
}

// ClearSubscription marks the subscription identifier for removal (SQL NULL)
func (p *Patch) ClearSubscription() *Patch {
	p.SubscriptionID = nil
	p.ClearSubscriptionID = true
	return p
}

// SetPriceID records the provider price identifier
func (p *Patch) SetPriceID(id string) *Patch {
	if id != "" {
		p.PriceID = &id
	}
	return p
}

// SetCancelAtPeriodEnd records whether the subscription ends at period close
func (p *Patch) SetCancelAtPeriodEnd(v bool) *Patch {
	p.CancelAtPeriodEnd = &v
	return p
}

// SetPeriod records the current billing period bounds
func (p *Patch) SetPeriod(start, end time.Time) *Patch {
	p.CurrentPeriodStart = &start
	p.CurrentPeriodEnd = &end
	return p
}

// SetTrialStart records the trial window opening. Set independently of
// SetTrialEnd; provider events may carry either bound without the other.
func (p *Patch) SetTrialStart(t time.Time) *Patch {
	p.TrialStart = &t
	return p
}

// SetTrialEnd records the trial window close. A trial status must always
// travel with its end date, so callers deriving a trial from trial_end set
// this whether or not trial_start came along.
func (p *Patch) SetTrialEnd(t time.Time) *Patch {
	p.TrialEnd = &t
	return p
}

// SetLastPaymentAt records the time of the most recent successful payment
func (p *Patch) SetLastPaymentAt(t time.Time) *Patch {
	p.LastPaymentAt = &t
	return p
}

// IsEmpty reports whether the patch carries no field changes beyond the
// update timestamp
func (p *Patch) IsEmpty() bool {
	return p.Status == nil &&
		p.Plan == nil &&
		p.CustomerID == nil &&
		p.SubscriptionID == nil &&
		!p.ClearSubscriptionID &&
		p.PriceID == nil &&
		p.CancelAtPeriodEnd == nil &&
		p.CurrentPeriodStart == nil &&
		p.CurrentPeriodEnd == nil &&
		p.TrialStart == nil &&
		p.TrialEnd == nil &&
		p.LastPaymentAt == nil
}
