package billing

import "time"

// Status represents the internal subscription status of an athlete
type Status string

const (
	// StatusNone means no subscription has ever been established
	StatusNone Status = "none"

	// StatusTrial means the athlete is inside a trial window
	StatusTrial Status = "trial"

	// StatusActive means the subscription is paid and current
	StatusActive Status = "active"

	// StatusPastDue means the latest payment attempt failed
	StatusPastDue Status = "past_due"

	// StatusCanceled means the athlete canceled but may retain access until period end
	StatusCanceled Status = "canceled"

	// StatusExpired means the subscription ended or never completed
	StatusExpired Status = "expired"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsValid returns true if the status is one of the known values
func (s Status) IsValid() bool {
	switch s {
	case StatusNone, StatusTrial, StatusActive, StatusPastDue, StatusCanceled, StatusExpired:
		return true
	}
	return false
}

// IsPremium reports whether this status grants access to premium content
func (s Status) IsPremium() bool {
	return s == StatusTrial || s == StatusActive
}

// PlanType identifies the billing interval of a subscription plan
type PlanType string

const (
	// PlanMonthly bills every month
	PlanMonthly PlanType = "monthly"

	// PlanYearly bills every year
	PlanYearly PlanType = "yearly"
)

// String returns the string representation of PlanType
func (p PlanType) String() string {
	return string(p)
}

// IsValid returns true if the plan type is one of the known values
func (p PlanType) IsValid() bool {
	return p == PlanMonthly || p == PlanYearly
}

// ParsePlanType maps a provider metadata value onto a PlanType.
// Unknown or empty values default to monthly.
func ParsePlanType(raw string) PlanType {
	if PlanType(raw).IsValid() {
		return PlanType(raw)
	}
	return PlanMonthly
}

// ResolveStatus maps a provider subscription status onto the internal enum.
//
// The trial window takes precedence over the provider status: a subscription
// whose trial end lies in the future is reported as trial regardless of what
// the provider calls it. This keeps an athlete who subscribes with a trial
// period in trial even when the provider already reports the subscription as
// active. The clock is passed in so the precedence rule is testable.
func ResolveStatus(providerStatus string, trialEnd *time.Time, now time.Time) Status {
	if trialEnd != nil && now.Before(*trialEnd) {
		return StatusTrial
	}

	switch providerStatus {
	case "active":
		return StatusActive
	case "trialing":
		return StatusTrial
	case "canceled":
		return StatusCanceled
	case "past_due", "unpaid":
		return StatusPastDue
	case "incomplete", "incomplete_expired":
		return StatusExpired
	default:
		return StatusNone
	}
}
