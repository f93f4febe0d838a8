package identity

import (
	"time"

	"github.com/summitmind/backend/internal/domain/billing"
	"github.com/summitmind/backend/internal/domain/identity"
)

// RegisterInput contains the input for account registration
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	Sport       string
}

// LoginInput contains the input for athlete login
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult contains tokens and the account returned after register,
// login, or refresh
type AuthResult struct {
	AccessToken           string      `json:"access_token"`
	RefreshToken          string      `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time   `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time   `json:"refresh_token_expires_at"`
	TokenType             string      `json:"token_type"`
	Athlete               AthleteInfo `json:"athlete"`
}

// AthleteInfo contains basic account information
type AthleteInfo struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Sport       string     `json:"sport,omitempty"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput contains the input for athlete logout
type LogoutInput struct {
	TokenJTI     string
	RemainingTTL time.Duration
}

// UpdateProfileInput contains partial profile edits
type UpdateProfileInput struct {
	DisplayName *string
	Sport       *string
}

// ChangePasswordInput contains the input for a password change
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// ProfileResult is the dashboard account view including the billing snapshot
type ProfileResult struct {
	Athlete AthleteInfo `json:"athlete"`
	Billing BillingInfo `json:"billing"`
}

// BillingInfo is the read model of the billing snapshot. The dashboard
// reads this on page load; it is never written through this API.
type BillingInfo struct {
	Status            string     `json:"status"`
	Plan              string     `json:"plan,omitempty"`
	Premium           bool       `json:"premium"`
	CancelAtPeriodEnd bool       `json:"cancel_at_period_end"`
	CurrentPeriodEnd  *time.Time `json:"current_period_end,omitempty"`
	TrialEnd          *time.Time `json:"trial_end,omitempty"`
	LastPaymentAt     *time.Time `json:"last_payment_at,omitempty"`
	HasSubscription   bool       `json:"has_subscription"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

func athleteInfo(a *identity.Athlete) AthleteInfo {
	return AthleteInfo{
		ID:          a.ID.String(),
		Email:       a.Email,
		DisplayName: a.DisplayName,
		Sport:       a.Sport,
		Role:        string(a.Role),
		LastLoginAt: a.LastLoginAt,
	}
}

func billingInfo(r billing.Record) BillingInfo {
	return BillingInfo{
		Status:            string(r.Status),
		Plan:              string(r.Plan),
		Premium:           r.IsPremium(),
		CancelAtPeriodEnd: r.CancelAtPeriodEnd,
		CurrentPeriodEnd:  r.CurrentPeriodEnd,
		TrialEnd:          r.TrialEnd,
		LastPaymentAt:     r.LastPaymentAt,
		HasSubscription:   r.HasSubscription(),
		UpdatedAt:         r.UpdatedAt,
	}
}
