package billing

import (
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v81"

	domainbilling "github.com/summitmind/backend/internal/domain/billing"
)

// StripeConfig holds configuration for Stripe integration
type StripeConfig struct {
	// SecretKey is the Stripe secret API key (sk_test_xxx or sk_live_xxx)
	SecretKey string `json:"secret_key" mapstructure:"secret_key"`

	// PublishableKey is the Stripe publishable key for the frontend
	PublishableKey string `json:"publishable_key" mapstructure:"publishable_key"`

	// WebhookSecret is the secret for verifying webhook signatures
	WebhookSecret string `json:"webhook_secret" mapstructure:"webhook_secret"`

	// IsTestMode indicates if using Stripe test mode
	IsTestMode bool `json:"is_test_mode" mapstructure:"is_test_mode"`

	// PriceIDs maps plan types (monthly, yearly) to Stripe Price IDs
	PriceIDs map[string]string `json:"price_ids" mapstructure:"price_ids"`

	// TrialDays is the trial period granted on new checkouts (0 = no trial)
	TrialDays int `json:"trial_days" mapstructure:"trial_days"`

	// SuccessURL is the URL to redirect after successful checkout
	SuccessURL string `json:"success_url" mapstructure:"success_url"`

	// CancelURL is the URL to redirect after cancelled checkout
	CancelURL string `json:"cancel_url" mapstructure:"cancel_url"`

	// BillingPortalReturnURL is the return URL from the Stripe billing portal
	BillingPortalReturnURL string `json:"billing_portal_return_url" mapstructure:"billing_portal_return_url"`

	// APITimeout bounds outbound Stripe API calls made while handling a
	// webhook, so a slow provider call fails the delivery instead of
	// holding the connection open
	APITimeout time.Duration `json:"api_timeout" mapstructure:"api_timeout"`
}

// DefaultStripeConfig returns a default configuration for development/testing
func DefaultStripeConfig() *StripeConfig {
	return &StripeConfig{
		IsTestMode: true,
		PriceIDs: map[string]string{
			"monthly": "price_monthly", // Replace with actual Stripe Price ID
			"yearly":  "price_yearly",  // Replace with actual Stripe Price ID
		},
		TrialDays:  7,
		APITimeout: 10 * time.Second,
	}
}

// Validate validates the Stripe configuration
func (c *StripeConfig) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("stripe: secret key is required")
	}

	// Validate key format
	if c.IsTestMode {
		if len(c.SecretKey) > 7 && c.SecretKey[:7] != "sk_test" {
			return fmt.Errorf("stripe: test mode enabled but secret key is not a test key")
		}
	} else {
		if len(c.SecretKey) > 7 && c.SecretKey[:7] != "sk_live" {
			return fmt.Errorf("stripe: live mode enabled but secret key is not a live key")
		}
	}

	if c.WebhookSecret == "" {
		return fmt.Errorf("stripe: webhook secret is required")
	}

	return nil
}

// GetPriceID returns the Stripe Price ID for a given plan type
func (c *StripeConfig) GetPriceID(plan domainbilling.PlanType) (string, error) {
	priceID, exists := c.PriceIDs[plan.String()]
	if !exists || priceID == "" {
		return "", fmt.Errorf("stripe: no price ID configured for plan: %s", plan)
	}
	return priceID, nil
}

// InitStripeClient initializes the Stripe client with the configured API key
func (c *StripeConfig) InitStripeClient() {
	stripe.Key = c.SecretKey
}
