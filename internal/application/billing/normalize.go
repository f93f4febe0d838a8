package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v81"
)

// Stripe payloads reference related objects either as a bare ID string or as
// an expanded object, depending on the event and expansion settings. The
// stripe-go types decode both forms into a struct whose ID field is always
// populated, so these helpers are the single place where references are
// normalized to plain IDs.

// customerIDOf extracts the customer ID from a possibly-nil reference
func customerIDOf(c *stripe.Customer) string {
	if c == nil {
		return ""
	}
	return c.ID
}

// subscriptionIDOf extracts the subscription ID an invoice belongs to.
// Returns "" for one-off invoices that are not tied to a subscription.
func subscriptionIDOf(inv *stripe.Invoice) string {
	if inv == nil || inv.Subscription == nil {
		return ""
	}
	return inv.Subscription.ID
}

// priceIDOf extracts the price ID of the first subscription item
func priceIDOf(sub *stripe.Subscription) string {
	if sub == nil || sub.Items == nil || len(sub.Items.Data) == 0 {
		return ""
	}
	item := sub.Items.Data[0]
	if item == nil || item.Price == nil {
		return ""
	}
	return item.Price.ID
}

// athleteIDFromMetadata parses the internal account ID we stamp into
// checkout and subscription metadata at checkout time
func athleteIDFromMetadata(metadata map[string]string) (uuid.UUID, bool) {
	raw, ok := metadata["user_id"]
	if !ok || raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// unixTime converts a Stripe epoch-seconds field, treating 0 as absent
func unixTime(sec int64) *time.Time {
	if sec <= 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}
