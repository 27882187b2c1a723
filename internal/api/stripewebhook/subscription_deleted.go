package stripewebhooks

import (
	"scriptpilot/database"

	"github.com/stripe/stripe-go/v75"
)

// handleSubscriptionDeleted marks a tracked subscription canceled, leaving
// plan and period end at their last-known values. An untracked subscription
// is acknowledged without effect.
func handleSubscriptionDeleted(sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}
	return applySubscriptionDeleted(database.DB, sub)
}
