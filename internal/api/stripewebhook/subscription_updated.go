package stripewebhooks

import (
	"fmt"

	"scriptpilot/database"

	"github.com/stripe/stripe-go/v75"
)

// handleSubscriptionUpdated re-derives plan and price from the subscription's
// current price item alongside status and period end. The event object for
// this type IS the current subscription state, so no re-fetch is needed.
func handleSubscriptionUpdated(sub *stripe.Subscription) error {
	if sub.ID == "" {
		return fmt.Errorf("subscription.updated event missing subscription id")
	}
	return applySubscriptionUpdated(database.DB, sub)
}
