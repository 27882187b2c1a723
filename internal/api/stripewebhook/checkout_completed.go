package stripewebhooks

import (
	"fmt"

	"scriptpilot/database"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/subscription"
)

// handleCheckoutSessionCompleted mirrors a freshly completed subscription
// checkout. The owner id and price id ride the session metadata set at
// checkout creation; the subscription status is re-fetched from Stripe
// rather than trusted from the event, which may be stale under redelivery.
func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	if session.Mode != stripe.CheckoutSessionModeSubscription {
		log.Info().Str("session", session.ID).Str("mode", string(session.Mode)).Msg("Ignoring non-subscription checkout session")
		return nil
	}

	ownerID := session.Metadata["owner_id"]
	priceID := session.Metadata["price_id"]
	subscriptionID := ""
	if session.Subscription != nil {
		subscriptionID = session.Subscription.ID
	}
	if ownerID == "" || priceID == "" || subscriptionID == "" {
		return fmt.Errorf("checkout session %s missing owner_id/price_id/subscription", session.ID)
	}

	subData, err := subscription.Get(subscriptionID, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch subscription %s: %w", subscriptionID, err)
	}

	return applyCheckoutCompleted(database.DB, ownerID, priceID, subData)
}
