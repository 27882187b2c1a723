package stripewebhooks

import (
	"fmt"

	"scriptpilot/database"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/subscription"
)

// handleInvoicePaymentSucceeded extends the current period of a tracked
// subscription. The subscription is re-fetched so a late-delivered invoice
// cannot roll the mirror back to an older status.
func handleInvoicePaymentSucceeded(invoice *stripe.Invoice) error {
	if invoice.Subscription == nil || invoice.Subscription.ID == "" {
		log.Info().Str("invoice", invoice.ID).Msg("Invoice without subscription, skipping")
		return nil
	}

	subData, err := subscription.Get(invoice.Subscription.ID, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch subscription %s: %w", invoice.Subscription.ID, err)
	}

	return applyPaymentSucceeded(database.DB, subData)
}

// handleInvoicePaymentFailed marks a tracked subscription past_due. The
// invoice carries no owner reference, so the lookup is by external id alone.
func handleInvoicePaymentFailed(invoice *stripe.Invoice) error {
	if invoice.Subscription == nil || invoice.Subscription.ID == "" {
		log.Info().Str("invoice", invoice.ID).Msg("Invoice without subscription, skipping")
		return nil
	}
	return applyPaymentFailed(database.DB, invoice.Subscription.ID)
}
