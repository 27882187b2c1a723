package stripewebhooks

import (
	"errors"
	"fmt"
	"time"

	"scriptpilot/internal/domain/plans"
	"scriptpilot/internal/domain/subscriptions"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The apply functions below take the store handle and already-fetched Stripe
// state explicitly, keeping the reconciliation logic independent of the HTTP
// layer and the Stripe client. Redelivering any event converges on the same
// row because the fetched state, not the delivery order, is ground truth.

func applyCheckoutCompleted(db *gorm.DB, ownerID, priceID string, sub *stripe.Subscription) error {
	plan, ok := plans.ByPriceID(priceID)
	if !ok {
		// An unconfigured price is not ours to mirror; no partial write.
		log.Warn().Str("price_id", priceID).Str("owner_id", ownerID).Msg("Unknown price id on checkout completion, ignoring")
		return nil
	}

	row := subscriptions.Subscription{
		OwnerID:              ownerID,
		PlanName:             plan.Name,
		Status:               string(sub.Status),
		StripeSubscriptionID: sub.ID,
		StripePriceID:        priceID,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"plan_name", "status", "stripe_subscription_id", "stripe_price_id", "updated_at"}),
	}).Create(&row).Error
}

func applyPaymentSucceeded(db *gorm.DB, sub *stripe.Subscription) error {
	if sub.CurrentPeriodEnd == 0 {
		return fmt.Errorf("subscription %s missing current_period_end", sub.ID)
	}

	existing, found, err := findTracked(db, sub.Metadata["owner_id"], sub.ID)
	if err != nil {
		return err
	}
	if !found {
		// A payment for a subscription we don't yet track is not actionable.
		log.Info().Str("subscription", sub.ID).Msg("Payment for untracked subscription, skipping")
		return nil
	}

	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0)
	return db.Model(&subscriptions.Subscription{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"status":             string(sub.Status),
			"current_period_end": periodEnd,
			"updated_at":         time.Now(),
		}).Error
}

func applySubscriptionUpdated(db *gorm.DB, sub *stripe.Subscription) error {
	if sub.CurrentPeriodEnd == 0 {
		return fmt.Errorf("subscription %s missing current_period_end", sub.ID)
	}

	existing, found, err := findTracked(db, sub.Metadata["owner_id"], sub.ID)
	if err != nil {
		return err
	}
	if !found {
		log.Info().Str("subscription", sub.ID).Msg("Update for untracked subscription, skipping")
		return nil
	}

	updates := map[string]interface{}{
		"status":             string(sub.Status),
		"current_period_end": time.Unix(sub.CurrentPeriodEnd, 0),
		"updated_at":         time.Now(),
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		newPriceID := sub.Items.Data[0].Price.ID
		updates["stripe_price_id"] = newPriceID
		if plan, ok := plans.ByPriceID(newPriceID); ok {
			updates["plan_name"] = plan.Name
		}
	}

	return db.Model(&subscriptions.Subscription{}).
		Where("id = ?", existing.ID).
		Updates(updates).Error
}

func applySubscriptionDeleted(db *gorm.DB, sub *stripe.Subscription) error {
	existing, found, err := findTracked(db, sub.Metadata["owner_id"], sub.ID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	// Plan and period end stay at their last-known values.
	return db.Model(&subscriptions.Subscription{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"status":     subscriptions.StatusCanceled,
			"updated_at": time.Now(),
		}).Error
}

func applyPaymentFailed(db *gorm.DB, stripeSubscriptionID string) error {
	var existing subscriptions.Subscription
	err := db.Where("stripe_subscription_id = ?", stripeSubscriptionID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Info().Str("subscription", stripeSubscriptionID).Msg("Payment failure for untracked subscription, skipping")
		return nil
	}
	if err != nil {
		return err
	}

	return db.Model(&subscriptions.Subscription{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"status":     subscriptions.StatusPastDue,
			"updated_at": time.Now(),
		}).Error
}

// findTracked looks up the local mirror by owner + external subscription id,
// the lookup discipline every owner-aware event shares.
func findTracked(db *gorm.DB, ownerID, stripeSubscriptionID string) (*subscriptions.Subscription, bool, error) {
	if ownerID == "" || stripeSubscriptionID == "" {
		return nil, false, nil
	}
	var existing subscriptions.Subscription
	err := db.Where("owner_id = ? AND stripe_subscription_id = ?", ownerID, stripeSubscriptionID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &existing, true, nil
}
