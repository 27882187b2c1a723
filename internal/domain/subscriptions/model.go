package subscriptions

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Terminal-ish statuses written by the reconciler itself; every other value
// is mirrored verbatim from the payment provider.
const (
	StatusCanceled = "canceled"
	StatusPastDue  = "past_due"
)

// Subscription is the authoritative local mirror of the payment provider's
// subscription object, one row per owner.
type Subscription struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID string `gorm:"not null;uniqueIndex:idx_subscriptions_owner_id" json:"owner_id"`

	PlanName string `json:"plan_name"`
	Status   string `json:"status"`

	// Indexed for event lookups; uniqueness is carried by owner_id so the
	// redelivery upsert never trips a second constraint.
	StripeSubscriptionID string `gorm:"not null;index:idx_subscriptions_stripe_subscription_id" json:"stripe_subscription_id"`
	StripePriceID        string `json:"stripe_price_id"`

	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
