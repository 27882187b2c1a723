package profiles

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfile mirrors the identity provider's user record. Created, updated
// and deleted only by identity-provider webhook events; OwnerID is the
// provider-issued user id and the root of every owner scope.
type UserProfile struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID string `gorm:"not null;uniqueIndex:idx_user_profiles_owner_id" json:"owner_id"`

	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`

	StripeCustomerID *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_user_profiles_stripe_customer_id" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
