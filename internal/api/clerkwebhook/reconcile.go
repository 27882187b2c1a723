package clerkwebhooks

import (
	"errors"
	"fmt"
	"time"

	"scriptpilot/internal/domain/ideas"
	"scriptpilot/internal/domain/profiles"
	"scriptpilot/internal/domain/reviews"
	"scriptpilot/internal/domain/scripts"
	"scriptpilot/internal/domain/settings"
	"scriptpilot/internal/domain/subscriptions"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// applyUserCreated upserts the profile keyed by owner id. Redelivery of the
// same event overwrites the same row. A user with no resolvable primary email
// fails the whole event so the provider redelivers once the address exists.
func applyUserCreated(db *gorm.DB, user clerkUserData) error {
	if user.ID == "" {
		return errors.New("user.created event missing user id")
	}
	email := user.primaryEmail()
	if email == "" {
		return fmt.Errorf("no primary email for user %s", user.ID)
	}

	row := profiles.UserProfile{
		OwnerID:   user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     email,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"first_name", "last_name", "email", "updated_at"}),
	}).Create(&row).Error
}

// applyUserUpdated overwrites profile fields for an existing owner. A missing
// row is a tolerated no-op: creation belongs to user.created.
func applyUserUpdated(db *gorm.DB, user clerkUserData) error {
	if user.ID == "" {
		return errors.New("user.updated event missing user id")
	}
	return db.Model(&profiles.UserProfile{}).
		Where("owner_id = ?", user.ID).
		Updates(map[string]interface{}{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.primaryEmail(),
			"updated_at": time.Now(),
		}).Error
}

// applyUserDeleted cascade-deletes everything the owner holds, children
// before parents, so no orphaned references survive even without relational
// enforcement.
func applyUserDeleted(db *gorm.DB, ownerID string) error {
	if ownerID == "" {
		return errors.New("user.deleted event missing user id")
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", ownerID).Delete(&reviews.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", ownerID).Delete(&scripts.Script{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", ownerID).Delete(&ideas.Idea{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", ownerID).Delete(&settings.UserSettings{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", ownerID).Delete(&subscriptions.Subscription{}).Error; err != nil {
			return err
		}
		return tx.Where("owner_id = ?", ownerID).Delete(&profiles.UserProfile{}).Error
	})
}
