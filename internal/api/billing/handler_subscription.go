package billing

import (
	"errors"
	"net/http"

	"scriptpilot/database"
	"scriptpilot/internal/domain/entitlement"
	"scriptpilot/internal/domain/plans"
	"scriptpilot/internal/domain/subscriptions"
	stripeinfra "scriptpilot/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListPlans exposes the static plan table for pricing pages.
func ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, plans.All())
}

// GetSubscription reports the owner's mirrored subscription, or the free tier
// when no row exists.
func GetSubscription(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var sub subscriptions.Subscription
	err := database.DB.Where("owner_id = ?", ownerID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ent := entitlement.Resolve(nil)
		c.JSON(http.StatusOK, gin.H{
			"subscription": nil,
			"entitlement": gin.H{
				"tier":     ent.Kind.String(),
				"features": ent.Features(),
			},
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return
	}

	ent := entitlement.Resolve(&sub)
	c.JSON(http.StatusOK, gin.H{
		"subscription": sub,
		"entitlement": gin.H{
			"tier":      ent.Kind.String(),
			"plan_name": ent.PlanName,
			"status":    stripeinfra.NormalizeStatus(ent.Status),
			"features":  ent.Features(),
		},
	})
}
