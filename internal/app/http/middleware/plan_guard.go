package middleware

import (
	"errors"
	"net/http"

	"scriptpilot/database"
	"scriptpilot/internal/domain/entitlement"
	"scriptpilot/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequirePlan rejects owners whose entitlement rank is below minRank. The
// entitlement is derived from the subscription mirror on every request; the
// reconciler keeps that mirror current.
func RequirePlan(minRank int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetString("owner_id")
		if ownerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var sub subscriptions.Subscription
		err := database.DB.Where("owner_id = ?", ownerID).First(&sub).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
			return
		}

		ent := entitlement.Resolve(nil)
		if err == nil {
			ent = entitlement.Resolve(&sub)
		}

		if ent.Rank() < minRank {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Your current plan does not include this feature",
			})
			return
		}

		c.Next()
	}
}
