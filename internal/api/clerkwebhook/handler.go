package clerkwebhooks

import (
	"encoding/json"
	"io"
	"net/http"
	"os"

	"scriptpilot/database"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	svix "github.com/svix/svix-webhooks/go"
)

// ClerkWebhook receives identity-provider lifecycle events. Every request is
// authenticated with the svix shared-secret scheme (id, timestamp and
// signature headers over the raw body) before the payload is trusted.
func ClerkWebhook(c *gin.Context) {
	secret := os.Getenv("CLERK_WEBHOOK_SECRET")
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "CLERK_WEBHOOK_SECRET not configured"})
		return
	}

	if c.GetHeader("svix-id") == "" ||
		c.GetHeader("svix-timestamp") == "" ||
		c.GetHeader("svix-signature") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing Svix headers"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 65536)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	wh, err := svix.NewWebhook(secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "CLERK_WEBHOOK_SECRET malformed"})
		return
	}
	if err := wh.Verify(payload, c.Request.Header); err != nil {
		log.Warn().Err(err).Msg("Clerk signature verification failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	var event clerkEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse event"})
		return
	}

	switch event.Type {
	case eventUserCreated, eventUserUpdated, eventUserDeleted:
		var user clerkUserData
		if err := json.Unmarshal(event.Data, &user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse user data"})
			return
		}

		var applyErr error
		switch event.Type {
		case eventUserCreated:
			applyErr = applyUserCreated(database.DB, user)
		case eventUserUpdated:
			applyErr = applyUserUpdated(database.DB, user)
		case eventUserDeleted:
			applyErr = applyUserDeleted(database.DB, user.ID)
		}
		if applyErr != nil {
			log.Error().Err(applyErr).Str("event", event.Type).Str("owner_id", user.ID).Msg("Clerk webhook handler failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": applyErr.Error()})
			return
		}

		log.Info().Str("event", event.Type).Str("owner_id", user.ID).Msg("Clerk event applied")
		c.JSON(http.StatusOK, gin.H{"status": "received"})

	default:
		// Acknowledge unknown events so the provider stops retrying.
		log.Info().Str("event", event.Type).Msg("Unhandled Clerk event")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	}
}
