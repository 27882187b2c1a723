package routes

import (
	"scriptpilot/internal/api/billing"
	clerkwebhooks "scriptpilot/internal/api/clerkwebhook"
	ideasapi "scriptpilot/internal/api/ideas"
	reviewsapi "scriptpilot/internal/api/reviews"
	scriptsapi "scriptpilot/internal/api/scripts"
	settingsapi "scriptpilot/internal/api/settings"
	stripewebhooks "scriptpilot/internal/api/stripewebhook"
	"scriptpilot/internal/app/http/middleware"
	"scriptpilot/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Webhooks verify their own signatures over the raw body, so they stay
	// outside the sanitization and auth chains.
	r.POST("/webhooks/stripe", stripewebhooks.StripeWebhook)
	r.POST("/webhooks/clerk", clerkwebhooks.ClerkWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/plans", billing.ListPlans)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.SanitizeAndCleanInputMiddleware())

	auth.GET("/subscription", billing.GetSubscription)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)

	auth.GET("/ideas", ideasapi.ListIdeas)
	auth.POST("/ideas", ideasapi.CreateIdea)
	auth.GET("/ideas/:id", ideasapi.GetIdea)
	auth.PUT("/ideas/:id", ideasapi.UpdateIdea)
	auth.DELETE("/ideas/:id", ideasapi.DeleteIdea)
	auth.POST("/ideas/:id/promote", ideasapi.PromoteIdea)

	auth.GET("/scripts", scriptsapi.ListScripts)
	auth.POST("/scripts", scriptsapi.CreateScript)
	auth.GET("/scripts/:id", scriptsapi.GetScript)
	auth.PUT("/scripts/:id", scriptsapi.UpdateScript)
	auth.DELETE("/scripts/:id", scriptsapi.DeleteScript)
	auth.PUT("/scripts/:id/stage", scriptsapi.UpdateScriptStage)
	auth.POST("/scripts/:id/attachments", scriptsapi.AddAttachment)
	auth.POST("/scripts/:id/versions", scriptsapi.SnapshotVersion)
	auth.POST("/scripts/:id/versions/restore", scriptsapi.RestoreVersion)
	auth.GET("/scripts/:id/review", reviewsapi.GetScriptReview)

	auth.GET("/reviews", reviewsapi.ListReviews)

	auth.GET("/settings", settingsapi.GetSettings)
	auth.PUT("/settings", settingsapi.UpdateSettings)

	// Paid plans only
	paid := auth.Group("/")
	paid.Use(middleware.RequirePlan(plans.RankCreator))
	paid.POST("/reviews", reviewsapi.SubmitReview)
}
