package billing

import (
	"net/http"
	"os"

	"scriptpilot/config"
	"scriptpilot/database"
	"scriptpilot/internal/domain/plans"
	"scriptpilot/internal/domain/profiles"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	portalSession "github.com/stripe/stripe-go/v75/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	customer "github.com/stripe/stripe-go/v75/customer"
)

// CreateCheckoutSession starts a subscription checkout for an allow-listed
// price. The owner id and price id ride the session metadata; the webhook
// reads them back on checkout.session.completed, so the keys here and there
// must match.
func CreateCheckoutSession(c *gin.Context) {
	var body struct {
		PriceID string `json:"price_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.PriceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid price_id"})
		return
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	plan, ok := plans.ByPriceID(body.PriceID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price ID"})
		return
	}

	var profile profiles.UserProfile
	if err := database.DB.Where("owner_id = ?", ownerID).First(&profile).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User profile not found"})
		return
	}

	// Ensure a Stripe customer tagged with the owner id exists and is stored.
	if profile.StripeCustomerID == nil || *profile.StripeCustomerID == "" {
		cus, err := customer.New(&stripe.CustomerParams{
			Email: stripe.String(profile.Email),
			Metadata: map[string]string{
				"owner_id": ownerID,
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Stripe customer"})
			return
		}

		if err := database.DB.Model(&profiles.UserProfile{}).
			Where("owner_id = ?", ownerID).
			Update("stripe_customer_id", cus.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store Stripe customer"})
			return
		}

		profile.StripeCustomerID = stripe.String(cus.ID)
	}

	billingURL := config.APP_URL + "/dashboard/billing"

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(billingURL),
		CancelURL:  stripe.String(billingURL),
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer:   stripe.String(*profile.StripeCustomerID),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(plan.StripePriceID), Quantity: stripe.Int64(1)},
		},

		// The subscription object gets its own owner tag so invoice and
		// lifecycle events can resolve the owner later.
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				"owner_id": ownerID,
			},
		},
	}
	params.AddMetadata("owner_id", ownerID)
	params.AddMetadata("price_id", plan.StripePriceID)

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}

// CreateBillingPortal opens the hosted portal for an owner who already has a
// Stripe customer.
func CreateBillingPortal(c *gin.Context) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	var profile profiles.UserProfile
	if err := database.DB.Where("owner_id = ?", ownerID).First(&profile).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User profile not found"})
		return
	}
	if profile.StripeCustomerID == nil || *profile.StripeCustomerID == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "Stripe customer not found"})
		return
	}

	portal, err := portalSession.New(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(*profile.StripeCustomerID),
		ReturnURL: stripe.String(config.APP_URL + "/dashboard/billing"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create billing portal session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": portal.URL})
}

func mustOwnerID(c *gin.Context) (string, bool) {
	ownerID := c.GetString("owner_id")
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return ownerID, true
}
