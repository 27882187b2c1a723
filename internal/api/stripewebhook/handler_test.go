package stripewebhooks

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scriptpilot/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v75/webhook"
)

const testEndpointSecret = "whsec_stripe_handler_test"

func postStripeWebhook(t *testing.T, body []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhooks/stripe", StripeWebhook)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signPayload(payload []byte) string {
	ts := time.Now()
	sig := webhook.ComputeSignature(ts, payload, testEndpointSecret)
	return fmt.Sprintf("t=%d,v1=%x", ts.Unix(), sig)
}

func TestStripeWebhookMissingKey(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")
	t.Setenv("STRIPE_WEBHOOK_SECRET", testEndpointSecret)

	w := postStripeWebhook(t, []byte(`{}`), "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStripeWebhookMissingEndpointSecret(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "")

	w := postStripeWebhook(t, []byte(`{}`), "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStripeWebhookBadSignature(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", testEndpointSecret)

	w := postStripeWebhook(t, []byte(`{"type":"invoice.payment_failed"}`), "t=1,v1=deadbeef")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Signature verification failed")
}

func TestStripeWebhookUnknownEventAcknowledged(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", testEndpointSecret)

	payload := []byte(`{"id": "evt_1", "type": "customer.created", "data": {"object": {}}}`)
	w := postStripeWebhook(t, payload, signPayload(payload))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
}

func TestStripeWebhookPaymentFailedSigned(t *testing.T) {
	// invoice.payment_failed needs no Stripe API round trip, so a signed
	// delivery can run end to end against a local store.
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", testEndpointSecret)

	prevDB := database.DB
	database.DB = testDB(t)
	t.Cleanup(func() { database.DB = prevDB })

	payload := []byte(`{
		"id": "evt_2",
		"type": "invoice.payment_failed",
		"data": {"object": {"id": "in_1", "subscription": {"id": "sub_ghost"}}}
	}`)
	w := postStripeWebhook(t, payload, signPayload(payload))
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
