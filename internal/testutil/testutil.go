package testutil

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"creatorrate.app/cloud/internal/config"
	"creatorrate.app/cloud/models"
	"creatorrate.app/cloud/storage"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const WebhookSecret = "whsec_test"

// TestConfig returns a config with every required field populated, so
// handlers never hit the fail-fast paths by accident.
func TestConfig() *config.Config {
	return &config.Config{
		Port:                "8080",
		DatabaseURL:         ":memory:",
		StripeSecret:        "sk_test_123",
		StripeWebhookSecret: WebhookSecret,
		StripePriceIDs:      []string{"price_pro_monthly", "price_pro_yearly"},
		EmailFrom:           "billing@creatorrate.app",
	}
}

func TestStorage() *storage.MemoryStorage {
	return storage.NewMemoryStorage()
}

// CreateTestSubscription returns an unpaid subscription row, the state an
// account is in between signup and checkout.
func CreateTestSubscription(email string) models.Subscription {
	now := time.Now()
	return models.Subscription{
		Email:     email,
		IsPaid:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func CreatePaidSubscription(email string) models.Subscription {
	sub := CreateTestSubscription(email)
	sub.Activate("cus_test123", "sub_test123", time.Now())
	return sub
}

func CreateTestDeal(id, email, platform string, amountCents int64, status string) models.Deal {
	now := time.Now()
	deal := models.Deal{
		ID:          id,
		Email:       email,
		Brand:       "Acme Co",
		Platform:    platform,
		Deliverable: "post",
		AmountCents: amountCents,
		Currency:    "USD",
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if status == models.DealStatusPaid {
		deal.ClosedAt = now
	}
	return deal
}

// CheckoutSessionObject builds the data.object of a checkout.session
// event. Provider ids are plain strings, the unexpanded form Stripe
// delivers by default.
func CheckoutSessionObject(email, customerID, subscriptionID string) map[string]interface{} {
	object := map[string]interface{}{
		"id":             "cs_test123",
		"amount_total":   2900,
		"currency":       "usd",
		"payment_status": "paid",
	}
	if email != "" {
		object["customer_email"] = email
	}
	if customerID != "" {
		object["customer"] = customerID
	}
	if subscriptionID != "" {
		object["subscription"] = subscriptionID
	}
	return object
}

// EventPayload marshals a Stripe event envelope around the given object.
// The api_version matches the bound stripe-go version so ConstructEvent's
// version check passes.
func EventPayload(t *testing.T, eventType string, object map[string]interface{}) []byte {
	t.Helper()

	event := map[string]interface{}{
		"id":          "evt_test123",
		"api_version": stripe.APIVersion,
		"type":        eventType,
		"data": map[string]interface{}{
			"object": object,
		},
	}

	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("Failed to marshal event: %v", err)
	}
	return payload
}

// SignPayload produces a genuine Stripe-Signature header for the payload,
// so webhook tests go through real verification instead of a bypass.
func SignPayload(payload []byte, secret string) string {
	ts := time.Now()
	signature := webhook.ComputeSignature(ts, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(signature))
}
