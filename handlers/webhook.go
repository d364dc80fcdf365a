package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"creatorrate.app/cloud/internal/email"
	"creatorrate.app/cloud/internal/logger"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeWebhook is the only writer of the paid flag. The contract with
// the provider: 400 means the event was untrusted, anything signed is
// acknowledged with 200 even when we could not act on it, because Stripe
// retries non-2xx responses and a retry cannot fix a missing user row.
func (s *Server) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	const MaxBodyBytes = int64(65536)
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("Failed to read webhook payload", map[string]interface{}{
			"error": err.Error(),
		})
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	// Authenticity first. The signature is an HMAC over the raw bytes,
	// so nothing parses the payload before ConstructEvent has verified it.
	signatureHeader := r.Header.Get("Stripe-Signature")
	if signatureHeader == "" || s.Config.StripeWebhookSecret == "" {
		logger.Error("Webhook rejected before verification", map[string]interface{}{
			"have_signature": signatureHeader != "",
			"have_secret":    s.Config.StripeWebhookSecret != "",
		})
		writeErrorResponse(w, http.StatusBadRequest, "Invalid signature")
		return
	}

	event, err := webhook.ConstructEvent(payload, signatureHeader, s.Config.StripeWebhookSecret)
	if err != nil {
		logger.Error("Webhook signature verification failed", map[string]interface{}{
			"error": err.Error(),
		})
		writeErrorResponse(w, http.StatusBadRequest, "Invalid signature")
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			// Signed but malformed: a data-quality problem, not a
			// protocol failure. Acknowledge without acting.
			logger.Error("Failed to unmarshal checkout session", map[string]interface{}{
				"error":    err.Error(),
				"event_id": event.ID,
			})
		} else {
			s.activateSubscription(ctx, &session, event.ID)
		}
	default:
		logger.Info("Unhandled webhook event type", map[string]interface{}{
			"event_type": event.Type,
			"event_id":   event.ID,
		})
	}

	s.webhooksProcessed.Inc()

	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}

// activateSubscription applies the one state transition this service
// owns: unpaid -> paid. The write is an unconditional set, so replayed
// deliveries converge to the same row. Failures are logged and swallowed;
// the caller acknowledges the event regardless.
func (s *Server) activateSubscription(ctx context.Context, session *stripe.CheckoutSession, eventID string) {
	payerEmail := session.CustomerEmail
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		payerEmail = session.CustomerDetails.Email
	}

	if payerEmail == "" {
		logger.Warn("Checkout session has no customer email, acknowledging without action", map[string]interface{}{
			"event_id":   eventID,
			"session_id": session.ID,
		})
		return
	}

	var customerID, subscriptionID string
	if session.Customer != nil {
		customerID = session.Customer.ID
	}
	if session.Subscription != nil {
		subscriptionID = session.Subscription.ID
	}

	// A paid row always carries the provider's customer id; a completed
	// session without one cannot be tied back to a Stripe customer.
	if customerID == "" {
		logger.Warn("Checkout session has no customer id, acknowledging without action", map[string]interface{}{
			"event_id":   eventID,
			"session_id": session.ID,
			"email":      payerEmail,
		})
		return
	}

	sub, err := s.Storage.FindSubscriptionByEmail(ctx, payerEmail)
	if err != nil {
		logger.Error("Subscription lookup failed, acknowledging anyway", map[string]interface{}{
			"error":    err.Error(),
			"event_id": eventID,
			"email":    payerEmail,
		})
		return
	}
	if sub == nil {
		logger.Warn("No subscription record for payer email, acknowledging without action", map[string]interface{}{
			"event_id": eventID,
			"email":    payerEmail,
		})
		return
	}

	sub.Activate(customerID, subscriptionID, time.Now())

	if err := s.Storage.SaveSubscription(ctx, sub); err != nil {
		logger.Error("Subscription update failed, acknowledging anyway", map[string]interface{}{
			"error":    err.Error(),
			"event_id": eventID,
			"email":    payerEmail,
		})
		return
	}

	logger.Info("Subscription activated", map[string]interface{}{
		"email":                  payerEmail,
		"stripe_customer_id":     customerID,
		"stripe_subscription_id": subscriptionID,
		"event_id":               eventID,
	})

	s.sendConfirmation(ctx, payerEmail)
}

func (s *Server) sendConfirmation(ctx context.Context, payerEmail string) {
	if s.Mailer == nil {
		return
	}

	firstName := ""
	if profile, err := s.Storage.FindLegalProfileByEmail(ctx, payerEmail); err == nil && profile != nil {
		firstName = strings.Split(profile.LegalName, " ")[0]
	}

	err := s.Mailer.SendPaymentConfirmation(payerEmail, email.PaymentConfirmation{Name: firstName})
	if err != nil {
		// The subscription is already active; mail failure must not
		// surface to the provider.
		logger.Error("Failed to send payment confirmation", map[string]interface{}{
			"error": err.Error(),
			"email": payerEmail,
		})
		return
	}

	logger.Info("Payment confirmation sent", map[string]interface{}{
		"email": payerEmail,
	})
}
