package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"creatorrate.app/cloud/internal/logger"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// CheckoutClient creates hosted checkout sessions on the payment
// provider. Injected so handlers never touch package-global Stripe state.
type CheckoutClient interface {
	NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type StripeCheckout struct {
	api *client.API
}

func NewStripeCheckout(secretKey string) *StripeCheckout {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeCheckout{api: api}
}

func (c *StripeCheckout) NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return c.api.CheckoutSessions.New(params)
}

type CheckoutRequest struct {
	PriceID string `json:"price_id"`
	Email   string `json:"email"`
	Origin  string `json:"origin"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

// CreateCheckoutSession requests a single-use hosted checkout URL. It
// never mutates the subscription store; activation happens only through
// the webhook once the provider confirms payment.
func (s *Server) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.PriceID == "" || req.Email == "" || req.Origin == "" {
		writeErrorResponse(w, http.StatusBadRequest, "price_id, email and origin are required")
		return
	}

	// Email syntax beyond non-empty is the provider's problem; the price
	// id is ours, checked against the configured allow-list before any
	// provider call.
	if !s.Config.AllowedPrice(req.PriceID) {
		logger.Warn("Checkout requested for unknown price", map[string]interface{}{
			"price_id": req.PriceID,
		})
		writeErrorResponse(w, http.StatusBadRequest, "Unknown price")
		return
	}

	origin := strings.TrimSuffix(req.Origin, "/")

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail: stripe.String(req.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Price:    stripe.String(req.PriceID),
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(origin + "/dashboard?checkout=success"),
		CancelURL:  stripe.String(origin + "/pricing?checkout=cancelled"),
	}

	session, err := s.Checkout.NewSession(params)
	if err != nil {
		logger.Error("Failed to create checkout session", map[string]interface{}{
			"error":    err.Error(),
			"price_id": req.PriceID,
			"email":    req.Email,
		})
		writeErrorResponse(w, http.StatusBadRequest, "Could not start checkout")
		return
	}

	logger.Info("Checkout session created", map[string]interface{}{
		"session_id": session.ID,
		"email":      req.Email,
	})

	writeJSON(w, http.StatusOK, CheckoutResponse{URL: session.URL})
}
