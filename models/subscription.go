package models

import "time"

// Subscription is the per-user entitlement row that paid features are
// gated on. It is created unpaid when an account is registered and is
// flipped to paid only by the Stripe webhook handler. There is no
// in-system transition back to unpaid; cancellation is handled outside
// this service.
type Subscription struct {
	Email                string    `json:"email"`
	IsPaid               bool      `json:"is_paid"`
	StripeCustomerID     string    `json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID string    `json:"stripe_subscription_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Activate marks the subscription paid and records the provider ids.
// It is an unconditional set so replayed webhook deliveries converge to
// the same state.
func (s *Subscription) Activate(customerID, subscriptionID string, now time.Time) {
	s.IsPaid = true
	s.StripeCustomerID = customerID
	s.StripeSubscriptionID = subscriptionID
	s.UpdatedAt = now
}
