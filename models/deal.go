package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DealStatusDraft     = "draft"
	DealStatusPitched   = "pitched"
	DealStatusAgreed    = "agreed"
	DealStatusDelivered = "delivered"
	DealStatusPaid      = "paid"
)

// Deal is a single brand collaboration tracked by a creator.
type Deal struct {
	ID          string    `json:"id"`
	Email       string    `json:"email" validate:"required,email"`
	Brand       string    `json:"brand" validate:"required,max=120"`
	Platform    string    `json:"platform" validate:"required,oneof=instagram tiktok youtube twitch"`
	Deliverable string    `json:"deliverable" validate:"required,max=120"`
	AmountCents int64     `json:"amount_cents" validate:"gte=0"`
	Currency    string    `json:"currency" validate:"required,uppercase,len=3"`
	Status      string    `json:"status" validate:"required,oneof=draft pitched agreed delivered paid"`
	ClosedAt    time.Time `json:"closed_at,omitzero"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (d *Deal) Validate() error {
	v := validator.New()
	return v.Struct(d)
}
