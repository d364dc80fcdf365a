package models

import "time"

const (
	BusinessTypeIndividual = "individual"
	BusinessTypeCompany    = "company"
)

// LegalProfile holds the billing/tax identity a creator puts on invoices
// and media kits. Country-conditional tax-id checks live in internal/legal.
type LegalProfile struct {
	Email         string    `json:"email" validate:"required,email"`
	LegalName     string    `json:"legal_name" validate:"required,max=200"`
	Country       string    `json:"country" validate:"required,iso3166_1_alpha2"`
	BusinessType  string    `json:"business_type" validate:"required,oneof=individual company"`
	TaxID         string    `json:"tax_id,omitempty"`
	VATRegistered bool      `json:"vat_registered"`
	VATID         string    `json:"vat_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
