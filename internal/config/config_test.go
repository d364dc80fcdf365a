package config

import (
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "test.db")
	t.Setenv("STRIPE_SECRET", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test_123")
	t.Setenv("STRIPE_PRICE_IDS", "price_monthly,price_yearly")
}

func TestNew(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("EMAIL_FROM", "")
	t.Setenv("SENTRY_DSN", "https://key@sentry.example/1")

	cfg, err := New()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.EmailFrom != "billing@creatorrate.app" {
		t.Errorf("Expected default sender, got %s", cfg.EmailFrom)
	}
	if len(cfg.StripePriceIDs) != 2 {
		t.Errorf("Expected 2 price ids, got %v", cfg.StripePriceIDs)
	}
	if cfg.SentryDSN != "https://key@sentry.example/1" {
		t.Errorf("Expected Sentry DSN to load through config, got %q", cfg.SentryDSN)
	}
}

func TestNew_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{"missing database url", "DATABASE_URL"},
		{"missing stripe secret", "STRIPE_SECRET"},
		{"missing webhook secret", "STRIPE_WEBHOOK_SECRET"},
		{"missing price ids", "STRIPE_PRICE_IDS"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tc.unset, "")

			_, err := New()
			if err == nil {
				t.Fatalf("Expected error without %s", tc.unset)
			}
			if !strings.Contains(err.Error(), tc.unset) {
				t.Errorf("Error should name the variable, got: %v", err)
			}
		})
	}
}

func TestNew_PriceIDWhitespace(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STRIPE_PRICE_IDS", " price_a , ,price_b,")

	cfg, err := New()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if len(cfg.StripePriceIDs) != 2 || cfg.StripePriceIDs[0] != "price_a" || cfg.StripePriceIDs[1] != "price_b" {
		t.Errorf("Expected trimmed price ids, got %v", cfg.StripePriceIDs)
	}
}

func TestAllowedPrice(t *testing.T) {
	cfg := &Config{StripePriceIDs: []string{"price_a", "price_b"}}

	if !cfg.AllowedPrice("price_a") {
		t.Errorf("Expected price_a to be allowed")
	}
	if cfg.AllowedPrice("price_evil") {
		t.Errorf("Expected unknown price to be rejected")
	}
	if cfg.AllowedPrice("") {
		t.Errorf("Expected empty price to be rejected")
	}
}
