package config

import (
	"errors"
	"os"
	"strings"
)

type Config struct {
	Port string

	DatabaseURL string

	StripeSecret        string
	StripeWebhookSecret string
	StripePriceIDs      []string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string

	SentryDSN string
}

func New() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}

	stripeSecret := os.Getenv("STRIPE_SECRET")
	if stripeSecret == "" {
		return nil, errors.New("STRIPE_SECRET environment variable is required")
	}

	stripeWebhookSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if stripeWebhookSecret == "" {
		return nil, errors.New("STRIPE_WEBHOOK_SECRET environment variable is required")
	}

	var priceIDs []string
	for _, id := range strings.Split(os.Getenv("STRIPE_PRICE_IDS"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			priceIDs = append(priceIDs, id)
		}
	}
	if len(priceIDs) == 0 {
		return nil, errors.New("STRIPE_PRICE_IDS environment variable is required (comma-separated price ids)")
	}

	emailFrom := os.Getenv("EMAIL_FROM")
	if emailFrom == "" {
		emailFrom = "billing@creatorrate.app"
	}

	return &Config{
		Port:                port,
		DatabaseURL:         dbURL,
		StripeSecret:        stripeSecret,
		StripeWebhookSecret: stripeWebhookSecret,
		StripePriceIDs:      priceIDs,
		SMTPHost:            os.Getenv("SMTP_HOST"),
		SMTPPort:            os.Getenv("SMTP_PORT"),
		SMTPUsername:        os.Getenv("SMTP_USERNAME"),
		SMTPPassword:        os.Getenv("SMTP_PASSWORD"),
		EmailFrom:           emailFrom,
		SentryDSN:           os.Getenv("SENTRY_DSN"),
	}, nil
}

// AllowedPrice reports whether a checkout may be started for the price id.
func (c *Config) AllowedPrice(priceID string) bool {
	for _, id := range c.StripePriceIDs {
		if id == priceID {
			return true
		}
	}
	return false
}
