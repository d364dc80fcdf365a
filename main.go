package main

import (
	"log"
	"net/http"

	"creatorrate.app/cloud/handlers"
	"creatorrate.app/cloud/internal/config"
	"creatorrate.app/cloud/internal/email"
	"creatorrate.app/cloud/storage"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}

	db, err := storage.NewSQLiteStorage(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close storage: %v", err)
		}
	}()

	checkout := handlers.NewStripeCheckout(cfg.StripeSecret)
	mailer := email.NewSender(cfg)

	server := handlers.NewServer(cfg, db, checkout, mailer)

	log.Printf("CreatorRate API starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, server.Router))
}
