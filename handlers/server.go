package handlers

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"creatorrate.app/cloud/internal/config"
	"creatorrate.app/cloud/internal/email"
	"creatorrate.app/cloud/internal/ratelimit"
	"creatorrate.app/cloud/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/atomic"
)

// Mailer sends transactional mail. Satisfied by email.Sender; tests
// substitute a recorder.
type Mailer interface {
	SendPaymentConfirmation(to string, data email.PaymentConfirmation) error
}

type Server struct {
	Router   chi.Router
	Storage  storage.Storage
	Checkout CheckoutClient
	Mailer   Mailer
	Config   *config.Config

	limiter           ratelimit.RateLimit
	webhooksProcessed *atomic.Int64
}

type HealthResponse struct {
	Status            string    `json:"status"`
	Timestamp         time.Time `json:"timestamp"`
	WebhooksProcessed int64     `json:"webhooks_processed"`
}

func NewServer(cfg *config.Config, db storage.Storage, checkout CheckoutClient, mailer Mailer) *Server {
	s := &Server{
		Storage:           db,
		Checkout:          checkout,
		Mailer:            mailer,
		Config:            cfg,
		limiter:           ratelimit.New(120, time.Minute),
		webhooksProcessed: atomic.NewInt64(0),
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Stripe-Signature"},
		MaxAge:         300,
	}))

	r.Get("/health", s.Health)

	r.Route("/api/v1", func(r chi.Router) {
		// Stripe's callbacks are authenticated by signature, not limited.
		r.Post("/webhooks/stripe", s.StripeWebhook)

		r.Group(func(r chi.Router) {
			r.Use(s.rateLimitMiddleware)

			r.Post("/accounts", s.CreateAccount)
			r.Get("/subscriptions/{email}", s.GetSubscription)

			r.Post("/billing/checkout", s.CreateCheckoutSession)

			r.Route("/deals", func(r chi.Router) {
				r.Post("/", s.CreateDeal)
				r.Get("/", s.ListDeals)
				r.Get("/{id}", s.GetDeal)
				r.Put("/{id}", s.UpdateDeal)
				r.Delete("/{id}", s.DeleteDeal)
			})

			r.Get("/analytics", s.Analytics)
			r.Post("/rates", s.SuggestRate)

			r.Put("/legal/{email}", s.SaveLegalProfile)
			r.Get("/legal/{email}", s.GetLegalProfile)

			r.Get("/mediakit/{email}", s.MediaKit)
		})
	})

	s.Router = r
	return s
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:            "healthy",
		Timestamp:         time.Now(),
		WebhooksProcessed: s.webhooksProcessed.Load(),
	})
}

func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}

		if !s.limiter.Allow(host) {
			writeErrorResponse(w, http.StatusTooManyRequests, "Too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
