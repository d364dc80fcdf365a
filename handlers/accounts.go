package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"creatorrate.app/cloud/internal/logger"
	"creatorrate.app/cloud/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AccountRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CreateAccount bootstraps the unpaid subscription record for a new user.
// Re-posting an existing email is a no-op that returns the current row,
// so signup retries are harmless.
func (s *Server) CreateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "A valid email is required")
		return
	}

	existing, err := s.Storage.FindSubscriptionByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("Account lookup failed", map[string]interface{}{
			"error": err.Error(),
			"email": req.Email,
		})
		writeErrorResponse(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	if existing != nil {
		writeJSON(w, http.StatusOK, existing)
		return
	}

	now := time.Now()
	sub := &models.Subscription{
		Email:     req.Email,
		IsPaid:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Storage.SaveSubscription(ctx, sub); err != nil {
		logger.Error("Failed to create account", map[string]interface{}{
			"error": err.Error(),
			"email": req.Email,
		})
		writeErrorResponse(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	logger.Info("Account created", map[string]interface{}{
		"email": req.Email,
	})

	writeJSON(w, http.StatusCreated, sub)
}

// GetSubscription is the entitlement read the client polls after
// returning from checkout.
func (s *Server) GetSubscription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := emailParam(r)
	if email == "" {
		writeErrorResponse(w, http.StatusBadRequest, "Email required")
		return
	}

	sub, err := s.Storage.FindSubscriptionByEmail(ctx, email)
	if err != nil {
		logger.Error("Subscription lookup failed", map[string]interface{}{
			"error": err.Error(),
			"email": email,
		})
		writeErrorResponse(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	if sub == nil {
		writeErrorResponse(w, http.StatusNotFound, "Subscription not found")
		return
	}

	writeJSON(w, http.StatusOK, sub)
}

func emailParam(r *http.Request) string {
	raw := chi.URLParam(r, "email")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
