package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"creatorrate.app/cloud/internal/logger"
	"creatorrate.app/cloud/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type DealListResponse struct {
	Deals []*models.Deal `json:"deals"`
}

func (s *Server) CreateDeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var deal models.Deal
	if err := json.NewDecoder(r.Body).Decode(&deal); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	now := time.Now()
	deal.ID = uuid.Must(uuid.NewRandom()).String()
	deal.CreatedAt = now
	deal.UpdatedAt = now
	if deal.Status == "" {
		deal.Status = models.DealStatusDraft
	}
	if deal.Currency == "" {
		deal.Currency = "USD"
	}

	if err := deal.Validate(); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.Storage.SaveDeal(ctx, &deal); err != nil {
		logger.Error("Failed to save deal", map[string]interface{}{
			"error": err.Error(),
			"email": deal.Email,
		})
		writeErrorResponse(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	writeJSON(w, http.StatusCreated, &deal)
}

func (s *Server) ListDeals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := r.URL.Query().Get("email")
	if email == "" {
		writeErrorResponse(w, http.StatusBadRequest, "Email required")
		return
	}

	deals, err := s.Storage.FindDealsByEmail(ctx, email)
	if err != nil {
		logger.Error("Failed to list deals", map[string]interface{}{
			"error": err.Error(),
			"email": email,
		})
		writeErrorResponse(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	if deals == nil {
		deals = []*models.Deal{}
	}

	writeJSON(w, http.StatusOK, DealListResponse{Deals: deals})
}

func (s *Server) GetDeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deal, err := s.Storage.GetDeal(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}
	if deal == nil {
		writeErrorResponse(w, http.StatusNotFound, "Deal not found")
		return
	}

	writeJSON(w, http.StatusOK, deal)
}

func (s *Server) UpdateDeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	existing, err := s.Storage.GetDeal(ctx, id)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}
	if existing == nil {
		writeErrorResponse(w, http.StatusNotFound, "Deal not found")
		return
	}

	var deal models.Deal
	if err := json.NewDecoder(r.Body).Decode(&deal); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	deal.ID = existing.ID
	deal.CreatedAt = existing.CreatedAt
	deal.UpdatedAt = time.Now()
	if deal.Email == "" {
		deal.Email = existing.Email
	}

	if err := deal.Validate(); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.Storage.SaveDeal(ctx, &deal); err != nil {
		logger.Error("Failed to update deal", map[string]interface{}{
			"error":   err.Error(),
			"deal_id": id,
		})
		writeErrorResponse(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	writeJSON(w, http.StatusOK, &deal)
}

func (s *Server) DeleteDeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	existing, err := s.Storage.GetDeal(ctx, id)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}
	if existing == nil {
		writeErrorResponse(w, http.StatusNotFound, "Deal not found")
		return
	}

	if err := s.Storage.DeleteDeal(ctx, id); err != nil {
		logger.Error("Failed to delete deal", map[string]interface{}{
			"error":   err.Error(),
			"deal_id": id,
		})
		writeErrorResponse(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
