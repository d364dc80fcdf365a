package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"creatorrate.app/cloud/internal/legal"
	"creatorrate.app/cloud/internal/logger"
	"creatorrate.app/cloud/models"
)

func (s *Server) SaveLegalProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := emailParam(r)
	if email == "" {
		writeErrorResponse(w, http.StatusBadRequest, "Email required")
		return
	}

	var profile models.LegalProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	profile.Email = email

	if err := legal.Validate(&profile); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := s.Storage.FindLegalProfileByEmail(ctx, email)
	if err != nil {
		logger.Error("Failed to load legal profile", map[string]interface{}{
			"error": err.Error(),
			"email": email,
		})
		writeErrorResponse(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if existing != nil {
		profile.CreatedAt = existing.CreatedAt
	}

	if err := s.Storage.SaveLegalProfile(ctx, &profile); err != nil {
		logger.Error("Failed to save legal profile", map[string]interface{}{
			"error": err.Error(),
			"email": email,
		})
		writeErrorResponse(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	writeJSON(w, http.StatusOK, &profile)
}

func (s *Server) GetLegalProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := emailParam(r)
	if email == "" {
		writeErrorResponse(w, http.StatusBadRequest, "Email required")
		return
	}

	profile, err := s.Storage.FindLegalProfileByEmail(ctx, email)
	if err != nil {
		logger.Error("Failed to load legal profile", map[string]interface{}{
			"error": err.Error(),
			"email": email,
		})
		writeErrorResponse(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	if profile == nil {
		writeErrorResponse(w, http.StatusNotFound, "Legal profile not found")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
