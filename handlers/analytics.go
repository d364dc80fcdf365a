package handlers

import (
	"net/http"

	"creatorrate.app/cloud/internal/analytics"
	"creatorrate.app/cloud/internal/logger"
)

// Analytics returns the chart buckets for a creator's deals. Computed on
// read; deal volumes per user are tiny.
func (s *Server) Analytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := r.URL.Query().Get("email")
	if email == "" {
		writeErrorResponse(w, http.StatusBadRequest, "Email required")
		return
	}

	deals, err := s.Storage.FindDealsByEmail(ctx, email)
	if err != nil {
		logger.Error("Failed to load deals for analytics", map[string]interface{}{
			"error": err.Error(),
			"email": email,
		})
		writeErrorResponse(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	writeJSON(w, http.StatusOK, analytics.Summarize(deals))
}
