package handlers

import (
	"encoding/json"
	"net/http"

	"creatorrate.app/cloud/internal/rates"
)

func (s *Server) SuggestRate(w http.ResponseWriter, r *http.Request) {
	var req rates.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	quote, err := rates.Suggest(req)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, quote)
}
