package handlers

import (
	"math"
	"net/http"
	"time"

	"creatorrate.app/cloud/internal/analytics"
	"creatorrate.app/cloud/internal/logger"
	"creatorrate.app/cloud/internal/mediakit"
	"creatorrate.app/cloud/internal/rates"
)

// MediaKit renders the creator's one-page PDF. This is the paid feature
// the subscription flag gates.
func (s *Server) MediaKit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := emailParam(r)
	if email == "" {
		writeErrorResponse(w, http.StatusBadRequest, "Email required")
		return
	}

	sub, err := s.Storage.FindSubscriptionByEmail(ctx, email)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}
	if sub == nil {
		writeErrorResponse(w, http.StatusNotFound, "Account not found")
		return
	}
	if !sub.IsPaid {
		writeErrorResponse(w, http.StatusPaymentRequired, "Media kits require an active subscription")
		return
	}

	deals, err := s.Storage.FindDealsByEmail(ctx, email)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	name := email
	if profile, err := s.Storage.FindLegalProfileByEmail(ctx, email); err == nil && profile != nil {
		name = profile.LegalName
	}

	stats := analytics.Summarize(deals)

	pdf, err := mediakit.Render(mediakit.Kit{
		Name:        name,
		Email:       email,
		Stats:       stats,
		Quotes:      historicalQuotes(stats),
		GeneratedAt: time.Now(),
	})
	if err != nil {
		logger.Error("Failed to render media kit", map[string]interface{}{
			"error": err.Error(),
			"email": email,
		})
		writeErrorResponse(w, http.StatusInternalServerError, "Could not generate media kit")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="media-kit.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// historicalQuotes derives a rate band per platform from what brands
// actually paid, so the kit reflects the creator's real market instead
// of the generic calculator.
func historicalQuotes(stats analytics.Summary) []rates.Quote {
	var quotes []rates.Quote
	for _, bucket := range stats.ByPlatform {
		if bucket.Deals == 0 {
			continue
		}
		avg := float64(bucket.RevenueCents) / float64(bucket.Deals)
		quotes = append(quotes, rates.Quote{
			Platform:       bucket.Platform,
			Deliverable:    "sponsored content",
			LowCents:       int64(math.Round(avg * 0.85)),
			SuggestedCents: int64(math.Round(avg)),
			HighCents:      int64(math.Round(avg * 1.2)),
			Currency:       "USD",
		})
	}
	return quotes
}
