package rates

import (
	"fmt"
	"math"
)

// Base sponsored-post CPM in cents per 1000 followers, before
// engagement and deliverable adjustments.
var platformBaseCPM = map[string]int64{
	"instagram": 1000,
	"tiktok":    750,
	"youtube":   2000,
	"twitch":    1200,
}

var deliverableFactor = map[string]float64{
	"post":        1.0,
	"story":       0.5,
	"reel":        1.3,
	"video":       1.6,
	"integration": 1.2,
	"livestream":  1.4,
}

type Request struct {
	Platform       string  `json:"platform"`
	Followers      int64   `json:"followers"`
	EngagementRate float64 `json:"engagement_rate"`
	Deliverable    string  `json:"deliverable"`
}

// Quote is a suggested price band in cents.
type Quote struct {
	Platform       string `json:"platform"`
	Deliverable    string `json:"deliverable"`
	LowCents       int64  `json:"low_cents"`
	SuggestedCents int64  `json:"suggested_cents"`
	HighCents      int64  `json:"high_cents"`
	Currency       string `json:"currency"`
}

func (r Request) validate() error {
	if _, ok := platformBaseCPM[r.Platform]; !ok {
		return fmt.Errorf("unknown platform %q", r.Platform)
	}
	if _, ok := deliverableFactor[r.Deliverable]; !ok {
		return fmt.Errorf("unknown deliverable %q", r.Deliverable)
	}
	if r.Followers <= 0 {
		return fmt.Errorf("followers must be positive")
	}
	if r.EngagementRate < 0 || r.EngagementRate > 100 {
		return fmt.Errorf("engagement_rate must be a percentage between 0 and 100")
	}
	return nil
}

// engagementMultiplier rewards audiences that actually interact. The
// bands follow common influencer-marketing benchmarks: under 1% is a
// discount, 1-3% is baseline, 3-6% is strong, above 6% is exceptional.
func engagementMultiplier(rate float64) float64 {
	switch {
	case rate < 1.0:
		return 0.8
	case rate < 3.0:
		return 1.0
	case rate < 6.0:
		return 1.2
	default:
		return 1.5
	}
}

// Suggest computes a deterministic sponsored-content price band.
func Suggest(req Request) (*Quote, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	base := float64(platformBaseCPM[req.Platform]) * float64(req.Followers) / 1000.0
	suggested := base * deliverableFactor[req.Deliverable] * engagementMultiplier(req.EngagementRate)

	return &Quote{
		Platform:       req.Platform,
		Deliverable:    req.Deliverable,
		LowCents:       int64(math.Round(suggested * 0.85)),
		SuggestedCents: int64(math.Round(suggested)),
		HighCents:      int64(math.Round(suggested * 1.2)),
		Currency:       "USD",
	}, nil
}

// Platforms returns the platforms a rate can be quoted for.
func Platforms() []string {
	return []string{"instagram", "tiktok", "youtube", "twitch"}
}
