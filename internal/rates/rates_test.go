package rates

import "testing"

func TestSuggest(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		suggested int64
	}{
		{
			name:      "instagram post baseline engagement",
			req:       Request{Platform: "instagram", Followers: 20000, EngagementRate: 2.5, Deliverable: "post"},
			suggested: 20000,
		},
		{
			name:      "youtube video exceptional engagement",
			req:       Request{Platform: "youtube", Followers: 10000, EngagementRate: 7.0, Deliverable: "video"},
			suggested: 48000,
		},
		{
			name:      "tiktok story low engagement",
			req:       Request{Platform: "tiktok", Followers: 100000, EngagementRate: 0.5, Deliverable: "story"},
			suggested: 30000,
		},
		{
			name:      "twitch livestream strong engagement",
			req:       Request{Platform: "twitch", Followers: 5000, EngagementRate: 4.0, Deliverable: "livestream"},
			suggested: 10080,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := Suggest(tc.req)
			if err != nil {
				t.Fatalf("Suggest failed: %v", err)
			}
			if quote.SuggestedCents != tc.suggested {
				t.Errorf("Expected suggested %d, got %d", tc.suggested, quote.SuggestedCents)
			}
			if quote.LowCents >= quote.SuggestedCents || quote.HighCents <= quote.SuggestedCents {
				t.Errorf("Band out of order: %+v", quote)
			}
			if quote.Currency != "USD" {
				t.Errorf("Expected USD, got %s", quote.Currency)
			}
		})
	}
}

func TestSuggest_Deterministic(t *testing.T) {
	req := Request{Platform: "instagram", Followers: 54321, EngagementRate: 3.3, Deliverable: "reel"}

	first, err := Suggest(req)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	second, _ := Suggest(req)
	if *first != *second {
		t.Errorf("Same input produced different quotes: %+v vs %+v", first, second)
	}
}

func TestSuggest_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"unknown platform", Request{Platform: "myspace", Followers: 1000, EngagementRate: 2, Deliverable: "post"}},
		{"unknown deliverable", Request{Platform: "instagram", Followers: 1000, EngagementRate: 2, Deliverable: "skywriting"}},
		{"zero followers", Request{Platform: "instagram", Followers: 0, EngagementRate: 2, Deliverable: "post"}},
		{"negative followers", Request{Platform: "instagram", Followers: -5, EngagementRate: 2, Deliverable: "post"}},
		{"engagement above 100", Request{Platform: "instagram", Followers: 1000, EngagementRate: 250, Deliverable: "post"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Suggest(tc.req); err == nil {
				t.Errorf("Expected error for %+v", tc.req)
			}
		})
	}
}

func TestEngagementMultiplierBands(t *testing.T) {
	bands := []struct {
		rate float64
		want float64
	}{
		{0.0, 0.8},
		{0.99, 0.8},
		{1.0, 1.0},
		{2.99, 1.0},
		{3.0, 1.2},
		{5.99, 1.2},
		{6.0, 1.5},
		{100, 1.5},
	}

	for _, band := range bands {
		if got := engagementMultiplier(band.rate); got != band.want {
			t.Errorf("engagementMultiplier(%v) = %v, want %v", band.rate, got, band.want)
		}
	}
}
