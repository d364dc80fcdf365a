package analytics

import (
	"sort"

	"creatorrate.app/cloud/models"
)

type MonthBucket struct {
	Month        string `json:"month"` // YYYY-MM
	RevenueCents int64  `json:"revenue_cents"`
	Deals        int    `json:"deals"`
}

type PlatformBucket struct {
	Platform     string `json:"platform"`
	RevenueCents int64  `json:"revenue_cents"`
	Deals        int    `json:"deals"`
}

type Summary struct {
	TotalRevenueCents int64            `json:"total_revenue_cents"`
	PaidDeals         int              `json:"paid_deals"`
	TotalDeals        int              `json:"total_deals"`
	ByMonth           []MonthBucket    `json:"by_month"`
	ByPlatform        []PlatformBucket `json:"by_platform"`
}

// Summarize groups a creator's deals into the chart buckets the dashboard
// renders. Revenue only counts deals that reached "paid"; monthly buckets
// use the deal's close date and are sorted chronologically.
func Summarize(deals []*models.Deal) Summary {
	summary := Summary{TotalDeals: len(deals)}

	byMonth := make(map[string]*MonthBucket)
	byPlatform := make(map[string]*PlatformBucket)

	for _, deal := range deals {
		if deal.Status != models.DealStatusPaid {
			continue
		}

		summary.PaidDeals++
		summary.TotalRevenueCents += deal.AmountCents

		closedAt := deal.ClosedAt
		if closedAt.IsZero() {
			closedAt = deal.UpdatedAt
		}
		month := closedAt.Format("2006-01")

		mb := byMonth[month]
		if mb == nil {
			mb = &MonthBucket{Month: month}
			byMonth[month] = mb
		}
		mb.RevenueCents += deal.AmountCents
		mb.Deals++

		pb := byPlatform[deal.Platform]
		if pb == nil {
			pb = &PlatformBucket{Platform: deal.Platform}
			byPlatform[deal.Platform] = pb
		}
		pb.RevenueCents += deal.AmountCents
		pb.Deals++
	}

	for _, mb := range byMonth {
		summary.ByMonth = append(summary.ByMonth, *mb)
	}
	sort.Slice(summary.ByMonth, func(i, j int) bool {
		return summary.ByMonth[i].Month < summary.ByMonth[j].Month
	})

	for _, pb := range byPlatform {
		summary.ByPlatform = append(summary.ByPlatform, *pb)
	}
	sort.Slice(summary.ByPlatform, func(i, j int) bool {
		return summary.ByPlatform[i].RevenueCents > summary.ByPlatform[j].RevenueCents
	})

	return summary
}
