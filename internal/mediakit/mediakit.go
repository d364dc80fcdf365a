package mediakit

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"creatorrate.app/cloud/internal/analytics"
	"creatorrate.app/cloud/internal/rates"
	"github.com/go-pdf/fpdf"
)

// Kit is everything that goes onto a one-page media kit.
type Kit struct {
	Name        string
	Email       string
	Stats       analytics.Summary
	Quotes      []rates.Quote
	GeneratedAt time.Time
}

// Render produces the PDF bytes for a media kit.
func Render(kit Kit) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("CreatorRate Media Kit", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 12, kit.Name)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 8, kit.Email)
	pdf.Ln(12)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Collaboration Highlights")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Completed brand deals: %d", kit.Stats.PaidDeals))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Total sponsored revenue: %s", formatUSD(kit.Stats.TotalRevenueCents)))
	pdf.Ln(11)

	if len(kit.Stats.ByPlatform) > 0 {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 10, "Platforms")
		pdf.Ln(10)

		pdf.SetFont("Helvetica", "", 11)
		for _, bucket := range kit.Stats.ByPlatform {
			line := fmt.Sprintf("%s: %d deals, %s", titleCase(bucket.Platform), bucket.Deals, formatUSD(bucket.RevenueCents))
			pdf.Cell(0, 7, line)
			pdf.Ln(7)
		}
		pdf.Ln(4)
	}

	if len(kit.Quotes) > 0 {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 10, "Suggested Rates")
		pdf.Ln(10)

		pdf.SetFont("Helvetica", "", 11)
		for _, quote := range kit.Quotes {
			line := fmt.Sprintf("%s %s: %s - %s", titleCase(quote.Platform), quote.Deliverable,
				formatUSD(quote.LowCents), formatUSD(quote.HighCents))
			pdf.Cell(0, 7, line)
			pdf.Ln(7)
		}
	}

	pdf.SetY(-20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.Cell(0, 6, fmt.Sprintf("Generated by CreatorRate on %s", kit.GeneratedAt.Format("Jan 2, 2006")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render media kit: %w", err)
	}

	return buf.Bytes(), nil
}

func formatUSD(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100.0)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
