package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// GeneratePDFBytes renders the structured part of a plan into a PDF and
// returns the raw bytes.
func GeneratePDFBytes(p TravelPlan) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8, fmt.Sprintf("Student Travel Planner - page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(30, 136, 229)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(170, 10, "Student Travel Planner", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, latin(fmt.Sprintf("%s to %s", p.Meta.Origin, p.Meta.Destination)), "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Disclaimer ───────────────────────────────────────────
	pdf.SetFillColor(227, 242, 253)
	pdf.SetTextColor(21, 101, 192)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(170, 4, "Prices are randomized estimates for planning only. This is NOT a booking confirmation.", "", "C", true)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// ── Section Helper ───────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(30, 136, 229)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, latin(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, latin(value), "", 1, "L", false, 0, "")
	}

	m := p.Meta

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	row("Route", fmt.Sprintf("%s -> %s", m.Origin, m.Destination))
	row("Dates", fmt.Sprintf("%s to %s", fmtDateReadable(m.StartDate), fmtDateReadable(m.EndDate)))
	row("Duration", fmt.Sprintf("%d days", m.Days))
	row("Budget", fmt.Sprintf("$%d total ($%d/day, %s)", m.Budget, m.PerDay, m.BudgetTier))
	row("Travelers", fmt.Sprintf("%d", m.Travelers))
	row("Style", string(m.Style))
	row("Interests", joinInterests(m.Interests))
	row("Generated", p.GeneratedAt.Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Transportation ───────────────────────────────────────
	sectionHeader("Transportation")
	if len(p.Options.Transport) == 0 {
		row("Options", "None selected")
	}
	for _, t := range p.Options.Transport {
		row(t.Label+recommendedMark(t.Recommended), fmt.Sprintf("$%d  |  %s  |  %s", t.Price, t.Duration, t.StudentDiscount))
	}
	pdf.Ln(4)

	// ── Accommodation ────────────────────────────────────────
	sectionHeader("Accommodation")
	if len(p.Options.Accommodation) == 0 {
		row("Options", "None selected")
	}
	for _, a := range p.Options.Accommodation {
		row(a.Name+recommendedMark(a.Recommended), fmt.Sprintf("$%d/night  |  %s  |  %d/5", a.PricePerNight, a.Location, a.Rating))
	}
	pdf.Ln(4)

	// ── Itinerary ────────────────────────────────────────────
	sectionHeader("Daily Itinerary")
	for _, day := range p.Options.Itinerary.Days {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(170, 7, latin(fmt.Sprintf("%s  (total $%d)", day.Title, day.DailyTotal)), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, a := range day.Activities {
			pdf.CellFormat(25, 5, a.Time, "", 0, "L", false, 0, "")
			pdf.CellFormat(125, 5, latin(a.Label), "", 0, "L", false, 0, "")
			pdf.CellFormat(20, 5, fmt.Sprintf("$%d", a.Cost), "", 1, "R", false, 0, "")
		}
		pdf.Ln(2)
	}
	pdf.Ln(2)

	// ── Cost Summary ──────────────────────────────────────────
	c := p.Options.Cost
	sectionHeader("Cost Estimate")
	row("Transport", fmt.Sprintf("$%d", c.Transport))
	row("Accommodation", fmt.Sprintf("$%d/night x %d nights = $%d", c.AccommodationPerNight, c.Nights, c.Accommodation))
	row("Activities", fmt.Sprintf("$%d", c.Activities))

	pdf.SetFillColor(212, 168, 67)
	pdf.SetTextColor(13, 24, 37)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL ESTIMATE", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, fmt.Sprintf("$%d (%s budget of $%d)", c.Total, c.Status, c.Budget), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// ── Safety ────────────────────────────────────────────────
	sectionHeader(latin(p.Options.Safety.Title))
	for _, cat := range p.Options.Safety.Categories {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(170, 6, latin(cat.Label), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, tip := range cat.Tips {
			pdf.MultiCell(170, 5, latin("- "+tip), "", "L", false)
		}
		pdf.Ln(1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func recommendedMark(ok bool) string {
	if ok {
		return " *"
	}
	return ""
}

func fmtDateReadable(iso string) string {
	t, err := time.Parse(dateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}

// latin drops runes the core PDF fonts cannot draw (icons, arrows).
func latin(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
