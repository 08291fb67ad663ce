package services

import (
	"fmt"
	"strings"
)

// RenderMarkdown lays out the whole plan as one downloadable document.
func RenderMarkdown(p TravelPlan) string {
	var b strings.Builder
	m := p.Meta

	fmt.Fprintf(&b, "# 🎒 Travel Plan: %s → %s\n", m.Origin, m.Destination)
	fmt.Fprintf(&b, "## Generated on %s\n\n---\n\n", p.GeneratedAt.Format(dateLayout))

	b.WriteString("# Overview\n")
	fmt.Fprintf(&b, "- **Duration:** %d days (%s to %s)\n", m.Days, m.StartDate, m.EndDate)
	fmt.Fprintf(&b, "- **Budget:** $%d total ($%d/day, %s)\n", m.Budget, m.PerDay, strings.ToLower(m.BudgetTier))
	fmt.Fprintf(&b, "- **Travelers:** %d\n", m.Travelers)
	fmt.Fprintf(&b, "- **Style:** %s\n", m.Style)
	fmt.Fprintf(&b, "- **Interests:** %s\n", joinInterests(m.Interests))
	if len(m.Dietary) > 0 {
		fmt.Fprintf(&b, "- **Dietary:** %s\n", strings.Join(m.Dietary, ", "))
	}

	c := p.Options.Cost
	fmt.Fprintf(&b, "- **Estimated cost:** $%d (%s budget)\n", c.Total, c.Status)

	for _, kind := range sectionOrder {
		b.WriteString("\n---\n\n")
		b.WriteString(strings.TrimSpace(p.Section(kind).Content))
		b.WriteString("\n")
	}

	return b.String()
}

// MarkdownFileName follows travel_plan_<destination>.md.
func MarkdownFileName(destination string) string {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(destination)), " ", "_")
	if name == "" {
		name = "trip"
	}
	return "travel_plan_" + name + ".md"
}
