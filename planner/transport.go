package planner

import (
	"fmt"
	"sort"
)

// FlightBudgetThreshold: budgets above this always get a flight option,
// requested or not.
const FlightBudgetThreshold = 500

type TransportOption struct {
	Mode            TransportMode `json:"mode"`
	Label           string        `json:"label"`
	Icon            string        `json:"icon"`
	Price           int           `json:"price"`
	PriceRange      PriceRange    `json:"price_range"`
	Duration        string        `json:"duration"`
	Rating          int           `json:"rating"`
	Details         string        `json:"details"`
	StudentDiscount string        `json:"student_discount"`
	Recommended     bool          `json:"recommended"`
}

// TransportRecommended is the per-mode recommendation rule for an option
// that has been included.
func TransportRecommended(m TransportMode, budget int) bool {
	switch m {
	case Flight, Train:
		return true
	case Bus:
		return budget < 500
	case Rideshare:
		return budget < 300
	}
	return false
}

// SelectTransportation builds one option per requested mode, plus a flight
// when the budget exceeds FlightBudgetThreshold, sorted by price ascending.
// The result is empty when nothing applies.
func SelectTransportation(r Randomizer, origin, destination string, prefs []TransportMode, budget int) []TransportOption {
	wanted := make(map[TransportMode]bool, len(prefs))
	for _, m := range prefs {
		wanted[m] = true
	}
	if budget > FlightBudgetThreshold {
		wanted[Flight] = true
	}

	options := make([]TransportOption, 0, len(wanted))
	for _, mode := range transportOrder {
		if !wanted[mode] {
			continue
		}
		tpl := transportCatalog[mode]
		details := tpl.details
		if mode == Flight {
			details = fmt.Sprintf(tpl.details, origin, destination)
		}
		options = append(options, TransportOption{
			Mode:            mode,
			Label:           tpl.label,
			Icon:            tpl.icon,
			Price:           DrawPrice(r, tpl.price),
			PriceRange:      tpl.price,
			Duration:        tpl.duration,
			Rating:          tpl.rating,
			Details:         details,
			StudentDiscount: tpl.studentDiscount,
			Recommended:     TransportRecommended(mode, budget),
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Price < options[j].Price
	})
	return options
}
