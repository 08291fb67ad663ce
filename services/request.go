package services

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"studenttrip/planner"
)

const (
	dateLayout   = "2006-01-02"
	maxTravelers = 10
)

type PlanRequest struct {
	Origin               string                      `json:"origin"`
	Destination          string                      `json:"destination"`
	StartDate            string                      `json:"start_date"`
	EndDate              string                      `json:"end_date"`
	Budget               int                         `json:"budget"`
	Travelers            int                         `json:"travelers"`
	TravelStyle          planner.TravelStyle         `json:"travel_style"`
	Interests            []planner.Interest          `json:"interests"`
	TransportPreferences []planner.TransportMode     `json:"transport_preferences"`
	AccommodationTypes   []planner.AccommodationType `json:"accommodation_types"`
	Dietary              []string                    `json:"dietary"`
	Accessibility        bool                        `json:"accessibility"`
	StudentID            bool                        `json:"student_id"`
}

// ValidationError reports a request field that breaks a planning precondition.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Trip is a validated PlanRequest with the derived values filled in.
type Trip struct {
	PlanRequest
	Start  time.Time
	End    time.Time
	Days   int
	PerDay int
}

// Validate enforces the caller-side preconditions: non-empty places, an end
// date after the start date, at least one interest and a positive budget.
func (r PlanRequest) Validate() (Trip, error) {
	r.Origin = displayName(r.Origin)
	r.Destination = displayName(r.Destination)

	if r.Origin == "" {
		return Trip{}, &ValidationError{"origin", "please enter a departure city"}
	}
	if r.Destination == "" {
		return Trip{}, &ValidationError{"destination", "please enter a destination city"}
	}

	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return Trip{}, &ValidationError{"start_date", "invalid date format, use YYYY-MM-DD"}
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return Trip{}, &ValidationError{"end_date", "invalid date format, use YYYY-MM-DD"}
	}
	if !end.After(start) {
		return Trip{}, &ValidationError{"end_date", "end date must be after start date"}
	}

	if len(r.Interests) == 0 {
		return Trip{}, &ValidationError{"interests", "please select at least one interest"}
	}
	if r.Budget <= 0 {
		return Trip{}, &ValidationError{"budget", "budget must be greater than zero"}
	}

	if r.Travelers <= 0 {
		r.Travelers = 1
	}
	if r.Travelers > maxTravelers {
		return Trip{}, &ValidationError{"travelers", fmt.Sprintf("at most %d travelers", maxTravelers)}
	}
	if r.TravelStyle == "" {
		r.TravelStyle = planner.Balanced
	}

	days := int(end.Sub(start).Hours() / 24)
	return Trip{
		PlanRequest: r,
		Start:       start,
		End:         end,
		Days:        days,
		PerDay:      r.Budget / days,
	}, nil
}

// BudgetTier describes the daily budget the way the planner form does.
func BudgetTier(perDay int) string {
	switch {
	case perDay < 50:
		return "Very tight budget"
	case perDay < 100:
		return "Budget traveler"
	}
	return "Comfortable budget"
}

func displayName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return cases.Title(language.English, cases.NoLower).String(s)
}

func joinInterests(in []planner.Interest) string {
	parts := make([]string, len(in))
	for i, v := range in {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
