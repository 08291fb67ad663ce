package planner

import (
	"errors"
	"fmt"
)

// MaxItineraryDays caps the plan no matter how long the trip is.
const MaxItineraryDays = 7

const (
	LunchCost  = 10
	DinnerCost = 15
)

var ErrInvalidDuration = errors.New("trip duration must be at least one day")

// Slot names the part of the day an activity fills.
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotLunch     Slot = "lunch"
	SlotAfternoon Slot = "afternoon"
	SlotEvening   Slot = "evening"
)

type Activity struct {
	Slot     Slot     `json:"slot"`
	Time     string   `json:"time"`
	Label    string   `json:"label"`
	Cost     int      `json:"cost"`
	Icon     string   `json:"icon"`
	Interest Interest `json:"interest,omitempty"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
	DailyTotal int        `json:"daily_total"`
}

type Itinerary struct {
	Destination  string    `json:"destination"`
	BudgetPerDay int       `json:"budget_per_day"`
	Days         []DayPlan `json:"days"`
}

// Total is the sum of every day's total.
func (it Itinerary) Total() int {
	total := 0
	for _, d := range it.Days {
		total += d.DailyTotal
	}
	return total
}

// OverBudgetDays lists the day numbers whose total exceeds BudgetPerDay.
// The builder never enforces the per-day budget, it only reports it here.
func (it Itinerary) OverBudgetDays() []int {
	var days []int
	for _, d := range it.Days {
		if d.DailyTotal > it.BudgetPerDay {
			days = append(days, d.Day)
		}
	}
	return days
}

// BuildItinerary produces min(duration, MaxItineraryDays) days, each with a
// morning activity, lunch, an afternoon activity and an evening out.
func BuildItinerary(r Randomizer, destination string, duration int, interests []Interest, budgetPerDay int) (Itinerary, error) {
	if duration <= 0 {
		return Itinerary{}, fmt.Errorf("%w: got %d", ErrInvalidDuration, duration)
	}

	pool := uniqueInterests(interests)
	if len(pool) == 0 {
		pool = []Interest{DefaultInterest}
	}

	n := min(duration, MaxItineraryDays)
	it := Itinerary{
		Destination:  destination,
		BudgetPerDay: budgetPerDay,
		Days:         make([]DayPlan, 0, n),
	}

	for day := 1; day <= n; day++ {
		morning := pick(r, pool)
		afternoon := morning
		if len(pool) > 1 {
			afternoon = pick(r, without(pool, morning))
		}

		acts := []Activity{
			drawActivity(r, morning, SlotMorning, "9:00 AM"),
			{Slot: SlotLunch, Time: "12:30 PM", Label: "Lunch at Local Eatery", Cost: LunchCost, Icon: "🍴"},
			drawActivity(r, afternoon, SlotAfternoon, "2:00 PM"),
			{Slot: SlotEvening, Time: "7:00 PM", Label: "Dinner & Explore Night Scene", Cost: DinnerCost, Icon: "🌆"},
		}

		total := 0
		for _, a := range acts {
			total += a.Cost
		}

		it.Days = append(it.Days, DayPlan{
			Day:        day,
			Title:      fmt.Sprintf("Day %d - %s", day, destination),
			Activities: acts,
			DailyTotal: total,
		})
	}

	return it, nil
}

func drawActivity(r Randomizer, interest Interest, slot Slot, at string) Activity {
	tpl := FallbackActivity
	if templates := activityCatalog[interest]; len(templates) > 0 {
		tpl = pick(r, templates)
	}
	return Activity{
		Slot:     slot,
		Time:     at,
		Label:    tpl.Label,
		Cost:     tpl.Cost,
		Icon:     tpl.Icon,
		Interest: interest,
	}
}

func uniqueInterests(in []Interest) []Interest {
	seen := make(map[Interest]bool, len(in))
	out := make([]Interest, 0, len(in))
	for _, i := range in {
		if i == "" || seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	return out
}

func without(in []Interest, drop Interest) []Interest {
	out := make([]Interest, 0, len(in)-1)
	for _, i := range in {
		if i != drop {
			out = append(out, i)
		}
	}
	return out
}
