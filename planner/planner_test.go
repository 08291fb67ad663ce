package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed draws so tests can force specific prices.
type scriptedRand struct {
	vals []int
	pos  int
}

func (s *scriptedRand) IntN(n int) int {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v % n
}

func TestDrawPrice_StaysInRange(t *testing.T) {
	r := NewSeededRandomizer(42)
	p := PriceRange{Min: 30, Max: 100}
	for i := 0; i < 1000; i++ {
		assert.True(t, p.Contains(DrawPrice(r, p)))
	}

	assert.Equal(t, 30, DrawPrice(&scriptedRand{vals: []int{0}}, p))
	assert.Equal(t, 100, DrawPrice(&scriptedRand{vals: []int{70}}, p))
	assert.Equal(t, 7, DrawPrice(r, PriceRange{Min: 7, Max: 7}))
}

func TestSeededRandomizer_Reproducible(t *testing.T) {
	a := SelectTransportation(NewSeededRandomizer(7), "NYC", "Paris", []TransportMode{Train, Bus, Rideshare}, 900)
	b := SelectTransportation(NewSeededRandomizer(7), "NYC", "Paris", []TransportMode{Train, Bus, Rideshare}, 900)
	assert.Equal(t, a, b)
}

func TestParse_AcceptsFormLabels(t *testing.T) {
	i, err := ParseInterest("🍕 Food")
	require.NoError(t, err)
	assert.Equal(t, Food, i)

	i, err = ParseInterest("museums")
	require.NoError(t, err)
	assert.Equal(t, Museums, i)

	a, err := ParseAccommodationType("Budget Hotels")
	require.NoError(t, err)
	assert.Equal(t, BudgetHotel, a)

	a, err = ParseAccommodationType("Student Dorms")
	require.NoError(t, err)
	assert.Equal(t, StudentDorm, a)

	s, err := ParseTravelStyle("⚖️ Balanced Explorer")
	require.NoError(t, err)
	assert.Equal(t, Balanced, s)

	m, err := ParseTransportMode("Rideshare")
	require.NoError(t, err)
	assert.Equal(t, Rideshare, m)
}

func TestParse_UnknownCategory(t *testing.T) {
	_, err := ParseInterest("Skydiving")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = ParseTransportMode("Teleport")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = ParseAccommodationType("Castle")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = ParseTravelStyle("Luxury")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	var m TransportMode
	assert.ErrorIs(t, m.UnmarshalText([]byte("Boat")), ErrUnknownCategory)
	require.NoError(t, m.UnmarshalText([]byte("train")))
	assert.Equal(t, Train, m)
}

func TestActivities_ReturnsCopy(t *testing.T) {
	acts := Activities(Food)
	require.Len(t, acts, 2)
	acts[0].Cost = 999
	assert.Equal(t, 15, Activities(Food)[0].Cost)
	assert.Nil(t, Activities(Sports))
}

// ─── Transportation ───────────────────────────────────────────────────────────

func TestSelectTransportation_BusOnly(t *testing.T) {
	opts := SelectTransportation(NewSeededRandomizer(1), "Berlin", "Prague", []TransportMode{Bus}, 400)
	require.Len(t, opts, 1)
	assert.Equal(t, Bus, opts[0].Mode)
	assert.True(t, opts[0].Recommended)
	assert.GreaterOrEqual(t, opts[0].Price, 30)
	assert.LessOrEqual(t, opts[0].Price, 100)
}

func TestSelectTransportation_FlightAddedAboveThreshold(t *testing.T) {
	r := NewSeededRandomizer(3)

	assert.Empty(t, SelectTransportation(r, "A", "B", nil, 500))

	opts := SelectTransportation(r, "A", "B", nil, 501)
	require.Len(t, opts, 1)
	assert.Equal(t, Flight, opts[0].Mode)
	assert.True(t, opts[0].Recommended)
	assert.Equal(t, "Direct flight from A to B", opts[0].Details)

	opts = SelectTransportation(r, "A", "B", []TransportMode{Flight}, 100)
	require.Len(t, opts, 1)
	assert.Equal(t, Flight, opts[0].Mode)
}

func TestSelectTransportation_SortedAndInRange(t *testing.T) {
	all := []TransportMode{Flight, Train, Bus, Rideshare}
	for seed := uint64(0); seed < 50; seed++ {
		opts := SelectTransportation(NewSeededRandomizer(seed), "A", "B", all, 300)
		require.Len(t, opts, 4)
		for i, o := range opts {
			pr, ok := TransportPriceRange(o.Mode)
			require.True(t, ok)
			assert.True(t, pr.Contains(o.Price), "%s price %d outside %v", o.Mode, o.Price, pr)
			if i > 0 {
				assert.LessOrEqual(t, opts[i-1].Price, o.Price)
			}
		}
	}
}

func TestSelectTransportation_StableOnTies(t *testing.T) {
	// Train 80+0, Bus 30+50, Rideshare 20+60: all priced 80.
	r := &scriptedRand{vals: []int{0, 50, 60}}
	opts := SelectTransportation(r, "A", "B", []TransportMode{Rideshare, Bus, Train}, 100)
	require.Len(t, opts, 3)
	for _, o := range opts {
		assert.Equal(t, 80, o.Price)
	}
	assert.Equal(t, []TransportMode{Train, Bus, Rideshare}, []TransportMode{opts[0].Mode, opts[1].Mode, opts[2].Mode})
}

func TestTransportRecommended_Boundaries(t *testing.T) {
	cases := []struct {
		mode   TransportMode
		budget int
		want   bool
	}{
		{Flight, 100, true},
		{Train, 5000, true},
		{Bus, 499, true},
		{Bus, 500, false},
		{Bus, 501, false},
		{Rideshare, 299, true},
		{Rideshare, 300, false},
		{Rideshare, 301, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TransportRecommended(tc.mode, tc.budget), "%s at %d", tc.mode, tc.budget)
	}

	opts := SelectTransportation(NewSeededRandomizer(9), "A", "B", []TransportMode{Bus, Rideshare}, 500)
	for _, o := range opts {
		assert.Equal(t, TransportRecommended(o.Mode, 500), o.Recommended)
	}
}

// ─── Accommodation ────────────────────────────────────────────────────────────

func TestSelectAccommodation_HostelAndDorm(t *testing.T) {
	opts := SelectAccommodation(NewSeededRandomizer(5), "Lisbon", 4, []AccommodationType{Hostel, StudentDorm}, 450, Balanced)
	require.Len(t, opts, 2)
	assert.LessOrEqual(t, opts[0].PricePerNight, opts[1].PricePerNight)
	for _, o := range opts {
		assert.True(t, o.Recommended, "%s should be recommended", o.Type)
		pr, _ := AccommodationPriceRange(o.Type)
		assert.True(t, pr.Contains(o.PricePerNight))
	}

	names := map[AccommodationType]string{}
	for _, o := range opts {
		names[o.Type] = o.Name
	}
	assert.Equal(t, "Lisbon Central Hostel", names[Hostel])
	assert.Equal(t, "Lisbon University Dorm", names[StudentDorm])
}

func TestSelectAccommodation_DurationDoesNotChangeOptions(t *testing.T) {
	types := []AccommodationType{Airbnb, BudgetHotel}
	a := SelectAccommodation(NewSeededRandomizer(11), "Rome", 1, types, 800, ComfortSeeker)
	b := SelectAccommodation(NewSeededRandomizer(11), "Rome", 12, types, 800, ComfortSeeker)
	assert.Equal(t, a, b)
	assert.Equal(t, a[0].PricePerNight*12, a[0].StayCost(12))
}

func TestSelectAccommodation_StableOnTies(t *testing.T) {
	// Hostel 15+20, Airbnb 35+0: both 35.
	r := &scriptedRand{vals: []int{20, 0}}
	opts := SelectAccommodation(r, "Oslo", 2, []AccommodationType{Airbnb, Hostel}, 300, BudgetBackpacker)
	require.Len(t, opts, 2)
	assert.Equal(t, Hostel, opts[0].Type)
	assert.Equal(t, Airbnb, opts[1].Type)
}

func TestAccommodationRecommended_Table(t *testing.T) {
	styles := []TravelStyle{BudgetBackpacker, Balanced, ComfortSeeker}
	for _, budget := range []int{499, 500, 501} {
		for _, st := range styles {
			assert.True(t, AccommodationRecommended(Hostel, budget, st))
			assert.Equal(t, st == Balanced || st == ComfortSeeker, AccommodationRecommended(BudgetHotel, budget, st))
			assert.Equal(t, budget < 500, AccommodationRecommended(StudentDorm, budget, st))
			assert.Equal(t, st == Balanced, AccommodationRecommended(Airbnb, budget, st))
		}
	}
}

func TestSelectAccommodation_EmptyTypes(t *testing.T) {
	assert.Empty(t, SelectAccommodation(NewSeededRandomizer(1), "X", 3, nil, 1000, Balanced))
}

// ─── Itinerary ────────────────────────────────────────────────────────────────

func TestBuildItinerary_DayCount(t *testing.T) {
	for _, d := range []int{1, 3, 7, 8, 30} {
		it, err := BuildItinerary(NewSeededRandomizer(uint64(d)), "Paris", d, []Interest{Culture, Food}, 60)
		require.NoError(t, err)
		assert.Len(t, it.Days, min(d, MaxItineraryDays))
		for i, day := range it.Days {
			assert.Equal(t, i+1, day.Day)
		}
	}
}

func TestBuildItinerary_InvalidDuration(t *testing.T) {
	for _, d := range []int{0, -1} {
		it, err := BuildItinerary(NewSeededRandomizer(1), "Paris", d, []Interest{Food}, 50)
		assert.ErrorIs(t, err, ErrInvalidDuration)
		assert.Empty(t, it.Days)
	}
}

func TestBuildItinerary_DailyTotalIsExactSum(t *testing.T) {
	all := []Interest{Museums, Food, Nature, Culture, Adventure, Nightlife, History}
	for seed := uint64(0); seed < 30; seed++ {
		it, err := BuildItinerary(NewSeededRandomizer(seed), "Tokyo", 10, all, 40)
		require.NoError(t, err)
		sum := 0
		for _, day := range it.Days {
			daySum := 0
			for _, a := range day.Activities {
				daySum += a.Cost
			}
			assert.Equal(t, daySum, day.DailyTotal)
			sum += daySum
		}
		assert.Equal(t, sum, it.Total())
	}
}

func TestBuildItinerary_FoodOnly(t *testing.T) {
	it, err := BuildItinerary(NewSeededRandomizer(99), "Bangkok", 3, []Interest{Food}, 50)
	require.NoError(t, err)
	require.Len(t, it.Days, 3)

	for _, day := range it.Days {
		require.Len(t, day.Activities, 4)
		morning, lunch, afternoon, dinner := day.Activities[0], day.Activities[1], day.Activities[2], day.Activities[3]

		assert.Equal(t, SlotMorning, morning.Slot)
		assert.Equal(t, Food, morning.Interest)
		assert.Contains(t, []int{15, 20}, morning.Cost)

		assert.Equal(t, SlotLunch, lunch.Slot)
		assert.Equal(t, LunchCost, lunch.Cost)

		assert.Equal(t, SlotAfternoon, afternoon.Slot)
		assert.Equal(t, Food, afternoon.Interest)
		assert.Contains(t, []int{15, 20}, afternoon.Cost)

		assert.Equal(t, SlotEvening, dinner.Slot)
		assert.Equal(t, DinnerCost, dinner.Cost)

		assert.Equal(t, morning.Cost+LunchCost+afternoon.Cost+DinnerCost, day.DailyTotal)
		assert.Contains(t, day.Title, "Bangkok")
	}
}

func TestBuildItinerary_AfternoonDiffersWithSeveralInterests(t *testing.T) {
	for seed := uint64(0); seed < 40; seed++ {
		it, err := BuildItinerary(NewSeededRandomizer(seed), "Cusco", 7, []Interest{Nature, Adventure, Culture}, 80)
		require.NoError(t, err)
		for _, day := range it.Days {
			assert.NotEqual(t, day.Activities[0].Interest, day.Activities[2].Interest)
		}
	}
}

func TestBuildItinerary_EmptyInterestsDefaultsToCulture(t *testing.T) {
	it, err := BuildItinerary(NewSeededRandomizer(2), "Vienna", 2, nil, 30)
	require.NoError(t, err)
	for _, day := range it.Days {
		assert.Equal(t, DefaultInterest, day.Activities[0].Interest)
		assert.Equal(t, DefaultInterest, day.Activities[2].Interest)
		assert.Contains(t, []int{5, 10}, day.Activities[0].Cost)
	}
}

func TestBuildItinerary_InterestWithoutTemplatesUsesSightseeing(t *testing.T) {
	it, err := BuildItinerary(NewSeededRandomizer(4), "Madrid", 1, []Interest{Shopping}, 30)
	require.NoError(t, err)
	day := it.Days[0]
	assert.Equal(t, FallbackActivity.Label, day.Activities[0].Label)
	assert.Equal(t, FallbackActivity.Cost, day.Activities[0].Cost)
	assert.Equal(t, FallbackActivity.Label, day.Activities[2].Label)
	assert.Equal(t, 10+LunchCost+10+DinnerCost, day.DailyTotal)
}

func TestItinerary_OverBudgetDays(t *testing.T) {
	// Adventure draws are 18 or 25, so every day costs at least 18+10+18+15.
	it, err := BuildItinerary(NewSeededRandomizer(8), "Queenstown", 3, []Interest{Adventure}, 50)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, it.OverBudgetDays())

	it.BudgetPerDay = 1000
	assert.Empty(t, it.OverBudgetDays())
}

// ─── Safety & cost ────────────────────────────────────────────────────────────

func TestSafetyTips_Deterministic(t *testing.T) {
	a := SafetyTips("Paris")
	b := SafetyTips("Paris")
	assert.Equal(t, a, b)
	require.Len(t, a.Categories, 4)
	assert.Equal(t, "General Safety", a.Categories[0].Label)
	assert.Contains(t, a.Title, "Paris")

	c := SafetyTips("Lima")
	assert.Equal(t, a.Categories, c.Categories)

	a.Categories[0].Tips[0] = "mutated"
	assert.NotEqual(t, "mutated", SafetyTips("Paris").Categories[0].Tips[0])
}

func TestTotalCostAndClassify(t *testing.T) {
	assert.Equal(t, 100+30*4+200, TotalCost(100, 30, 4, 200))
	assert.Equal(t, UnderBudget, ClassifyBudget(499, 500))
	assert.Equal(t, AtBudget, ClassifyBudget(500, 500))
	assert.Equal(t, OverBudget, ClassifyBudget(501, 500))
}
