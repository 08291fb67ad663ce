package planner

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnknownCategory is returned when a transport mode, accommodation type,
// interest or travel style name is not part of the catalog.
var ErrUnknownCategory = errors.New("unknown category")

// ─── Enums ────────────────────────────────────────────────────────────────────

type TransportMode string

const (
	Flight    TransportMode = "Flight"
	Train     TransportMode = "Train"
	Bus       TransportMode = "Bus"
	Rideshare TransportMode = "Rideshare"
)

type AccommodationType string

const (
	Hostel      AccommodationType = "Hostel"
	BudgetHotel AccommodationType = "Budget Hotel"
	StudentDorm AccommodationType = "Student Dorm"
	Airbnb      AccommodationType = "Airbnb"
)

type Interest string

const (
	Museums   Interest = "Museums"
	Food      Interest = "Food"
	Nature    Interest = "Nature"
	Culture   Interest = "Culture"
	Adventure Interest = "Adventure"
	Nightlife Interest = "Nightlife"
	History   Interest = "History"
	Shopping  Interest = "Shopping"
	Art       Interest = "Art"
	Sports    Interest = "Sports"
)

type TravelStyle string

const (
	BudgetBackpacker TravelStyle = "Budget Backpacker"
	Balanced         TravelStyle = "Balanced"
	ComfortSeeker    TravelStyle = "Comfort Seeker"
)

// DefaultInterest is used for every day when the caller supplies no interests.
const DefaultInterest = Culture

// ─── Parsing ──────────────────────────────────────────────────────────────────

var transportAliases = map[string]TransportMode{
	"flight": Flight, "flights": Flight, "plane": Flight,
	"train": Train, "trains": Train, "rail": Train,
	"bus": Bus, "buses": Bus, "coachbus": Bus, "coach": Bus,
	"rideshare": Rideshare, "carpool": Rideshare,
}

var accommodationAliases = map[string]AccommodationType{
	"hostel": Hostel, "hostels": Hostel,
	"budgethotel": BudgetHotel, "budgethotels": BudgetHotel,
	"studentdorm": StudentDorm, "studentdorms": StudentDorm,
	"airbnb": Airbnb,
}

var interestAliases = map[string]Interest{
	"museums": Museums, "museum": Museums,
	"food": Food,
	"nature": Nature,
	"culture": Culture,
	"adventure": Adventure,
	"nightlife": Nightlife,
	"history": History,
	"shopping": Shopping,
	"art": Art,
	"sports": Sports, "sport": Sports,
}

var styleAliases = map[string]TravelStyle{
	"budgetbackpacker": BudgetBackpacker, "backpacker": BudgetBackpacker,
	"balanced": Balanced, "balancedexplorer": Balanced,
	"comfortseeker": ComfortSeeker, "comfort": ComfortSeeker,
}

// normalizeKey drops a leading icon (the form labels look like "🍕 Food"),
// then lowercases and strips separators.
func normalizeKey(s string) string {
	s = strings.TrimSpace(s)
	if fields := strings.SplitN(s, " ", 2); len(fields) == 2 && !hasLetter(fields[0]) {
		s = fields[1]
	}
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func ParseTransportMode(s string) (TransportMode, error) {
	if m, ok := transportAliases[normalizeKey(s)]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: transport mode %q", ErrUnknownCategory, s)
}

func ParseAccommodationType(s string) (AccommodationType, error) {
	if t, ok := accommodationAliases[normalizeKey(s)]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: accommodation type %q", ErrUnknownCategory, s)
}

func ParseInterest(s string) (Interest, error) {
	if i, ok := interestAliases[normalizeKey(s)]; ok {
		return i, nil
	}
	return "", fmt.Errorf("%w: interest %q", ErrUnknownCategory, s)
}

func ParseTravelStyle(s string) (TravelStyle, error) {
	if st, ok := styleAliases[normalizeKey(s)]; ok {
		return st, nil
	}
	return "", fmt.Errorf("%w: travel style %q", ErrUnknownCategory, s)
}

func (m *TransportMode) UnmarshalText(b []byte) error {
	v, err := ParseTransportMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (t *AccommodationType) UnmarshalText(b []byte) error {
	v, err := ParseAccommodationType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (i *Interest) UnmarshalText(b []byte) error {
	v, err := ParseInterest(string(b))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (s *TravelStyle) UnmarshalText(b []byte) error {
	v, err := ParseTravelStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ─── Catalog tables ───────────────────────────────────────────────────────────

type transportTemplate struct {
	label           string
	icon            string
	price           PriceRange
	duration        string
	rating          int
	details         string
	studentDiscount string
}

type accommodationTemplate struct {
	nameSuffix      string
	icon            string
	price           PriceRange
	location        string
	rating          int
	amenities       []string
	studentFriendly string
}

// ActivityTemplate is a catalog entry with a fixed cost.
type ActivityTemplate struct {
	Interest Interest `json:"interest"`
	Label    string   `json:"label"`
	Cost     int      `json:"cost"`
	Icon     string   `json:"icon"`
}

// FallbackActivity is drawn when an interest has no templates of its own.
var FallbackActivity = ActivityTemplate{Label: "Sightseeing", Cost: 10, Icon: "📍"}

var transportOrder = []TransportMode{Flight, Train, Bus, Rideshare}

var transportCatalog = map[TransportMode]transportTemplate{
	Flight: {
		label:           "Budget Airline",
		icon:            "✈️",
		price:           PriceRange{150, 400},
		duration:        "2-6 hours",
		rating:          4,
		details:         "Direct flight from %s to %s",
		studentDiscount: "15% off with student ID",
	},
	Train: {
		label:           "Train",
		icon:            "🚆",
		price:           PriceRange{80, 200},
		duration:        "6-12 hours",
		rating:          5,
		details:         "Scenic train route with WiFi",
		studentDiscount: "20% off with Eurail/Student pass",
	},
	Bus: {
		label:           "Coach Bus",
		icon:            "🚌",
		price:           PriceRange{30, 100},
		duration:        "8-15 hours",
		rating:          3,
		details:         "Overnight bus with reclining seats",
		studentDiscount: "10% off",
	},
	Rideshare: {
		label:           "Rideshare (BlaBlaCar)",
		icon:            "🚗",
		price:           PriceRange{20, 80},
		duration:        "Variable",
		rating:          4,
		details:         "Share ride with verified drivers",
		studentDiscount: "Student verification required",
	},
}

var accommodationOrder = []AccommodationType{Hostel, BudgetHotel, StudentDorm, Airbnb}

var accommodationCatalog = map[AccommodationType]accommodationTemplate{
	Hostel: {
		nameSuffix:      "Central Hostel",
		icon:            "🏨",
		price:           PriceRange{15, 35},
		location:        "City Center",
		rating:          4,
		amenities:       []string{"Free WiFi", "Kitchen", "Lounge", "Lockers"},
		studentFriendly: "Social atmosphere, meet other travelers, student discounts available",
	},
	BudgetHotel: {
		nameSuffix:      "Budget Inn",
		icon:            "🏩",
		price:           PriceRange{40, 70},
		location:        "Near Public Transport",
		rating:          4,
		amenities:       []string{"Free Breakfast", "WiFi", "Private Bath"},
		studentFriendly: "Clean, safe, and affordable with student rates",
	},
	StudentDorm: {
		nameSuffix:      "University Dorm",
		icon:            "🎓",
		price:           PriceRange{10, 25},
		location:        "University District",
		rating:          3,
		amenities:       []string{"Shared Kitchen", "Study Room", "Laundry"},
		studentFriendly: "Perfect for students, very affordable, educational environment",
	},
	Airbnb: {
		nameSuffix:      "Cozy Apartment",
		icon:            "🏠",
		price:           PriceRange{35, 90},
		location:        "Residential Area",
		rating:          5,
		amenities:       []string{"Full Kitchen", "WiFi", "Washer", "Local Experience"},
		studentFriendly: "Live like a local, great for groups, kitchen saves money on food",
	},
}

var activityCatalog = map[Interest][]ActivityTemplate{
	Museums: {
		{Museums, "Visit National Museum", 12, "🏛️"},
		{Museums, "Art Gallery Tour", 8, "🎨"},
	},
	Food: {
		{Food, "Local Street Food Tour", 15, "🍜"},
		{Food, "Traditional Restaurant Lunch", 20, "🍽️"},
	},
	Nature: {
		{Nature, "City Park & Gardens", 0, "🌳"},
		{Nature, "Hiking Trail", 5, "🥾"},
	},
	Culture: {
		{Culture, "Historic District Walking Tour", 10, "🏰"},
		{Culture, "Local Market Visit", 5, "🏪"},
	},
	Adventure: {
		{Adventure, "Bike Tour", 18, "🚴"},
		{Adventure, "Rock Climbing", 25, "🧗"},
	},
	Nightlife: {
		{Nightlife, "Student Bar Crawl", 20, "🍺"},
		{Nightlife, "Live Music Venue", 15, "🎵"},
	},
}

// TransportPriceRange reports the catalog range for a mode.
func TransportPriceRange(m TransportMode) (PriceRange, bool) {
	t, ok := transportCatalog[m]
	return t.price, ok
}

// AccommodationPriceRange reports the catalog nightly range for a type.
func AccommodationPriceRange(t AccommodationType) (PriceRange, bool) {
	a, ok := accommodationCatalog[t]
	return a.price, ok
}

// Activities returns a copy of the templates for an interest. An interest
// without templates yields nil.
func Activities(i Interest) []ActivityTemplate {
	src := activityCatalog[i]
	if len(src) == 0 {
		return nil
	}
	out := make([]ActivityTemplate, len(src))
	copy(out, src)
	return out
}
