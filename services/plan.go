package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"studenttrip/logger"
	"studenttrip/metrics"
	"studenttrip/planner"
)

const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// ─── Models ───────────────────────────────────────────────────────────────────

type Section struct {
	Content string `json:"content"`
	Source  string `json:"source"`
}

type PlanMeta struct {
	Origin        string              `json:"origin"`
	Destination   string              `json:"destination"`
	StartDate     string              `json:"start_date"`
	EndDate       string              `json:"end_date"`
	Days          int                 `json:"days"`
	Budget        int                 `json:"budget"`
	PerDay        int                 `json:"per_day"`
	BudgetTier    string              `json:"budget_tier"`
	Travelers     int                 `json:"travelers"`
	Style         planner.TravelStyle `json:"style"`
	Interests     []planner.Interest  `json:"interests"`
	Dietary       []string            `json:"dietary,omitempty"`
	StudentID     bool                `json:"student_id"`
	Accessibility bool                `json:"accessibility"`
}

type CostSummary struct {
	Transport             int                  `json:"transport"`
	AccommodationPerNight int                  `json:"accommodation_per_night"`
	Nights                int                  `json:"nights"`
	Accommodation         int                  `json:"accommodation"`
	Activities            int                  `json:"activities"`
	Total                 int                  `json:"total"`
	Budget                int                  `json:"budget"`
	Status                planner.BudgetStatus `json:"status"`
}

type PlanOptions struct {
	Transport     []planner.TransportOption     `json:"transport"`
	Accommodation []planner.AccommodationOption `json:"accommodation"`
	Itinerary     planner.Itinerary             `json:"itinerary"`
	Safety        planner.SafetyGuide           `json:"safety"`
	Cost          CostSummary                   `json:"cost"`
}

type TravelPlan struct {
	ID              string      `json:"id"`
	GeneratedAt     time.Time   `json:"generated_at"`
	Meta            PlanMeta    `json:"meta"`
	Recommendations Section     `json:"recommendations"`
	Itinerary       Section     `json:"itinerary"`
	Safety          Section     `json:"safety"`
	Options         PlanOptions `json:"options"`
}

func (p TravelPlan) Section(kind SectionKind) Section {
	switch kind {
	case SectionRecommendations:
		return p.Recommendations
	case SectionItinerary:
		return p.Itinerary
	case SectionSafety:
		return p.Safety
	}
	return Section{}
}

// PlanStore is where finished plans go; store.Store satisfies it.
type PlanStore interface {
	SavePlan(id string, plan TravelPlan)
	GetPlan(id string) (TravelPlan, error)
	SaveExport(id, format string, data []byte) error
	GetExport(id, format string) ([]byte, bool)
}

// ─── Planner ──────────────────────────────────────────────────────────────────

type Planner struct {
	gen     TextGenerator
	store   PlanStore
	rand    planner.Randomizer
	timeout time.Duration
	now     func() time.Time
}

type Option func(*Planner)

func WithRandomizer(r planner.Randomizer) Option {
	return func(p *Planner) { p.rand = r }
}

func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

func NewPlanner(gen TextGenerator, store PlanStore, sectionTimeout time.Duration, opts ...Option) *Planner {
	if gen == nil {
		gen = unavailable{reason: "no provider configured"}
	}
	p := &Planner{
		gen:     gen,
		store:   store,
		rand:    planner.DefaultRandomizer(),
		timeout: sectionTimeout,
		now:     time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *Planner) Store() PlanStore {
	return p.store
}

// Generate validates req, fills the three text sections (generated text when
// available, static fallback otherwise), computes the structured options and
// saves the plan.
func (p *Planner) Generate(ctx context.Context, req PlanRequest) (TravelPlan, error) {
	trip, err := req.Validate()
	if err != nil {
		return TravelPlan{}, err
	}

	options, err := p.BuildOptions(trip)
	if err != nil {
		return TravelPlan{}, err
	}

	plan := TravelPlan{
		ID:          uuid.New().String(),
		GeneratedAt: p.now().UTC(),
		Meta: PlanMeta{
			Origin:        trip.Origin,
			Destination:   trip.Destination,
			StartDate:     trip.Start.Format(dateLayout),
			EndDate:       trip.End.Format(dateLayout),
			Days:          trip.Days,
			Budget:        trip.Budget,
			PerDay:        trip.PerDay,
			BudgetTier:    BudgetTier(trip.PerDay),
			Travelers:     trip.Travelers,
			Style:         trip.TravelStyle,
			Interests:     trip.Interests,
			Dietary:       trip.Dietary,
			StudentID:     trip.StudentID,
			Accessibility: trip.Accessibility,
		},
		Options: options,
	}

	for _, kind := range sectionOrder {
		section := p.section(ctx, kind, trip)
		switch kind {
		case SectionRecommendations:
			plan.Recommendations = section
		case SectionItinerary:
			plan.Itinerary = section
		case SectionSafety:
			plan.Safety = section
		}
	}

	if p.store != nil {
		p.store.SavePlan(plan.ID, plan)
	}
	metrics.PlansGenerated.Inc()
	logger.L().Info("Travel plan generated",
		zap.String("plan_id", plan.ID),
		zap.String("destination", trip.Destination),
		zap.Int("days", trip.Days),
		zap.String("recommendations", plan.Recommendations.Source),
		zap.String("itinerary", plan.Itinerary.Source),
		zap.String("safety", plan.Safety.Source),
	)
	return plan, nil
}

// BuildOptions runs the local synthesizer for a validated trip.
func (p *Planner) BuildOptions(trip Trip) (PlanOptions, error) {
	transport := planner.SelectTransportation(p.rand, trip.Origin, trip.Destination, trip.TransportPreferences, trip.Budget)
	stays := planner.SelectAccommodation(p.rand, trip.Destination, trip.Days, trip.AccommodationTypes, trip.Budget, trip.TravelStyle)
	itinerary, err := planner.BuildItinerary(p.rand, trip.Destination, trip.Days, trip.Interests, trip.PerDay)
	if err != nil {
		return PlanOptions{}, err
	}

	return PlanOptions{
		Transport:     transport,
		Accommodation: stays,
		Itinerary:     itinerary,
		Safety:        planner.SafetyTips(trip.Destination),
		Cost:          summarizeCost(transport, stays, itinerary, trip.Days, trip.Budget),
	}, nil
}

// summarizeCost prices the cheapest transport and stay alongside the
// itinerary. Both option lists are already sorted by price.
func summarizeCost(transport []planner.TransportOption, stays []planner.AccommodationOption, it planner.Itinerary, nights, budget int) CostSummary {
	c := CostSummary{Nights: nights, Activities: it.Total(), Budget: budget}
	if len(transport) > 0 {
		c.Transport = transport[0].Price
	}
	if len(stays) > 0 {
		c.AccommodationPerNight = stays[0].PricePerNight
		c.Accommodation = stays[0].StayCost(nights)
	}
	c.Total = planner.TotalCost(c.Transport, c.AccommodationPerNight, nights, c.Activities)
	c.Status = planner.ClassifyBudget(c.Total, budget)
	return c
}

func (p *Planner) section(ctx context.Context, kind SectionKind, trip Trip) Section {
	callCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	text, err := p.gen.Generate(callCtx, buildPrompt(kind, trip))
	if err == nil && text != "" {
		metrics.SectionSource.WithLabelValues(string(kind), SourceAI).Inc()
		return Section{Content: text, Source: SourceAI}
	}

	if err != nil {
		logger.L().Warn("Text generation failed, using fallback",
			zap.String("section", string(kind)), zap.Error(err))
	}
	metrics.SectionSource.WithLabelValues(string(kind), SourceFallback).Inc()
	return Section{
		Content: FallbackContent(kind, trip.Destination, trip.Days, trip.Budget),
		Source:  SourceFallback,
	}
}
