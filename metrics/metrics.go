package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlansGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "travelplanner",
		Name:      "plans_generated_total",
		Help:      "Travel plans generated.",
	})

	SectionSource = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "travelplanner",
		Name:      "section_source_total",
		Help:      "Plan sections by where their text came from (ai or fallback).",
	}, []string{"section", "source"})

	LLMRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "travelplanner",
		Name:      "llm_request_duration_seconds",
		Help:      "Latency of text generation calls.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
	}, []string{"provider", "outcome"})
)
