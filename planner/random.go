package planner

import "math/rand/v2"

// Randomizer is the source every price and activity draw goes through.
// *rand.Rand from math/rand/v2 satisfies it, so tests can pass a seeded one.
type Randomizer interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultRandomizer returns the process-wide source. Safe for concurrent use.
func DefaultRandomizer() Randomizer {
	return globalSource{}
}

// NewSeededRandomizer returns a reproducible source.
func NewSeededRandomizer(seed uint64) Randomizer {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// PriceRange is an inclusive [Min, Max] bound in whole dollars.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v lies inside the range.
func (p PriceRange) Contains(v int) bool {
	return v >= p.Min && v <= p.Max
}

// DrawPrice returns a uniform integer in p, inclusive on both ends.
func DrawPrice(r Randomizer, p PriceRange) int {
	if p.Max <= p.Min {
		return p.Min
	}
	return p.Min + r.IntN(p.Max-p.Min+1)
}

func pick[T any](r Randomizer, items []T) T {
	return items[r.IntN(len(items))]
}
