package store

import (
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
)

var ErrPlanNotFound = errors.New("plan not found")

// Store keeps generated plans, and any rendered exports, in process memory
// for ttl. Nothing survives a restart.
type Store[T any] struct {
	plans   *cache.Cache
	exports *cache.Cache
}

func New[T any](ttl time.Duration) *Store[T] {
	cleanup := ttl / 2
	if cleanup < time.Minute {
		cleanup = time.Minute
	}
	return &Store[T]{
		plans:   cache.New(ttl, cleanup),
		exports: cache.New(ttl, cleanup),
	}
}

func (s *Store[T]) SavePlan(id string, plan T) {
	s.plans.SetDefault(id, plan)
}

func (s *Store[T]) GetPlan(id string) (T, error) {
	var zero T
	v, ok := s.plans.Get(id)
	if !ok {
		return zero, ErrPlanNotFound
	}
	plan, ok := v.(T)
	if !ok {
		return zero, ErrPlanNotFound
	}
	return plan, nil
}

// SaveExport caches a rendered document for a plan, keyed by format.
func (s *Store[T]) SaveExport(id, format string, data []byte) error {
	if _, ok := s.plans.Get(id); !ok {
		return ErrPlanNotFound
	}
	s.exports.SetDefault(exportKey(id, format), data)
	return nil
}

func (s *Store[T]) GetExport(id, format string) ([]byte, bool) {
	v, ok := s.exports.Get(exportKey(id, format))
	if !ok {
		return nil, false
	}
	data, ok := v.([]byte)
	return data, ok
}

func (s *Store[T]) Count() int {
	return s.plans.ItemCount()
}

func exportKey(id, format string) string {
	return id + ":" + format
}
