// Package random provides the uniform random sources used to seed
// centroids and generate point clouds.
//
// Every consumer takes a Source so tests can inject a Sequence or a
// fixed-seed generator instead of depending on global state.
package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source draws uniform values.
// Implementations must be safe for concurrent use.
type Source interface {
	// NextUniform returns a value in [lo, hi). If lo == hi it returns lo.
	NextUniform(lo, hi float64) float64
}

// Seeded is a mutex-guarded math/rand generator.
type Seeded struct {
	mu   sync.Mutex
	rand *rand.Rand
	seed int64
}

// NewSeeded creates a Seeded source with the given seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// New creates a Seeded source seeded from the wall clock.
func New() *Seeded {
	return NewSeeded(time.Now().UnixNano())
}

// Seed returns the initial seed.
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Reset rewinds the generator to its initial seed.
func (s *Seeded) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rand.Seed(s.seed)
}

// NextUniform implements Source.
func (s *Seeded) NextUniform(lo, hi float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rand.Float64()*(hi-lo)
}

// NormFloat64 returns a standard normal sample.
func (s *Seeded) NormFloat64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.NormFloat64()
}

// Sequence replays a fixed list of values, ignoring the requested range.
// It wraps around when exhausted. It is meant for tests that need exact
// centroid seeds.
type Sequence struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewSequence returns a Sequence over values.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// NextUniform implements Source.
func (s *Sequence) NextUniform(lo, _ float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		return lo
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Drawn returns the number of values handed out so far.
func (s *Sequence) Drawn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
