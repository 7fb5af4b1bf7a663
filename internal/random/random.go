// Package random supplies the uniform choices used when enriching briefs
// and picking chat replies. Every consumer takes a Source so tests can
// pin the outcome.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source returns a uniform integer in [0, n). n is always > 0.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Default returns a Source backed by the runtime-seeded global generator.
func Default() Source { return globalSource{} }

type seeded struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a deterministic Source. It is safe for concurrent use.
func New(seed uint64) Source {
	return &seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seeded) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

type sequence struct {
	mu   sync.Mutex
	vals []int
	next int
}

// Sequence returns a Source that replays vals in order, wrapping around.
// Each value is reduced modulo n.
func Sequence(vals ...int) Source {
	if len(vals) == 0 {
		vals = []int{0}
	}
	return &sequence{vals: vals}
}

func (s *sequence) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.vals[s.next%len(s.vals)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Pick returns a uniformly chosen element. It panics on an empty slice.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// IntRange returns a uniform integer in [lo, hi].
func IntRange(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
