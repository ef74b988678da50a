package gamedata

import (
	"math/rand"
	"time"
)

// Sampler is the source of randomness for every draw in a session.
// *rand.Rand satisfies it; tests substitute scripted sequences.
type Sampler interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// NewSampler returns a seeded random source. A seed of 0 means a time-based seed.
func NewSampler(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // game randomness, not security critical
}

// Pick returns a uniformly chosen element of items, or nil if items is empty.
func Pick[T any](s Sampler, items []T) *T {
	if len(items) == 0 {
		return nil
	}
	return &items[s.Intn(len(items))]
}

// IntRange returns a uniformly chosen integer in [lo, hi].
func IntRange(s Sampler, lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + s.Intn(hi-lo+1)
}

// Chance rolls s.Intn(100) and reports whether it fell below percent.
// The roll is always drawn so the sequence of draws does not depend on percent.
func Chance(s Sampler, percent int) bool {
	return s.Intn(100) < percent
}
