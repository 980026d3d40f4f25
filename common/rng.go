package common

import (
	"math/rand"
	"time"
)

// RNG is the single randomness source of a simulation run.
type RNG struct {
	r    *rand.Rand
	seed int64
}

// NewRNG creates a generator. A zero seed picks one from the clock.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the generator was created with.
func (g *RNG) Seed() int64 {
	return g.seed
}

// IntRange returns a uniform integer in [lo, hi].
func (g *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo+1)
}

// Intn returns a uniform integer in [0, n).
func (g *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return g.r.Intn(n)
}
