package random

import (
	"math/rand"
)

// Random supplies the randomness used when simulating game rounds
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// MathRandom implements Random using math/rand
type MathRandom struct{}

// New creates a new MathRandom
func New() *MathRandom {
	return &MathRandom{}
}

// Intn returns a random int in [0, n), or 0 when n <= 0
func (r *MathRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.Intn(n)
}

// Between returns a random int in [lo, hi]
func Between(r Random, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
