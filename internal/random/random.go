// Package random provides the randomness sources used for drawing cards and rolling dice.
package random

import "math/rand/v2"

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// IntN returns a non-negative random int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// global delegates to the auto-seeded top-level math/rand/v2 functions.
type global struct{}

func (global) IntN(n int) int { return rand.IntN(n) }

// Global is the process-wide source used when no seed is given.
var Global RNG = global{}

// New returns a PCG generator seeded with seed. Two generators built from the
// same seed produce the same stream.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
