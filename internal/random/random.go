package random

import "math/rand/v2"

// Source yields uniformly distributed positive integers. Implementations
// must be safe for concurrent use from independent requests.
type Source interface {
	Positive(max int) int
}

// Generator draws from math/rand/v2, whose runtime-seeded generator keeps
// independent per-thread state, so concurrent requests never observe
// correlated sequences.
type Generator struct{}

func New() Generator { return Generator{} }

// Positive returns an integer uniformly distributed over [1, max].
// max must be at least 1.
func (Generator) Positive(max int) int {
	return rand.IntN(max) + 1
}
