// Package prng provides the deterministic number stream every aura scene draws from.
//
// A seed string is hashed to a uint32 and fed to a mulberry32 generator. The
// same string always yields the same infinite sequence of floats in [0,1), so
// every parameter derived from it is reproducible across runs and platforms.
package prng

import "math"

// Source is the draw contract scenes depend on
type Source interface {
	// Next returns a float in [0,1) and advances the stream
	Next() float64
}

// Generator is a mulberry32 stream over a single uint32 state
// Not safe for concurrent use; one generator belongs to one scene run
type Generator struct {
	state uint32
}

// New creates a generator from a numeric seed
func New(seed uint32) *Generator {
	return &Generator{state: seed}
}

// FromString hashes text and returns a generator over the result
func FromString(text string) *Generator {
	return New(HashToSeed(text))
}

// Next advances the state and returns a float in [0,1)
func (g *Generator) Next() float64 {
	g.state += 0x6D2B79F5
	t := g.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296.0
}

// State returns the current internal state, for logging and reproduction
func (g *Generator) State() uint32 {
	return g.state
}

// HashToSeed folds text into a 32-bit seed
// Order-dependent over runes; any input, including "", yields a valid seed
func HashToSeed(text string) uint32 {
	runes := []rune(text)
	h := uint32(1779033703) ^ uint32(len(runes))
	for _, r := range runes {
		h = (h ^ uint32(r)) * 3432918353
		h = h<<13 | h>>19
	}
	h = (h ^ h>>16) * 2246822507
	h = (h ^ h>>13) * 3266489909
	h ^= h >> 16
	return h
}

// --- Draw helpers ---

// Range returns a float in [lo, hi) using one draw
func Range(src Source, lo, hi float64) float64 {
	return lo + src.Next()*(hi-lo)
}

// Intn returns an int in [0, n) using one draw; n <= 0 returns 0 and still consumes the draw
func Intn(src Source, n int) int {
	r := src.Next()
	if n <= 0 {
		return 0
	}
	return int(math.Floor(r * float64(n)))
}

// Chance returns true with probability p using one draw
func Chance(src Source, p float64) bool {
	return src.Next() < p
}

// Pick returns one element of items using one draw; the zero value for an empty slice
func Pick[T any](src Source, items []T) T {
	i := Intn(src, len(items))
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[i]
}
