// Package rng provides the deterministic random source for layout
// generation. Every random decision in the pipeline flows through a
// Generator so that a seed string fully determines the output, across
// processes and across releases. The core is a splitmix64 step over an
// FNV-1a hash of the seed; the sequence is frozen and must never change.
package rng

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPick is returned when picking from an empty list.
	ErrEmptyPick = errors.New("rng: pick from empty list")
	// ErrWeightedPick is returned when options and weights disagree.
	ErrWeightedPick = errors.New("rng: options and weights must be non-empty and of equal length")
)

const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211

	splitmixGamma uint64 = 0x9E3779B97F4A7C15
)

// Generator is a seeded pseudo-random source. It holds no state beyond
// the seed string and the current counter, so Reset restores it exactly.
type Generator struct {
	seed  string
	state uint64
	init  uint64
}

// New creates a generator whose entire behavior is fixed by seed.
func New(seed string) *Generator {
	h := fnvOffset
	for i := 0; i < len(seed); i++ {
		h ^= uint64(seed[i])
		h *= fnvPrime
	}
	if h == 0 {
		h = splitmixGamma
	}
	return &Generator{seed: seed, state: h, init: h}
}

// Seed returns the seed string the generator was built from.
func (g *Generator) Seed() string {
	return g.seed
}

// Reset restores the generator to its initial state.
func (g *Generator) Reset() {
	g.state = g.init
}

func (g *Generator) next64() uint64 {
	g.state += splitmixGamma
	z := g.state
	z ^= z >> 30
	z *= 0xBF58476D1CE4E5B9
	z ^= z >> 27
	z *= 0x94D049BB133111EB
	z ^= z >> 31
	return z
}

// Next returns the next float in [0,1).
func (g *Generator) Next() float64 {
	return float64(g.next64()>>11) / (1 << 53)
}

// Float64Between returns a float in [min,max).
func (g *Generator) Float64Between(min, max float64) float64 {
	return min + g.Next()*(max-min)
}

// IntBetween returns an integer in [min,max], inclusive of both bounds.
func (g *Generator) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(g.Next()*float64(max-min+1))
}

// Bool returns true with probability p.
func (g *Generator) Bool(p float64) bool {
	return g.Next() < p
}

// Pick returns a random element of items.
func Pick[T any](g *Generator, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyPick
	}
	return items[g.IntBetween(0, len(items)-1)], nil
}

// Shuffle permutes items in place with a Fisher-Yates pass and returns
// the same slice.
func Shuffle[T any](g *Generator, items []T) []T {
	for i := len(items) - 1; i > 0; i-- {
		j := g.IntBetween(0, i)
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// Shuffled returns a shuffled copy of items, leaving the original untouched.
func Shuffled[T any](g *Generator, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return Shuffle(g, out)
}

// WeightedPick selects an option with probability proportional to its
// weight: a single draw is scaled by the weight sum, then weights are
// subtracted in order until it goes negative.
func WeightedPick[T any](g *Generator, options []T, weights []float64) (T, error) {
	var zero T
	if len(options) == 0 || len(options) != len(weights) {
		return zero, ErrWeightedPick
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := g.Next() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return options[i], nil
		}
	}
	return options[len(options)-1], nil
}

// GenerateSeed joins the stringified parts with "-".
func GenerateSeed(parts ...any) string {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = fmt.Sprint(p)
	}
	return strings.Join(strs, "-")
}

// FromRepoMetadata derives the layout seed for a repository. An empty
// commit falls back to "default" so a repository always has a stable seed.
func FromRepoMetadata(repoID, commit string) string {
	if commit == "" {
		commit = "default"
	}
	return GenerateSeed(repoID, commit)
}
