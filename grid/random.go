// SPDX-License-Identifier: MIT
// Package: icebergs/grid
//
// random.go — seeded random grids for tests, benchmarks and demos.
//
// Contract:
//   • Deterministic for a fixed seed (WithSeed); default seed is 1.
//   • Each cell becomes an iceberg with probability density.
//   • Corners stay open unless WithOpenCorners(false) is given.
//   • Returns sentinel errors only (ErrEmptyGrid, ErrTooLarge, ErrBadDensity).

package grid

import (
	"math/rand"
)

// Deterministic defaults for Random.
const (
	defaultSeed    = int64(1)
	defaultDensity = 0.25
)

// randomConfig collects the knobs Random understands.
type randomConfig struct {
	rng         *rand.Rand
	density     float64
	openCorners bool
}

// Option customizes Random.
type Option func(*randomConfig)

// WithSeed seeds the generator; equal seeds give equal grids.
func WithSeed(seed int64) Option {
	return func(c *randomConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDensity sets the probability that a cell is an iceberg.
// Values outside [0,1] make Random return ErrBadDensity.
func WithDensity(p float64) Option {
	return func(c *randomConfig) {
		c.density = p
	}
}

// WithOpenCorners controls whether (0,0) and the bottom-right cell are
// forced open. Enabled by default.
func WithOpenCorners(open bool) Option {
	return func(c *randomConfig) {
		c.openCorners = open
	}
}

// Random builds a rows×cols grid with icebergs scattered at random.
// Complexity: O(rows×cols).
func Random(rows, cols int, opts ...Option) (*Grid, error) {
	cfg := randomConfig{
		rng:         rand.New(rand.NewSource(defaultSeed)),
		density:     defaultDensity,
		openCorners: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.density < 0 || cfg.density > 1 {
		return nil, ErrBadDensity
	}

	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	// Draw every cell, corners included, so the RNG stream does not
	// depend on the corner policy.
	for i := range g.blocked {
		g.blocked[i] = cfg.rng.Float64() < cfg.density
	}
	if cfg.openCorners {
		g.blocked[0] = false
		g.blocked[len(g.blocked)-1] = false
	}

	return g, nil
}
