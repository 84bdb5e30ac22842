// SPDX-License-Identifier: MIT
// Package: choice/profile
//
// options.go — functional options for the generation methods.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (nil RNG, non-finite transformation). Generation methods never panic.
//   • Determinism is explicit: WithSeed or WithRand. Without either, a fresh
//     randomly seeded source is drawn per call.

package profile

import (
	"math"
	"math/rand/v2"
)

// Option customizes one generation call.
type Option func(*genConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("profile: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a deterministic PCG source from seed.
// Use this in tests and experiments to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = NewRand(seed)
	}
}

// WithTransformation sets the Mallows distance transformation t.
// Ignored by the uniform and noisy-consensus cultures. Panics on NaN/±Inf.
func WithTransformation(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		panic("profile: WithTransformation(non-finite)")
	}
	return func(c *genConfig) {
		c.transformation = t
	}
}
