// SPDX-License-Identifier: MIT
// Package: choice/profile
//
// config.go — resolved generation configuration and RNG construction.
//
// Defaults:
//   • rng            = randomly seeded PCG (non-reproducible) unless seeded
//   • transformation = 0 (classical Mallows)

package profile

import "math/rand/v2"

// seedStream is the fixed second PCG word paired with user seeds.
const seedStream uint64 = 0x9e3779b97f4a7c15

type genConfig struct {
	rng            *rand.Rand
	transformation float64
}

// newGenConfig applies opts in order (last wins) and fills the RNG default.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return cfg
}

// NewRand returns the deterministic RNG WithSeed(seed) would install.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), seedStream))
}
