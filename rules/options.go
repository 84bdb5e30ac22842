// SPDX-License-Identifier: MIT
// Package: choice/rules
//
// options.go — functional options shared by the randomized rules and Elect.
//
// Contract:
//   • Option constructors PANIC on meaningless values (nil RNG, approval
//     length < 1, empty or non-finite points). Values that depend on the
//     electorate (voter index, length > n, unknown scheme) are reported as
//     errors by the rule itself.
//   • Without WithSeed/WithRand a randomly seeded source is used.

package rules

import (
	"math"
	"math/rand/v2"
	"slices"
)

// seedStream pairs user seeds with a fixed second PCG word.
const seedStream uint64 = 0xda942042e4dd58b5

// Option customizes a rule call or a bound Rule.
type Option func(*ruleConfig)

type ruleConfig struct {
	rng            *rand.Rand
	voter          int
	hasVoter       bool
	approvalLength int // 0 = random per voter
	scheme         string
	points         []float64
}

// newRuleConfig applies opts in order (last wins) and fills defaults.
func newRuleConfig(opts ...Option) ruleConfig {
	cfg := ruleConfig{scheme: string(BordaZero)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return cfg
}

// WithRand provides an explicit RNG for Dictator and random-length Approval.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("rules: WithRand(nil)")
	}
	return func(c *ruleConfig) {
		c.rng = r
	}
}

// WithSeed installs a deterministic PCG source.
func WithSeed(seed int64) Option {
	return func(c *ruleConfig) {
		c.rng = rand.New(rand.NewPCG(uint64(seed), seedStream))
	}
}

// WithVoter fixes the dictator to voter i. Range is checked against the
// electorate when the rule runs.
func WithVoter(i int) Option {
	return func(c *ruleConfig) {
		c.voter = i
		c.hasVoter = true
	}
}

// WithApprovalLength makes every voter approve their top k candidates.
// Panics if k < 1.
func WithApprovalLength(k int) Option {
	if k < 1 {
		panic("rules: WithApprovalLength(k < 1)")
	}
	return func(c *ruleConfig) {
		c.approvalLength = k
	}
}

// WithScheme selects the Borda scheme used by Elect ("borda_0" default).
func WithScheme(name string) Option {
	return func(c *ruleConfig) {
		c.scheme = name
	}
}

// WithPoints makes Elect's "borda" use a custom points-per-rank vector,
// overriding WithScheme. Panics on an empty or non-finite vector.
func WithPoints(points []float64) Option {
	if len(points) == 0 {
		panic("rules: WithPoints(empty)")
	}
	for _, p := range points {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			panic("rules: WithPoints(non-finite)")
		}
	}
	owned := slices.Clone(points)
	return func(c *ruleConfig) {
		c.points = owned
	}
}
