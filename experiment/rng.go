// SPDX-License-Identifier: MIT
// Package: choice/experiment
//
// rng.go — per-trial random streams.
//
// Every trial owns a *rand.Rand derived from (seed, trial) alone, so a run
// is reproducible whatever the worker count or scheduling order.
// A *rand.Rand is not goroutine-safe and is never shared between trials.

package experiment

import "math/rand/v2"

// defaultSeed replaces seed 0 so the zero Config is still deterministic.
const defaultSeed int64 = 1

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// trialRNG returns the random stream of one trial.
func trialRNG(seed int64, trial int) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	s := deriveSeed(seed, uint64(trial))

	return rand.New(rand.NewPCG(uint64(s), uint64(deriveSeed(s, 1))))
}
