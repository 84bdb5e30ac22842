// SPDX-License-Identifier: MIT
// Package: choice/profile
//
// generate.go — probabilistic cultures populating a Profile in one shot.
//
// Cultures:
//   • Uniform         — each voter an independent uniform shuffle.
//   • Mallows         — voters i.i.d. from mallows.Model(reference, φ, t).
//   • NoisyConsensus  — each voter perceives the ground-truth order through
//                       i.i.d. Gaussian positional noise N(0, σ).
//
// The reference / ground truth is the order of the candidate spec: the
// caller's list order, or a, b, c, … for integer specs.
//
// Every method validates and draws into locals first; the receiver is only
// rewritten on success.

package profile

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/choice/mallows"
	"github.com/katalvlaran/choice/ranking"
)

// GenerateUniform fills the profile with numVoters independent uniformly
// random rankings of the candidates.
//
// Complexity: O(k·n).
func (p *Profile) GenerateUniform(spec any, numVoters int, opts ...Option) error {
	cs, err := resolveGeneration(spec, numVoters)
	if err != nil {
		return profileErrorf("GenerateUniform", err)
	}
	cfg := newGenConfig(opts...)

	voters := make([]ranking.Ranking, numVoters)
	for i := range voters {
		v := slices.Clone(ranking.Ranking(cs.sorted))
		cfg.rng.Shuffle(len(v), func(a, b int) { v[a], v[b] = v[b], v[a] })
		voters[i] = v
	}
	p.assign(cs, voters)

	return nil
}

// GenerateMallows fills the profile with numVoters draws from the Mallows
// model centred on the spec order with dispersion phi. WithTransformation
// sets t (default 0).
//
// Complexity: O(n²·n!) to build the culture, then O(k·n) sampling.
func (p *Profile) GenerateMallows(spec any, numVoters int, phi float64, opts ...Option) error {
	cs, err := resolveGeneration(spec, numVoters)
	if err != nil {
		return profileErrorf("GenerateMallows", err)
	}
	cfg := newGenConfig(opts...)

	model, err := mallows.New(cs.order, phi, mallows.WithTransformation(cfg.transformation))
	if err != nil {
		return profileErrorf("GenerateMallows", err)
	}
	voters, err := model.Sample(cfg.rng, numVoters)
	if err != nil {
		return profileErrorf("GenerateMallows", err)
	}
	p.assign(cs, voters)

	return nil
}

// GenerateNoisyConsensus fills the profile with numVoters noisy perceptions
// of the spec order: candidate i gets score i + N(0, sigma) and the voter
// ranks by ascending score, ties kept in spec order. sigma = 0 reproduces
// the ground truth for every voter.
//
// Complexity: O(k·n log n).
func (p *Profile) GenerateNoisyConsensus(spec any, numVoters int, sigma float64, opts ...Option) error {
	cs, err := resolveGeneration(spec, numVoters)
	if err != nil {
		return profileErrorf("GenerateNoisyConsensus", err)
	}
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		return profileErrorf("GenerateNoisyConsensus", ErrInvalidNoise)
	}
	cfg := newGenConfig(opts...)
	noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: cfg.rng}

	n := len(cs.order)
	scores := make([]float64, n)
	idx := make([]int, n)
	voters := make([]ranking.Ranking, numVoters)
	for v := range voters {
		for i := range scores {
			scores[i] = float64(i) + noise.Rand()
			idx[i] = i
		}
		slices.SortStableFunc(idx, func(a, b int) int {
			switch {
			case scores[a] < scores[b]:
				return -1
			case scores[a] > scores[b]:
				return 1
			}
			return 0
		})
		r := make(ranking.Ranking, n)
		for pos, i := range idx {
			r[pos] = cs.order[i]
		}
		voters[v] = r
	}
	p.assign(cs, voters)

	return nil
}

// resolveGeneration validates the common generation arguments.
func resolveGeneration(spec any, numVoters int) (candidateSet, error) {
	cs, err := resolveCandidates(spec)
	if err != nil {
		return candidateSet{}, err
	}
	if numVoters < 1 {
		return candidateSet{}, ErrNoVoters
	}

	return cs, nil
}

// assign rewrites the profile; voters must be freshly allocated.
func (p *Profile) assign(cs candidateSet, voters []ranking.Ranking) {
	p.candidates = slices.Clone(cs.sorted)
	p.voters = voters
}
