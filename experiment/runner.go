// SPDX-License-Identifier: MIT
// Package: choice/experiment
//
// runner.go — parallel trial execution.
//
// Each trial draws one profile from the culture, runs every configured rule
// on it and records the winner sets, the Condorcet winner and the
// Kendall-tau distance of every voter to the reference order a, b, c, ….
// Results land in a slice indexed by trial, so aggregation never depends on
// completion order.

package experiment

import (
	"context"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/choice/mallows"
	"github.com/katalvlaran/choice/profile"
	"github.com/katalvlaran/choice/ranking"
	"github.com/katalvlaran/choice/rules"
)

// trialResult is the raw outcome of one trial.
type trialResult struct {
	winners   []rules.Winners // parallel to Config.Rules
	condorcet rules.Winners
	distances []int // one per voter
}

// runner holds what every trial shares read-only.
type runner struct {
	cfg       Config
	reference ranking.Ranking
	model     *mallows.Model // mallows culture only
}

// Run executes cfg.Trials trials on up to cfg.Workers goroutines and
// aggregates them into a Report. The first failing trial cancels the rest.
// Identical configs produce identical reports.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, experimentErrorf("Run", -1, err)
	}
	r, err := newRunner(cfg)
	if err != nil {
		return nil, experimentErrorf("Run", -1, err)
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]trialResult, cfg.Trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.Trials; i++ {
		trial := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.runTrial(trial)
			if err != nil {
				return experimentErrorf("Run", trial, err)
			}
			results[trial] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, experimentErrorf("Run", -1, err)
	}

	return buildReport(cfg, results)
}

func newRunner(cfg Config) (*runner, error) {
	labels, err := ranking.LexicographicLabels(cfg.Candidates)
	if err != nil {
		return nil, err
	}
	r := &runner{cfg: cfg, reference: ranking.Ranking(labels)}
	if cfg.Culture.Kind == KindMallows {
		m, err := mallows.New(r.reference, cfg.Culture.Phi,
			mallows.WithTransformation(cfg.Culture.Transformation))
		if err != nil {
			return nil, err
		}
		// Build the culture up front: oversized candidate sets fail here
		// instead of in every trial.
		if _, err := m.Culture(); err != nil {
			return nil, err
		}
		r.model = m
	}

	return r, nil
}

// draw populates a fresh profile from the configured culture.
func (r *runner) draw(rng *rand.Rand) (*profile.Profile, error) {
	c := r.cfg.Culture
	p := profile.New()
	switch c.Kind {
	case KindMallows:
		voters, err := r.model.Sample(rng, r.cfg.Voters)
		if err != nil {
			return nil, err
		}
		if err := p.SetVoters(voters); err != nil {
			return nil, err
		}
	case KindNoisy:
		if err := p.GenerateNoisyConsensus(r.cfg.Candidates, r.cfg.Voters, c.Sigma, profile.WithRand(rng)); err != nil {
			return nil, err
		}
	default:
		if err := p.GenerateUniform(r.cfg.Candidates, r.cfg.Voters, profile.WithRand(rng)); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// ruleOptions are the options every rule of a trial is bound with.
func (r *runner) ruleOptions(rng *rand.Rand) []rules.Option {
	opts := []rules.Option{rules.WithRand(rng)}
	if r.cfg.Scheme != "" {
		opts = append(opts, rules.WithScheme(r.cfg.Scheme))
	}
	if r.cfg.ApprovalLength > 0 {
		opts = append(opts, rules.WithApprovalLength(r.cfg.ApprovalLength))
	}

	return opts
}

func (r *runner) runTrial(trial int) (trialResult, error) {
	rng := trialRNG(r.cfg.Seed, trial)
	p, err := r.draw(rng)
	if err != nil {
		return trialResult{}, err
	}

	res := trialResult{winners: make([]rules.Winners, len(r.cfg.Rules))}
	opts := r.ruleOptions(rng)
	for i, name := range r.cfg.Rules {
		w, err := rules.Elect(p, name, opts...)
		if err != nil {
			return trialResult{}, err
		}
		res.winners[i] = w
	}
	if res.condorcet, err = rules.Condorcet(p); err != nil {
		return trialResult{}, err
	}

	res.distances = make([]int, p.NumVoters())
	for v := range res.distances {
		if res.distances[v], err = ranking.KendallTau(p.Voter(v), r.reference); err != nil {
			return trialResult{}, err
		}
	}

	return res, nil
}
