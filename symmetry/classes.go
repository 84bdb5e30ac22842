// SPDX-License-Identifier: MIT
// Package: choice/symmetry
//
// classes.go — voter-permutation and candidate-relabeling classes.
//
// Every class is deduplicated with Profile.Key (voter order matters) and,
// unless WithOriginal is given, excludes the profile equal to the input.
// Results are in generation order: lexicographic over voter indices, then
// over candidate images.
//
// Bounds (k voters, n candidates):
//   • VoterPermutations     O(k!·k·n)
//   • CandidateRelabelings  O(n!·k·n)
//   • Combined              O(k!·n!·k·n)
// k! and n! are capped by enumerate.Limit.

package symmetry

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/choice/enumerate"
	"github.com/katalvlaran/choice/profile"
	"github.com/katalvlaran/choice/ranking"
)

// collector deduplicates profiles by key, in insertion order.
type collector struct {
	seen     map[string]struct{}
	out      []*profile.Profile
	original string
	keepOrig bool
}

func newCollector(p *profile.Profile, cfg config) *collector {
	return &collector{
		seen:     make(map[string]struct{}),
		original: p.Key(),
		keepOrig: cfg.includeOriginal,
	}
}

func (c *collector) add(q *profile.Profile) {
	key := q.Key()
	if key == c.original && !c.keepOrig {
		return
	}
	if _, ok := c.seen[key]; ok {
		return
	}
	c.seen[key] = struct{}{}
	c.out = append(c.out, q)
}

func checkProfile(p *profile.Profile) error {
	if p == nil || p.Empty() {
		return ErrNilProfile
	}

	return nil
}

// voterOrders calls fn with every reordering of p's voters.
func voterOrders(p *profile.Profile, fn func(*profile.Profile) error) error {
	k := p.NumVoters()
	if enumerate.Count(k) < 0 {
		return enumerate.ErrTooLarge
	}
	voters := p.Voters()
	idx := make([]int, k)
	gen := combin.NewPermutationGenerator(k, k)
	for gen.Next() {
		gen.Permutation(idx)
		reordered := make([]ranking.Ranking, k)
		for i, j := range idx {
			reordered[i] = voters[j]
		}
		q, err := profile.FromVoters(reordered)
		if err != nil {
			return err
		}
		if err := fn(q); err != nil {
			return err
		}
	}

	return nil
}

// VoterPermutations returns every distinct profile obtained by reordering
// p's voters.
func VoterPermutations(p *profile.Profile, opts ...Option) ([]*profile.Profile, error) {
	if err := checkProfile(p); err != nil {
		return nil, symmetryErrorf("VoterPermutations", err)
	}
	c := newCollector(p, newConfig(opts...))
	err := voterOrders(p, func(q *profile.Profile) error {
		c.add(q)
		return nil
	})
	if err != nil {
		return nil, symmetryErrorf("VoterPermutations", err)
	}

	return c.out, nil
}

// Relabelings returns every bijection of candidates onto itself, the
// identity first.
func Relabelings(candidates []ranking.Candidate) ([]ranking.Relabeling, error) {
	images, err := enumerate.Preferences(candidates)
	if err != nil {
		return nil, symmetryErrorf("Relabelings", err)
	}
	out := make([]ranking.Relabeling, len(images))
	for i, img := range images {
		mapping := make(map[ranking.Candidate]ranking.Candidate, len(candidates))
		for j, c := range candidates {
			mapping[c] = img[j]
		}
		if out[i], err = ranking.NewRelabeling(mapping); err != nil {
			return nil, symmetryErrorf("Relabelings", err)
		}
	}

	return out, nil
}

// CandidateRelabelings returns every distinct profile obtained by applying
// one relabeling of the candidate set to all voters.
func CandidateRelabelings(p *profile.Profile, opts ...Option) ([]*profile.Profile, error) {
	if err := checkProfile(p); err != nil {
		return nil, symmetryErrorf("CandidateRelabelings", err)
	}
	rels, err := Relabelings(p.Candidates())
	if err != nil {
		return nil, symmetryErrorf("CandidateRelabelings", err)
	}
	c := newCollector(p, newConfig(opts...))
	for _, rel := range rels {
		q, err := p.Rename(rel)
		if err != nil {
			return nil, symmetryErrorf("CandidateRelabelings", err)
		}
		c.add(q)
	}

	return c.out, nil
}

// Combined returns the whole orbit of p: every voter reordering composed
// with every candidate relabeling, deduplicated.
func Combined(p *profile.Profile, opts ...Option) ([]*profile.Profile, error) {
	if err := checkProfile(p); err != nil {
		return nil, symmetryErrorf("Combined", err)
	}
	rels, err := Relabelings(p.Candidates())
	if err != nil {
		return nil, symmetryErrorf("Combined", err)
	}
	if enumerate.Count(p.NumVoters()) < 0 || enumerate.Count(p.NumVoters())*len(rels) > enumerate.Limit {
		return nil, symmetryErrorf("Combined", enumerate.ErrTooLarge)
	}
	c := newCollector(p, newConfig(opts...))
	err = voterOrders(p, func(q *profile.Profile) error {
		for _, rel := range rels {
			r, err := q.Rename(rel)
			if err != nil {
				return err
			}
			c.add(r)
		}
		return nil
	})
	if err != nil {
		return nil, symmetryErrorf("Combined", err)
	}

	return c.out, nil
}
