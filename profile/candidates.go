// SPDX-License-Identifier: MIT
// Package: choice/profile
//
// candidates.go — candidate-set specifications.
//
// A spec is either:
//   • an int n ≥ 1        → the first n lexicographic labels a, b, …, z, aa, …
//   • a list of labels    → []ranking.Candidate, ranking.Ranking or []string;
//                           duplicates are dropped.
// Any other type fails with ErrUnsupportedCandidates.

package profile

import (
	"slices"

	"github.com/katalvlaran/choice/ranking"
)

// candidateSet is a resolved spec: the sorted set plus the caller's order,
// which serves as the ground truth / reference of the cultures.
type candidateSet struct {
	sorted []ranking.Candidate
	order  ranking.Ranking
}

// resolveCandidates turns a spec into a candidateSet.
func resolveCandidates(spec any) (candidateSet, error) {
	var order []ranking.Candidate
	switch v := spec.(type) {
	case int:
		if v < 1 {
			return candidateSet{}, ErrNoCandidates
		}
		labels, err := ranking.LexicographicLabels(v)
		if err != nil {
			return candidateSet{}, err
		}
		order = labels
	case []ranking.Candidate:
		order = dedup(v)
	case ranking.Ranking:
		order = dedup(v)
	case []string:
		order = dedup(ranking.Candidates(v...))
	default:
		return candidateSet{}, ErrUnsupportedCandidates
	}
	if len(order) == 0 {
		return candidateSet{}, ErrNoCandidates
	}
	sorted := slices.Clone(order)
	slices.Sort(sorted)

	return candidateSet{sorted: sorted, order: order}, nil
}

// dedup keeps the first occurrence of every label, preserving order.
func dedup(in []ranking.Candidate) []ranking.Candidate {
	seen := make(map[ranking.Candidate]struct{}, len(in))
	out := make([]ranking.Candidate, 0, len(in))
	for _, c := range in {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}

// SetCandidates replaces the candidate set from spec (see package doc).
// Existing voters cannot rank a different set, so they are dropped; the
// profile becomes an empty electorate over the new candidates.
func (p *Profile) SetCandidates(spec any) error {
	cs, err := resolveCandidates(spec)
	if err != nil {
		return profileErrorf("SetCandidates", err)
	}
	p.candidates = cs.sorted
	p.voters = nil

	return nil
}
