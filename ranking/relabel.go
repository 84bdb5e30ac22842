// SPDX-License-Identifier: MIT
// Package: choice/ranking
//
// relabel.go — validated candidate relabelings (bijections C → C).

package ranking

import (
	"maps"
	"slices"
)

// Relabeling is a bijection of a candidate set onto itself.
// Construct with NewRelabeling or FromOrders; the zero value is unusable.
type Relabeling struct {
	to map[Candidate]Candidate
}

// NewRelabeling validates that mapping is a bijection of its key set onto
// itself and returns it as a Relabeling. An empty mapping is rejected.
// Complexity: O(n) time, O(n) space.
func NewRelabeling(mapping map[Candidate]Candidate) (Relabeling, error) {
	if len(mapping) == 0 {
		return Relabeling{}, rankingErrorf("NewRelabeling", ErrEmptyRanking)
	}
	image := make(map[Candidate]struct{}, len(mapping))
	for _, dst := range mapping {
		if _, ok := mapping[dst]; !ok {
			return Relabeling{}, rankingErrorf("NewRelabeling", ErrNotBijection)
		}
		image[dst] = struct{}{}
	}
	if len(image) != len(mapping) {
		return Relabeling{}, rankingErrorf("NewRelabeling", ErrNotBijection)
	}

	return Relabeling{to: maps.Clone(mapping)}, nil
}

// FromOrders builds the relabeling that sends from[i] to to[i].
// Both orders must be permutations of one candidate set.
func FromOrders(from, to Ranking) (Relabeling, error) {
	if err := from.Validate(); err != nil {
		return Relabeling{}, rankingErrorf("FromOrders", err)
	}
	if !SameCandidates(from, to) {
		return Relabeling{}, rankingErrorf("FromOrders", ErrCandidateMismatch)
	}
	m := make(map[Candidate]Candidate, len(from))
	for i, c := range from {
		m[c] = to[i]
	}

	return Relabeling{to: m}, nil
}

// Identity returns the identity relabeling over candidates.
func Identity(candidates []Candidate) (Relabeling, error) {
	return FromOrders(candidates, candidates)
}

// Len is the size of the relabeled candidate set.
func (rl Relabeling) Len() int { return len(rl.to) }

// Image returns the label c is sent to; ok is false when c is outside the domain.
func (rl Relabeling) Image(c Candidate) (Candidate, bool) {
	d, ok := rl.to[c]
	return d, ok
}

// IsIdentity reports whether every candidate maps to itself.
func (rl Relabeling) IsIdentity() bool {
	for src, dst := range rl.to {
		if src != dst {
			return false
		}
	}

	return true
}

// Apply relabels every candidate of r, returning a new ranking.
// r must be a permutation of the relabeling's domain.
func (rl Relabeling) Apply(r Ranking) (Ranking, error) {
	if len(r) != len(rl.to) {
		return nil, rankingErrorf("Relabeling.Apply", ErrCandidateMismatch)
	}
	out := make(Ranking, len(r))
	for i, c := range r {
		d, ok := rl.to[c]
		if !ok {
			return nil, rankingErrorf("Relabeling.Apply", ErrCandidateMismatch)
		}
		out[i] = d
	}

	return out, nil
}

// ApplyAll relabels a set of candidates and returns them sorted, as used
// when comparing winner sets up to relabeling.
func (rl Relabeling) ApplyAll(cs []Candidate) ([]Candidate, error) {
	out := make([]Candidate, len(cs))
	for i, c := range cs {
		d, ok := rl.to[c]
		if !ok {
			return nil, rankingErrorf("Relabeling.ApplyAll", ErrCandidateMismatch)
		}
		out[i] = d
	}
	slices.Sort(out)

	return out, nil
}
