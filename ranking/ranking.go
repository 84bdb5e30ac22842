// SPDX-License-Identifier: MIT
// Package: choice/ranking
//
// ranking.go — Candidate and Ranking, the leaf data model.

package ranking

import (
	"slices"
	"strings"
)

// Candidate is an opaque, comparable label. Candidates within one profile
// are pairwise distinct.
type Candidate string

// Ranking is one voter's strict total order over every candidate.
// Index 0 is the most preferred candidate.
type Ranking []Candidate

// Validate reports ErrEmptyRanking for an empty ranking and
// ErrDuplicateCandidate when a label occurs more than once.
// Complexity: O(n) time, O(n) space.
func (r Ranking) Validate() error {
	if len(r) == 0 {
		return rankingErrorf("Validate", ErrEmptyRanking)
	}
	seen := make(map[Candidate]struct{}, len(r))
	for _, c := range r {
		if _, dup := seen[c]; dup {
			return rankingErrorf("Validate", ErrDuplicateCandidate)
		}
		seen[c] = struct{}{}
	}

	return nil
}

// Positions maps every candidate to its rank index.
// Complexity: O(n) time, O(n) space.
func (r Ranking) Positions() map[Candidate]int {
	pos := make(map[Candidate]int, len(r))
	for i, c := range r {
		pos[c] = i
	}

	return pos
}

// Top returns the most preferred candidate. The ranking must be non-empty.
func (r Ranking) Top() Candidate { return r[0] }

// Prefers reports whether a is ranked strictly above b.
// Both candidates must be present.
func (r Ranking) Prefers(a, b Candidate) bool {
	return slices.Index(r, a) < slices.Index(r, b)
}

// Equal reports element-wise equality.
func (r Ranking) Equal(other Ranking) bool { return slices.Equal(r, other) }

// Clone returns an independent copy.
func (r Ranking) Clone() Ranking { return slices.Clone(r) }

// Reverse returns the reversed order as a new ranking.
func (r Ranking) Reverse() Ranking {
	out := slices.Clone(r)
	slices.Reverse(out)

	return out
}

// Condensed concatenates the labels, e.g. [a b c] → "abc". The form is only
// unambiguous for single-character labels; use Key for lookups.
func (r Ranking) Condensed() string {
	var sb strings.Builder
	for _, c := range r {
		sb.WriteString(string(c))
	}

	return sb.String()
}

// keySep never occurs in printable labels.
const keySep = "\x1f"

// Key renders an unambiguous map key for the ranking, safe for
// multi-character labels.
func (r Ranking) Key() string {
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = string(c)
	}

	return strings.Join(parts, keySep)
}

// Sorted returns the candidates of r in ascending label order.
func (r Ranking) Sorted() []Candidate {
	out := slices.Clone([]Candidate(r))
	slices.Sort(out)

	return out
}

// SameCandidates reports whether a and b are permutations of one candidate set.
// Complexity: O(n) time, O(n) space.
func SameCandidates(a, b Ranking) bool {
	if len(a) != len(b) {
		return false
	}
	pos := make(map[Candidate]struct{}, len(a))
	for _, c := range a {
		pos[c] = struct{}{}
	}
	if len(pos) != len(a) {
		return false
	}
	for _, c := range b {
		if _, ok := pos[c]; !ok {
			return false
		}
		delete(pos, c)
	}

	return len(pos) == 0
}

// Candidates converts plain strings into candidate labels.
func Candidates(labels ...string) []Candidate {
	out := make([]Candidate, len(labels))
	for i, l := range labels {
		out[i] = Candidate(l)
	}

	return out
}
