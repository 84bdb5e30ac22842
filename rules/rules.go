// SPDX-License-Identifier: MIT
// Package: choice/rules
//
// rules.go — the electorate surface, winner sets and tally helpers.

package rules

import (
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/choice/ranking"
)

// scoreTol is the absolute and relative tolerance under which two float
// totals count as tied.
const scoreTol = 1e-9

// Electorate is the read-only view a rule needs. *profile.Profile
// implements it.
type Electorate interface {
	// Candidates returns the sorted candidate set.
	Candidates() []ranking.Candidate
	NumCandidates() int
	NumVoters() int
	// Voter returns voter i; callers must not modify it.
	Voter(i int) ranking.Ranking
}

// Winners is a winner set in ascending label order. It may be empty.
type Winners []ranking.Candidate

// Rule is a voting rule bound to its options.
type Rule func(Electorate) (Winners, error)

// Contains reports whether c is a winner.
func (w Winners) Contains(c ranking.Candidate) bool {
	_, ok := slices.BinarySearch(w, c)
	return ok
}

// Equal reports whether both sets hold the same candidates.
func (w Winners) Equal(other Winners) bool { return slices.Equal(w, other) }

// String renders the set as "{a,b}".
func (w Winners) String() string {
	parts := make([]string, len(w))
	for i, c := range w {
		parts[i] = string(c)
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// checkElectorate rejects electorates no rule can run on.
func checkElectorate(e Electorate) error {
	if e == nil || e.NumVoters() == 0 || e.NumCandidates() == 0 {
		return ErrEmptyProfile
	}

	return nil
}

// Tally counts every voter's top choice. Candidates nobody ranks first are
// present with count 0.
//
// Complexity: O(k + n).
func Tally(e Electorate) (map[ranking.Candidate]int, error) {
	if err := checkElectorate(e); err != nil {
		return nil, rulesErrorf("Tally", err)
	}

	return tally(e), nil
}

func tally(e Electorate) map[ranking.Candidate]int {
	counts := make(map[ranking.Candidate]int, e.NumCandidates())
	for _, c := range e.Candidates() {
		counts[c] = 0
	}
	for i := 0; i < e.NumVoters(); i++ {
		counts[e.Voter(i).Top()]++
	}

	return counts
}

// argmax returns every candidate whose score ties the maximum, sorted.
// Ties are decided within scoreTol so float sums like Dowdall's compare
// as expected.
func argmax(candidates []ranking.Candidate, score func(ranking.Candidate) float64) Winners {
	if len(candidates) == 0 {
		return Winners{}
	}
	vals := make([]float64, len(candidates))
	for i, c := range candidates {
		vals[i] = score(c)
	}
	best := vals[floats.MaxIdx(vals)]

	out := Winners{}
	for i, c := range candidates {
		if scalar.EqualWithinAbsOrRel(vals[i], best, scoreTol, scoreTol) {
			out = append(out, c)
		}
	}
	slices.Sort(out)

	return out
}
