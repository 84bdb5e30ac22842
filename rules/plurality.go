// SPDX-License-Identifier: MIT
// Package: choice/rules
//
// plurality.go — first-choice rules: plurality and majority.

package rules

import "github.com/katalvlaran/choice/ranking"

// Plurality returns every candidate tied for the most first-place votes.
// The set is never empty.
//
// Complexity: O(k + n log n).
func Plurality(e Electorate) (Winners, error) {
	if err := checkElectorate(e); err != nil {
		return nil, rulesErrorf("Plurality", err)
	}
	counts := tally(e)

	return argmax(e.Candidates(), func(c ranking.Candidate) float64 {
		return float64(counts[c])
	}), nil
}

// Majority returns the plurality leader when it holds at least half of the
// first-place votes (2·count ≥ numVoters), otherwise the empty set.
// Among candidates tied for the lead the smallest label is considered, so
// the result has at most one element and is a subset of Plurality.
func Majority(e Electorate) (Winners, error) {
	if err := checkElectorate(e); err != nil {
		return nil, rulesErrorf("Majority", err)
	}
	counts := tally(e)

	var (
		leader ranking.Candidate
		best   = -1
	)
	// Candidates are sorted: strict > keeps the smallest tied label.
	for _, c := range e.Candidates() {
		if counts[c] > best {
			leader, best = c, counts[c]
		}
	}
	if 2*best >= e.NumVoters() {
		return Winners{leader}, nil
	}

	return Winners{}, nil
}
