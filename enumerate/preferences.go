// SPDX-License-Identifier: MIT
// Package: choice/enumerate
//
// preferences.go — exhaustive enumeration of preferences and electorates.
//
// Contract:
//   • Preferences(c) yields every permutation of c exactly once (n! items).
//   • Electorates(c, k) yields the k-fold Cartesian power of Preferences(c)
//     ((n!)^k tuples).
//   • Order is deterministic for a fixed input order, but only completeness
//     and uniqueness are contractual.
//   • Both operations are exponential; requests above Limit objects fail with
//     ErrTooLarge instead of exhausting memory.
//
// Implementation:
//   • gonum combin.PermutationGenerator walks index arrays iteratively,
//     so only the output slice grows with n!.
//   • gonum combin.CartesianGenerator walks the voter tuples the same way.

package enumerate

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/choice/ranking"
)

// Limit bounds the number of rankings (Preferences) or tuples (Electorates)
// one call may materialize.
const Limit = 10_000_000

// Count returns n! as the number of preferences over n candidates, or -1
// when the value exceeds Limit.
func Count(n int) int {
	if n < 0 {
		return -1
	}
	var p int
	p = 1
	for i := 2; i <= n; i++ {
		p *= i
		if p > Limit {
			return -1
		}
	}

	return p
}

// CountElectorates returns (n!)^k, or -1 when the value exceeds Limit.
func CountElectorates(n, k int) int {
	base := Count(n)
	if base < 0 || k < 0 {
		return -1
	}
	if float64(k)*math.Log(float64(base)) > math.Log(Limit) {
		return -1
	}
	total := 1
	for i := 0; i < k; i++ {
		total *= base
	}

	return total
}

// Preferences returns every strict total order over candidates.
// Duplicate or empty candidate lists are rejected.
//
// Complexity: O(n·n!) time and space.
func Preferences(candidates []ranking.Candidate) ([]ranking.Ranking, error) {
	n := len(candidates)
	if n == 0 {
		return nil, enumerateErrorf("Preferences", ErrNoCandidates)
	}
	if err := ranking.Ranking(candidates).Validate(); err != nil {
		return nil, enumerateErrorf("Preferences", err)
	}
	total := Count(n)
	if total < 0 {
		return nil, enumerateErrorf("Preferences", ErrTooLarge)
	}

	out := make([]ranking.Ranking, 0, total)
	idx := make([]int, n)
	gen := combin.NewPermutationGenerator(n, n)
	for gen.Next() {
		gen.Permutation(idx)
		r := make(ranking.Ranking, n)
		for i, j := range idx {
			r[i] = candidates[j]
		}
		out = append(out, r)
	}

	return out, nil
}

// Condensed renders each ranking as its concatenated labels.
func Condensed(rs []ranking.Ranking) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Condensed()
	}

	return out
}

// PreferencesCondensed is Preferences followed by Condensed.
func PreferencesCondensed(candidates []ranking.Candidate) ([]string, error) {
	prefs, err := Preferences(candidates)
	if err != nil {
		return nil, err
	}

	return Condensed(prefs), nil
}

// Electorates returns every numVoters-tuple of preferences over candidates.
// Rankings inside a tuple are shared with other tuples that pick the same
// preference; callers that mutate them must clone first.
//
// Complexity: O(k·(n!)^k) time and space.
func Electorates(candidates []ranking.Candidate, numVoters int) ([][]ranking.Ranking, error) {
	if numVoters < 1 {
		return nil, enumerateErrorf("Electorates", ErrNoVoters)
	}
	prefs, err := Preferences(candidates)
	if err != nil {
		return nil, enumerateErrorf("Electorates", err)
	}
	total := CountElectorates(len(candidates), numVoters)
	if total < 0 {
		return nil, enumerateErrorf("Electorates", ErrTooLarge)
	}

	lens := make([]int, numVoters)
	for i := range lens {
		lens[i] = len(prefs)
	}
	out := make([][]ranking.Ranking, 0, total)
	sub := make([]int, numVoters)
	gen := combin.NewCartesianGenerator(lens)
	for gen.Next() {
		gen.Product(sub)
		voters := make([]ranking.Ranking, numVoters)
		for v, p := range sub {
			voters[v] = prefs[p]
		}
		out = append(out, voters)
	}

	return out, nil
}
