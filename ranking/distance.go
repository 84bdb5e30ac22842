// SPDX-License-Identifier: MIT
// Package: choice/ranking
//
// distance.go — pairwise-discordance (Kendall-tau) distance and the named
// metric registry.
//
// Contract:
//   • KendallTau(a,b) counts unordered candidate pairs whose relative order
//     differs between a and b. Range 0..C(n,2); 0 iff a == b; C(n,2) iff b is
//     the reverse of a. Symmetric, satisfies the triangle inequality.
//   • Inputs MUST be permutations of the same candidate set; otherwise
//     ErrCandidateMismatch (an ErrInvalidInput).
//
// Complexity: O(n²) time, O(n) space.

package ranking

import (
	"strings"

	"gonum.org/v1/gonum/stat/combin"
)

// Metric computes a distance between two rankings over one candidate set.
type Metric func(a, b Ranking) (int, error)

// Canonical metric names.
const (
	MetricKendallTau = "kendall-tau"
)

// metrics holds every registered metric keyed by normalized name.
// "kendalltau" is accepted as an alias.
var metrics = map[string]Metric{
	MetricKendallTau: KendallTau,
	"kendalltau":     KendallTau,
}

// LookupMetric resolves a metric by name (case-insensitive).
// Unknown names fail with ErrUnknownMetric.
func LookupMetric(name string) (Metric, error) {
	m, ok := metrics[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, rankingErrorf("LookupMetric("+name+")", ErrUnknownMetric)
	}

	return m, nil
}

// Distance evaluates the named metric on a and b.
func Distance(metric string, a, b Ranking) (int, error) {
	m, err := LookupMetric(metric)
	if err != nil {
		return 0, err
	}

	return m(a, b)
}

// KendallTau returns the number of discordant candidate pairs between a and b.
func KendallTau(a, b Ranking) (int, error) {
	if len(a) == 0 {
		return 0, rankingErrorf("KendallTau", ErrEmptyRanking)
	}
	if !SameCandidates(a, b) {
		return 0, rankingErrorf("KendallTau", ErrCandidateMismatch)
	}

	// Express b through a's indices: seq[i] is the position in a of b[i].
	// Discordant pairs are then exactly the inversions of seq.
	posA := a.Positions()
	seq := make([]int, len(b))
	for i, c := range b {
		seq[i] = posA[c]
	}

	var d, i, j int
	for i = 0; i < len(seq); i++ {
		for j = i + 1; j < len(seq); j++ {
			if seq[i] > seq[j] {
				d++
			}
		}
	}

	return d, nil
}

// MaxDistance returns C(n,2), the Kendall-tau distance between a ranking of
// n candidates and its reverse. n < 2 yields 0.
func MaxDistance(n int) int {
	if n < 2 {
		return 0
	}

	return combin.Binomial(n, 2)
}
