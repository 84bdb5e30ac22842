// SPDX-License-Identifier: MIT
// Package: choice/rules
//
// borda.go — positional scoring rules.
//
// A scoring vector gives the points a voter awards to the candidate at each
// rank (0 = top). Schemes over n candidates, rank i:
//   • borda_0  → n-1-i     (n-1, …, 1, 0)
//   • borda_1  → n-i       (n, …, 2, 1)
//   • dowdall  → 1/(i+1)   (1, 1/2, …, 1/n)

package rules

import (
	"strings"

	"github.com/katalvlaran/choice/ranking"
)

// Scheme names a built-in scoring vector.
type Scheme string

const (
	BordaZero Scheme = "borda_0"
	BordaOne  Scheme = "borda_1"
	Dowdall   Scheme = "dowdall"
)

// Schemes lists the built-in schemes.
func Schemes() []Scheme { return []Scheme{BordaZero, BordaOne, Dowdall} }

// ParseScheme resolves a scheme name, case-insensitively.
func ParseScheme(name string) (Scheme, error) {
	s := Scheme(strings.ToLower(strings.TrimSpace(name)))
	switch s {
	case BordaZero, BordaOne, Dowdall:
		return s, nil
	}

	return "", rulesErrorf("ParseScheme", ErrUnknownScheme)
}

// ScoringVector returns the points per rank of scheme for n candidates.
func ScoringVector(scheme Scheme, n int) ([]float64, error) {
	if n < 1 {
		return nil, rulesErrorf("ScoringVector", ErrScoringLength)
	}
	points := make([]float64, n)
	for i := range points {
		switch scheme {
		case BordaZero:
			points[i] = float64(n - 1 - i)
		case BordaOne:
			points[i] = float64(n - i)
		case Dowdall:
			points[i] = 1 / float64(i+1)
		default:
			return nil, rulesErrorf("ScoringVector", ErrUnknownScheme)
		}
	}

	return points, nil
}

// Borda scores the electorate with a built-in scheme and returns the
// candidates tied for the highest total.
func Borda(e Electorate, scheme Scheme) (Winners, error) {
	if err := checkElectorate(e); err != nil {
		return nil, rulesErrorf("Borda", err)
	}
	points, err := ScoringVector(scheme, e.NumCandidates())
	if err != nil {
		return nil, rulesErrorf("Borda", err)
	}

	return Positional(e, points)
}

// Positional returns the candidates tied for the highest total under a
// custom points-per-rank vector of length numCandidates.
//
// Complexity: O(k·n).
func Positional(e Electorate, points []float64) (Winners, error) {
	scores, err := Scores(e, points)
	if err != nil {
		return nil, err
	}

	return argmax(e.Candidates(), func(c ranking.Candidate) float64 {
		return scores[c]
	}), nil
}

// Scores sums points[rank] per candidate across all voters.
func Scores(e Electorate, points []float64) (map[ranking.Candidate]float64, error) {
	if err := checkElectorate(e); err != nil {
		return nil, rulesErrorf("Scores", err)
	}
	if len(points) != e.NumCandidates() {
		return nil, rulesErrorf("Scores", ErrScoringLength)
	}

	totals := make(map[ranking.Candidate]float64, len(points))
	for _, c := range e.Candidates() {
		totals[c] = 0
	}
	for v := 0; v < e.NumVoters(); v++ {
		for rank, c := range e.Voter(v) {
			totals[c] += points[rank]
		}
	}

	return totals, nil
}
