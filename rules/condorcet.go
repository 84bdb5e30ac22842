// SPDX-License-Identifier: MIT
// Package: choice/rules
//
// condorcet.go — pairwise-majority matrix and the Condorcet winner.
//
// Matrix layout: rows and columns follow Electorate.Candidates() (sorted).
// Entry (i, j) counts the voters ranking candidate i above candidate j;
// the diagonal is zero and (i, j) + (j, i) = numVoters.

package rules

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/choice/ranking"
)

// PairwiseMatrix builds the n×n pairwise-majority matrix.
//
// Complexity: O(k·n²) time, O(n²) space.
func PairwiseMatrix(e Electorate) (*mat.Dense, error) {
	if err := checkElectorate(e); err != nil {
		return nil, rulesErrorf("PairwiseMatrix", err)
	}

	return pairwise(e), nil
}

func pairwise(e Electorate) *mat.Dense {
	cands := e.Candidates()
	n := len(cands)
	index := make(map[ranking.Candidate]int, n)
	for i, c := range cands {
		index[c] = i
	}

	m := mat.NewDense(n, n, nil)
	for v := 0; v < e.NumVoters(); v++ {
		r := e.Voter(v)
		for hi := 0; hi < len(r); hi++ {
			a := index[r[hi]]
			for lo := hi + 1; lo < len(r); lo++ {
				b := index[r[lo]]
				m.Set(a, b, m.At(a, b)+1)
			}
		}
	}

	return m
}

// Condorcet returns the candidate preferred by a strict majority over every
// other candidate, or the empty set when majorities are cyclic or tied.
// The winner, when it exists, is unique.
func Condorcet(e Electorate) (Winners, error) {
	if err := checkElectorate(e); err != nil {
		return nil, rulesErrorf("Condorcet", err)
	}
	m := pairwise(e)
	cands := e.Candidates()
	half := float64(e.NumVoters()) / 2

	for i, c := range cands {
		beatsAll := true
		for j := range cands {
			if i != j && m.At(i, j) <= half {
				beatsAll = false
				break
			}
		}
		if beatsAll {
			return Winners{c}, nil
		}
	}

	return Winners{}, nil
}
