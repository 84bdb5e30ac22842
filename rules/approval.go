// SPDX-License-Identifier: MIT
// Package: choice/rules
//
// approval.go — approval voting over ranking prefixes.

package rules

import "github.com/katalvlaran/choice/ranking"

// Approval lets each voter approve a prefix of their ranking and returns
// the candidates with the most approvals.
//
// With WithApprovalLength(k) every voter approves their top k (k ≤ n).
// Otherwise each voter draws a length uniformly from [1, n-1]; with a
// single candidate the length is 1.
//
// Complexity: O(k·n).
func Approval(e Electorate, opts ...Option) (Winners, error) {
	return approval(e, newRuleConfig(opts...))
}

func approval(e Electorate, cfg ruleConfig) (Winners, error) {
	if err := checkElectorate(e); err != nil {
		return nil, rulesErrorf("Approval", err)
	}
	n := e.NumCandidates()
	if cfg.approvalLength > n {
		return nil, rulesErrorf("Approval", ErrApprovalLength)
	}

	approvals := make(map[ranking.Candidate]int, n)
	for i := 0; i < e.NumVoters(); i++ {
		length := cfg.approvalLength
		if length == 0 {
			length = 1
			if n > 1 {
				length = 1 + cfg.rng.IntN(n-1)
			}
		}
		for _, c := range e.Voter(i)[:length] {
			approvals[c]++
		}
	}

	return argmax(e.Candidates(), func(c ranking.Candidate) float64 {
		return float64(approvals[c])
	}), nil
}
