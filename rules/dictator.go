// SPDX-License-Identifier: MIT
// Package: choice/rules
//
// dictator.go — one voter decides.

package rules

// DictatorAt returns voter i's top candidate.
// Fails with ErrVoterIndex when i is outside [0, numVoters).
func DictatorAt(e Electorate, i int) (Winners, error) {
	if err := checkElectorate(e); err != nil {
		return nil, rulesErrorf("DictatorAt", err)
	}
	if i < 0 || i >= e.NumVoters() {
		return nil, rulesErrorf("DictatorAt", ErrVoterIndex)
	}

	return Winners{e.Voter(i).Top()}, nil
}

// Dictator picks a voter uniformly at random (or the one fixed by
// WithVoter) and returns their top candidate.
func Dictator(e Electorate, opts ...Option) (Winners, error) {
	return dictator(e, newRuleConfig(opts...))
}

func dictator(e Electorate, cfg ruleConfig) (Winners, error) {
	if cfg.hasVoter {
		return DictatorAt(e, cfg.voter)
	}
	if err := checkElectorate(e); err != nil {
		return nil, rulesErrorf("Dictator", err)
	}

	return Winners{e.Voter(cfg.rng.IntN(e.NumVoters())).Top()}, nil
}
