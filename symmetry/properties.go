// SPDX-License-Identifier: MIT
// Package: choice/symmetry
//
// properties.go — anonymity and neutrality checks for deterministic rules.

package symmetry

import (
	"github.com/katalvlaran/choice/profile"
	"github.com/katalvlaran/choice/rules"
)

// IsAnonymous reports whether rule returns the same winners on every
// reordering of p's voters.
func IsAnonymous(p *profile.Profile, rule rules.Rule) (bool, error) {
	if rule == nil {
		return false, symmetryErrorf("IsAnonymous", ErrNilRule)
	}
	if err := checkProfile(p); err != nil {
		return false, symmetryErrorf("IsAnonymous", err)
	}
	base, err := rule(p)
	if err != nil {
		return false, symmetryErrorf("IsAnonymous", err)
	}
	perms, err := VoterPermutations(p)
	if err != nil {
		return false, err
	}
	for _, q := range perms {
		w, err := rule(q)
		if err != nil {
			return false, symmetryErrorf("IsAnonymous", err)
		}
		if !w.Equal(base) {
			return false, nil
		}
	}

	return true, nil
}

// IsNeutral reports whether relabeling the candidates relabels the winners
// the same way: rule(σ(p)) = σ(rule(p)) for every relabeling σ.
func IsNeutral(p *profile.Profile, rule rules.Rule) (bool, error) {
	if rule == nil {
		return false, symmetryErrorf("IsNeutral", ErrNilRule)
	}
	if err := checkProfile(p); err != nil {
		return false, symmetryErrorf("IsNeutral", err)
	}
	base, err := rule(p)
	if err != nil {
		return false, symmetryErrorf("IsNeutral", err)
	}
	rels, err := Relabelings(p.Candidates())
	if err != nil {
		return false, err
	}
	for _, rel := range rels[1:] {
		q, err := p.Rename(rel)
		if err != nil {
			return false, symmetryErrorf("IsNeutral", err)
		}
		got, err := rule(q)
		if err != nil {
			return false, symmetryErrorf("IsNeutral", err)
		}
		want, err := rel.ApplyAll(base)
		if err != nil {
			return false, symmetryErrorf("IsNeutral", err)
		}
		if !got.Equal(want) {
			return false, nil
		}
	}

	return true, nil
}
