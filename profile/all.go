// SPDX-License-Identifier: MIT
// Package: choice/profile
//
// all.go — exhaustive profile enumeration.

package profile

import (
	"slices"

	"github.com/katalvlaran/choice/enumerate"
	"github.com/katalvlaran/choice/ranking"
)

// All returns every profile of numVoters voters over the spec's candidates,
// (n!)^numVoters profiles in total. Intended for n ≤ 5 and numVoters ≤ 4;
// larger requests fail with enumerate.ErrTooLarge.
//
// Complexity: O(k·n·(n!)^k) time and space.
func All(spec any, numVoters int) ([]*Profile, error) {
	cs, err := resolveGeneration(spec, numVoters)
	if err != nil {
		return nil, profileErrorf("All", err)
	}
	electorates, err := enumerate.Electorates(cs.sorted, numVoters)
	if err != nil {
		return nil, profileErrorf("All", err)
	}

	out := make([]*Profile, len(electorates))
	for i, voters := range electorates {
		owned := make([]ranking.Ranking, len(voters))
		for v, r := range voters {
			owned[v] = r.Clone()
		}
		out[i] = &Profile{voters: owned, candidates: slices.Clone(cs.sorted)}
	}

	return out, nil
}
