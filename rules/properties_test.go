package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/choice/profile"
	"github.com/katalvlaran/choice/rules"
)

// TestProperties checks structural guarantees on every 3-voter profile
// over three candidates.
func TestProperties(t *testing.T) {
	all, err := profile.All(3, 3)
	require.NoError(t, err)
	require.Len(t, all, 216)

	for _, p := range all {
		cands := p.Candidates()

		plural, err := rules.Plurality(p)
		require.NoError(t, err)
		require.NotEmpty(t, plural, p.String())
		for _, c := range plural {
			require.Contains(t, cands, c)
		}

		major, err := rules.Majority(p)
		require.NoError(t, err)
		require.LessOrEqual(t, len(major), 1)
		for _, c := range major {
			require.True(t, plural.Contains(c), "majority ⊆ plurality: %s", p)
		}

		cond, err := rules.Condorcet(p)
		require.NoError(t, err)
		require.LessOrEqual(t, len(cond), 1)
		if len(cond) == 1 {
			m, err := rules.PairwiseMatrix(p)
			require.NoError(t, err)
			w := indexOf(cands, cond[0])
			for j := range cands {
				if j != w {
					require.Greater(t, m.At(w, j), m.At(j, w), "%s beats %s: %s", cond[0], cands[j], p)
				}
			}
		}

		borda, err := rules.Borda(p, rules.BordaZero)
		require.NoError(t, err)
		require.NotEmpty(t, borda)
	}
}

func indexOf[T comparable](xs []T, x T) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}
