package enumerate_test

import (
	"testing"

	"github.com/katalvlaran/choice/enumerate"
	"github.com/katalvlaran/choice/ranking"
	"github.com/stretchr/testify/require"
)

func TestPreferences_ThreeCandidates(t *testing.T) {
	cands := ranking.Candidates("a", "b", "c")
	prefs, err := enumerate.Preferences(cands)
	require.NoError(t, err)
	require.Len(t, prefs, 6)

	seen := make(map[string]struct{}, len(prefs))
	for _, p := range prefs {
		require.NoError(t, p.Validate())
		require.True(t, ranking.SameCandidates(p, cands))
		seen[p.Key()] = struct{}{}
	}
	require.Len(t, seen, 6, "permutations must be distinct")
}

func TestPreferences_CompleteAndUnique(t *testing.T) {
	for n := 1; n <= 6; n++ {
		labels, err := ranking.LexicographicLabels(n)
		require.NoError(t, err)
		prefs, err := enumerate.Preferences(labels)
		require.NoError(t, err)
		require.Len(t, prefs, enumerate.Count(n))

		seen := make(map[string]struct{}, len(prefs))
		for _, p := range prefs {
			seen[p.Key()] = struct{}{}
		}
		require.Len(t, seen, len(prefs), "n=%d", n)
	}
}

func TestPreferences_Deterministic(t *testing.T) {
	cands := ranking.Candidates("x", "y", "z", "w")
	first, err := enumerate.Preferences(cands)
	require.NoError(t, err)
	second, err := enumerate.Preferences(cands)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestPreferences_Errors(t *testing.T) {
	_, err := enumerate.Preferences(nil)
	require.ErrorIs(t, err, enumerate.ErrNoCandidates)
	require.ErrorIs(t, err, ranking.ErrInvalidInput)

	_, err = enumerate.Preferences(ranking.Candidates("a", "a"))
	require.ErrorIs(t, err, ranking.ErrDuplicateCandidate)

	labels, err := ranking.LexicographicLabels(12)
	require.NoError(t, err)
	_, err = enumerate.Preferences(labels)
	require.ErrorIs(t, err, enumerate.ErrTooLarge)
	require.ErrorIs(t, err, ranking.ErrInvalidParameter)
}

func TestPreferencesCondensed(t *testing.T) {
	got, err := enumerate.PreferencesCondensed(ranking.Candidates("a", "b", "c"))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"abc", "acb", "bac", "bca", "cab", "cba"}, got)
}

func TestElectorates(t *testing.T) {
	cands := ranking.Candidates("a", "b", "c")
	all, err := enumerate.Electorates(cands, 2)
	require.NoError(t, err)
	require.Len(t, all, 36)

	seen := make(map[string]struct{}, len(all))
	for _, voters := range all {
		require.Len(t, voters, 2)
		seen[voters[0].Key()+"|"+voters[1].Key()] = struct{}{}
	}
	require.Len(t, seen, 36)

	_, err = enumerate.Electorates(cands, 0)
	require.ErrorIs(t, err, enumerate.ErrNoVoters)

	_, err = enumerate.Electorates(ranking.Candidates("a", "b", "c", "d", "e", "f"), 4)
	require.ErrorIs(t, err, enumerate.ErrTooLarge)
}

func TestCount(t *testing.T) {
	require.Equal(t, 1, enumerate.Count(1))
	require.Equal(t, 120, enumerate.Count(5))
	require.Equal(t, -1, enumerate.Count(11))
	require.Equal(t, 216, enumerate.CountElectorates(3, 3))
	require.Equal(t, 13824, enumerate.CountElectorates(4, 3))
	require.Equal(t, -1, enumerate.CountElectorates(6, 4))
}
