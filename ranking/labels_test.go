package ranking_test

import (
	"testing"

	"github.com/katalvlaran/choice/ranking"
	"github.com/stretchr/testify/require"
)

// assertPanics fails the test if fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

func TestLabelFn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		idx  int
		want string
	}{
		{0, "a"},
		{1, "b"},
		{25, "z"},
		{26, "aa"},
		{27, "ab"},
		{51, "az"},
		{52, "ba"},
		{701, "zz"},
		{702, "aaa"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, ranking.LabelFn(tc.idx), "idx=%d", tc.idx)
	}
	assertPanics(t, func() { ranking.LabelFn(-1) }, "LabelFn(-1)")
}

func TestLexicographicLabels(t *testing.T) {
	got, err := ranking.LexicographicLabels(3)
	require.NoError(t, err)
	require.Equal(t, []ranking.Candidate{"a", "b", "c"}, got)

	got, err = ranking.LexicographicLabels(28)
	require.NoError(t, err)
	require.Len(t, got, 28)
	require.Equal(t, ranking.Candidate("z"), got[25])
	require.Equal(t, ranking.Candidate("ab"), got[27])

	got, err = ranking.LexicographicLabels(0)
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = ranking.LexicographicLabels(-2)
	require.ErrorIs(t, err, ranking.ErrNegativeCount)
	require.ErrorIs(t, err, ranking.ErrInvalidInput)
}
