package profile_test

import (
	"testing"

	"github.com/katalvlaran/choice/profile"
	"github.com/katalvlaran/choice/ranking"
	"github.com/stretchr/testify/require"
)

func scenario(t *testing.T) *profile.Profile {
	t.Helper()
	p, err := profile.FromVoters([]ranking.Ranking{
		{"a", "b", "c"},
		{"a", "c", "b"},
		{"c", "b", "a"},
	})
	require.NoError(t, err)
	return p
}

func TestFromVoters_Accessors(t *testing.T) {
	p := scenario(t)
	require.Equal(t, 3, p.NumVoters())
	require.Equal(t, 3, p.NumCandidates())
	require.Equal(t, []ranking.Candidate{"a", "b", "c"}, p.Candidates())
	require.Equal(t, ranking.Ranking{"c", "b", "a"}, p.Voter(2))
	require.Equal(t, []string{"abc", "acb", "cba"}, p.Condensed())
	require.False(t, p.Empty())
}

func TestFromVoters_CandidatesSortedFromFirstVoter(t *testing.T) {
	p, err := profile.FromVoters([]ranking.Ranking{{"z", "x", "y"}})
	require.NoError(t, err)
	require.Equal(t, []ranking.Candidate{"x", "y", "z"}, p.Candidates())
}

func TestFromVoters_Errors(t *testing.T) {
	_, err := profile.FromVoters(nil)
	require.ErrorIs(t, err, profile.ErrNoVoters)
	require.ErrorIs(t, err, ranking.ErrInvalidInput)

	_, err = profile.FromVoters([]ranking.Ranking{{"a", "b"}, {"a", "c"}})
	require.ErrorIs(t, err, profile.ErrVoterMismatch)

	_, err = profile.FromVoters([]ranking.Ranking{{"a", "a"}})
	require.ErrorIs(t, err, ranking.ErrDuplicateCandidate)

	_, err = profile.FromVoters([]ranking.Ranking{{}})
	require.ErrorIs(t, err, ranking.ErrEmptyRanking)
}

func TestProfile_OwnsVoters(t *testing.T) {
	in := []ranking.Ranking{{"a", "b"}, {"b", "a"}}
	p, err := profile.FromVoters(in)
	require.NoError(t, err)

	in[0][0] = "b" // caller mutation must not leak in
	require.Equal(t, ranking.Ranking{"a", "b"}, p.Voter(0))

	out := p.Voters()
	out[1][0] = "a" // nor leak out
	require.Equal(t, ranking.Ranking{"b", "a"}, p.Voter(1))

	cands := p.Candidates()
	cands[0] = "zz"
	require.Equal(t, []ranking.Candidate{"a", "b"}, p.Candidates())
}

func TestProfile_Equal(t *testing.T) {
	a := scenario(t)
	b := scenario(t)
	require.True(t, a.Equal(b))
	require.Equal(t, a.Key(), b.Key())

	reordered, err := profile.FromVoters([]ranking.Ranking{
		{"c", "b", "a"},
		{"a", "b", "c"},
		{"a", "c", "b"},
	})
	require.NoError(t, err)
	require.False(t, a.Equal(reordered), "voter order matters")
	require.NotEqual(t, a.Key(), reordered.Key())
	require.False(t, a.Equal(nil))
	require.True(t, a.Equal(a.Clone()))
}

func TestProfile_Summary(t *testing.T) {
	p, err := profile.FromVoters([]ranking.Ranking{
		{"b", "a"},
		{"a", "b"},
		{"b", "a"},
	})
	require.NoError(t, err)
	require.Equal(t, []profile.SummaryEntry{
		{Ranking: "ab", Count: 1},
		{Ranking: "ba", Count: 2},
	}, p.Summary())
	require.Equal(t, "2 candidates, 3 voters | ab:1 | ba:2", p.String())
	require.Equal(t, "empty profile", profile.New().String())
}

func TestProfile_SummaryCaseInsensitive(t *testing.T) {
	p, err := profile.FromVoters([]ranking.Ranking{
		{"B", "a"},
		{"a", "B"},
		{"B", "a"},
	})
	require.NoError(t, err)
	got := p.Summary()
	require.Len(t, got, 2)
	// "aB" < "Ba" case-insensitively although 'B' < 'a' bytewise
	require.Equal(t, "aB", got[0].Ranking)
	require.Equal(t, "Ba", got[1].Ranking)
}

func TestProfile_Rename(t *testing.T) {
	p := scenario(t)
	rel, err := ranking.FromOrders(ranking.Ranking{"a", "b", "c"}, ranking.Ranking{"b", "c", "a"})
	require.NoError(t, err)

	renamed, err := p.Rename(rel)
	require.NoError(t, err)
	require.Equal(t, []string{"bca", "bac", "acb"}, renamed.Condensed())
	require.Equal(t, []string{"abc", "acb", "cba"}, p.Condensed(), "receiver untouched")

	bad, err := ranking.FromOrders(ranking.Ranking{"a", "b"}, ranking.Ranking{"b", "a"})
	require.NoError(t, err)
	_, err = p.Rename(bad)
	require.ErrorIs(t, err, ranking.ErrCandidateMismatch)

	_, err = profile.New().Rename(rel)
	require.ErrorIs(t, err, profile.ErrNoVoters)
}

func TestSetCandidates(t *testing.T) {
	tests := []struct {
		name string
		spec any
		want []ranking.Candidate
	}{
		{"count", 3, []ranking.Candidate{"a", "b", "c"}},
		{"strings sorted", []string{"c", "a", "b"}, []ranking.Candidate{"a", "b", "c"}},
		{"deduplicated", []string{"b", "a", "b"}, []ranking.Candidate{"a", "b"}},
		{"candidates", []ranking.Candidate{"y", "x"}, []ranking.Candidate{"x", "y"}},
		{"ranking", ranking.Ranking{"q", "p"}, []ranking.Candidate{"p", "q"}},
	}
	for _, tc := range tests {
		p := profile.New()
		require.NoError(t, p.SetCandidates(tc.spec), tc.name)
		require.Equal(t, tc.want, p.Candidates(), tc.name)
		require.Equal(t, len(tc.want), p.NumCandidates(), tc.name)
		require.Zero(t, p.NumVoters(), tc.name)
	}
}

func TestSetCandidates_Errors(t *testing.T) {
	p := scenario(t)
	for _, spec := range []any{2.5, "abc", map[string]int{}, nil} {
		err := p.SetCandidates(spec)
		require.ErrorIs(t, err, profile.ErrUnsupportedCandidates, "%v", spec)
		require.ErrorIs(t, err, ranking.ErrInvalidInput)
	}
	require.ErrorIs(t, p.SetCandidates(0), profile.ErrNoCandidates)
	require.ErrorIs(t, p.SetCandidates([]string{}), profile.ErrNoCandidates)
	require.Equal(t, 3, p.NumVoters(), "failed calls leave the profile untouched")
}

func TestAll(t *testing.T) {
	all, err := profile.All([]string{"a", "b", "c"}, 2)
	require.NoError(t, err)
	require.Len(t, all, 36)

	seen := make(map[string]struct{}, len(all))
	for _, p := range all {
		require.Equal(t, 2, p.NumVoters())
		require.Equal(t, []ranking.Candidate{"a", "b", "c"}, p.Candidates())
		seen[p.Key()] = struct{}{}
	}
	require.Len(t, seen, 36)

	_, err = profile.All(3, 0)
	require.ErrorIs(t, err, profile.ErrNoVoters)
}
