package mallows_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/choice/enumerate"
	"github.com/katalvlaran/choice/mallows"
	"github.com/katalvlaran/choice/ranking"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

const sumTol = 1e-9

func labels(t *testing.T, n int) ranking.Ranking {
	t.Helper()
	l, err := ranking.LexicographicLabels(n)
	require.NoError(t, err)
	return l
}

func TestNormalizationConstant_ClosedForm(t *testing.T) {
	tests := []struct {
		name string
		n    int
		phi  float64
		want float64
	}{
		{"single alternative", 1, 0.3, 1},
		{"two alternatives", 2, 0.5, 1.5},
		{"three alternatives", 3, 0.5, 1.5 * 1.75},
		{"uniform is n!", 4, 1, 24},
	}
	for _, tc := range tests {
		got, err := mallows.NormalizationConstant(tc.n, tc.phi)
		require.NoError(t, err, tc.name)
		require.InDelta(t, tc.want, got, 1e-12, tc.name)
	}
}

func TestNormalizationConstant_Errors(t *testing.T) {
	for _, phi := range []float64{0, -0.1, 1.0001, math.NaN()} {
		_, err := mallows.NormalizationConstant(3, phi)
		require.ErrorIs(t, err, mallows.ErrInvalidDispersion)
		require.ErrorIs(t, err, ranking.ErrInvalidParameter)
	}
	_, err := mallows.NormalizationConstant(0, 0.5)
	require.ErrorIs(t, err, mallows.ErrInvalidAlternatives)
}

func TestClosedFormMatchesEnumeration(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for _, phi := range []float64{0.05, 0.3, 0.5, 0.9, 1} {
			ref := labels(t, n)
			prefs, err := enumerate.Preferences(ref)
			require.NoError(t, err)
			dists := make([]int, len(prefs))
			for i, p := range prefs {
				dists[i], err = ranking.KendallTau(p, ref)
				require.NoError(t, err)
			}
			closed, err := mallows.NormalizationConstant(n, phi)
			require.NoError(t, err)
			enumerated, err := mallows.TransformedNormalizationConstant(phi, 0, dists)
			require.NoError(t, err)
			require.InDelta(t, closed, enumerated, 1e-9*closed, "n=%d phi=%v", n, phi)
		}
	}
}

func TestCulture_SumsToOne(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for _, phi := range []float64{0.01, 0.2, 0.5, 0.8, 1} {
			for _, tr := range []float64{0, -1, 0.5, 1.5} {
				m, err := mallows.New(labels(t, n), phi, mallows.WithTransformation(tr))
				require.NoError(t, err)
				c, err := m.Culture()
				require.NoError(t, err)
				require.Len(t, c.Preferences, enumerate.Count(n))
				require.InDelta(t, 1.0, floats.Sum(c.Probabilities), sumTol,
					"n=%d phi=%v t=%v", n, phi, tr)
			}
		}
	}
}

func TestCulture_UniformAtPhiOne(t *testing.T) {
	for _, tr := range []float64{0, 2} {
		m, err := mallows.New(labels(t, 4), 1, mallows.WithTransformation(tr))
		require.NoError(t, err)
		c, err := m.Culture()
		require.NoError(t, err)
		for _, p := range c.Probabilities {
			require.InDelta(t, 1.0/24.0, p, 1e-12)
		}
	}
}

func TestCulture_ReferenceIsMode(t *testing.T) {
	ref := ranking.Ranking{"c", "a", "b", "d"}
	m, err := mallows.New(ref, 0.4)
	require.NoError(t, err)
	c, err := m.Culture()
	require.NoError(t, err)

	best := floats.MaxIdx(c.Probabilities)
	require.Equal(t, ref, c.Preferences[best])
	require.Zero(t, c.Distances[best])

	// probability decreases with distance
	for i := range c.Preferences {
		for j := range c.Preferences {
			if c.Distances[i] < c.Distances[j] {
				require.Greater(t, c.Probabilities[i], c.Probabilities[j])
			}
		}
	}
}

func TestTransformedAtZeroMatchesClassical(t *testing.T) {
	ref := labels(t, 5)
	classical, err := mallows.New(ref, 0.35)
	require.NoError(t, err)
	c, err := classical.Culture()
	require.NoError(t, err)

	for i, d := range c.Distances {
		tp, err := mallows.TransformedPDF(d, 0.35, 0, c.Distances)
		require.NoError(t, err)
		require.InDelta(t, c.Probabilities[i], tp, 1e-12)

		p, err := mallows.PDF(d, len(ref), 0.35)
		require.NoError(t, err)
		require.InDelta(t, p, tp, 1e-12)
	}
}

func TestModel_Probability(t *testing.T) {
	ref := ranking.Ranking{"a", "b", "c"}
	m, err := mallows.New(ref, 0.5, mallows.WithTransformation(0.7))
	require.NoError(t, err)
	c, err := m.Culture()
	require.NoError(t, err)
	for i, pref := range c.Preferences {
		p, err := m.Probability(pref)
		require.NoError(t, err)
		require.InDelta(t, c.Probabilities[i], p, 1e-12)
	}

	_, err = m.Probability(ranking.Ranking{"a", "b", "x"})
	require.ErrorIs(t, err, ranking.ErrCandidateMismatch)
}

func TestNew_Errors(t *testing.T) {
	_, err := mallows.New(ranking.Ranking{"a", "b"}, 0)
	require.ErrorIs(t, err, mallows.ErrInvalidDispersion)

	_, err = mallows.New(ranking.Ranking{"a", "b"}, 1.5)
	require.ErrorIs(t, err, mallows.ErrInvalidDispersion)

	_, err = mallows.New(nil, 0.5)
	require.ErrorIs(t, err, ranking.ErrEmptyRanking)

	_, err = mallows.New(ranking.Ranking{"a", "b"}, 0.5, mallows.WithMetric("footrule"))
	require.ErrorIs(t, err, ranking.ErrUnknownMetric)

	m, err := mallows.New(ranking.Ranking{"a", "b"}, 0.5, mallows.WithMetric("kendalltau"))
	require.NoError(t, err)
	require.Equal(t, 0.5, m.Dispersion())
	require.Zero(t, m.Transformation())
	require.Equal(t, ranking.Ranking{"a", "b"}, m.Reference())
}

func TestWithTransformation_Panics(t *testing.T) {
	require.Panics(t, func() { mallows.WithTransformation(math.NaN()) })
	require.Panics(t, func() { mallows.WithTransformation(math.Inf(1)) })
}

func TestPDF_Errors(t *testing.T) {
	_, err := mallows.PDF(-1, 3, 0.5)
	require.ErrorIs(t, err, mallows.ErrNegativeDistance)

	_, err = mallows.TransformedPDF(1, 0.5, 0, nil)
	require.ErrorIs(t, err, mallows.ErrNoDistances)

	_, err = mallows.TransformedNormalizationConstant(0.5, math.NaN(), []int{0, 1})
	require.ErrorIs(t, err, mallows.ErrInvalidTransformation)
}

func TestSample_Deterministic(t *testing.T) {
	m, err := mallows.New(labels(t, 4), 0.3)
	require.NoError(t, err)

	a, err := m.Sample(rand.New(rand.NewPCG(7, 11)), 25)
	require.NoError(t, err)
	b, err := m.Sample(rand.New(rand.NewPCG(7, 11)), 25)
	require.NoError(t, err)
	require.Equal(t, a, b)
	for _, r := range a {
		require.True(t, ranking.SameCandidates(r, labels(t, 4)))
	}

	_, err = m.Sample(rand.NewPCG(1, 1), 0)
	require.ErrorIs(t, err, mallows.ErrSampleSize)
}

func TestSample_ConcentratesNearReference(t *testing.T) {
	ref := labels(t, 4)
	m, err := mallows.New(ref, 0.05)
	require.NoError(t, err)
	draws, err := m.Sample(rand.New(rand.NewPCG(3, 5)), 500)
	require.NoError(t, err)

	hits := 0
	for _, r := range draws {
		if r.Equal(ref) {
			hits++
		}
	}
	// P(ref) = 1/Z ≈ 0.86 for n=4, φ=0.05
	require.Greater(t, hits, 380)
}
