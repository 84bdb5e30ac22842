// SPDX-License-Identifier: MIT
// Package: choice/mallows
//
// model.go — the Mallows culture over all preferences of a reference ranking.

package mallows

import (
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/choice/enumerate"
	"github.com/katalvlaran/choice/ranking"
)

// Model is a Mallows distribution centred on a reference ranking.
// It is immutable; its culture is computed on first use and reused.
type Model struct {
	reference ranking.Ranking
	phi       float64
	t         float64
	metric    ranking.Metric

	once    sync.Once
	culture *Culture
	err     error
}

// Culture is the fully enumerated distribution: Preferences[i] has
// probability Probabilities[i] and distance Distances[i] to the reference.
type Culture struct {
	Preferences   []ranking.Ranking
	Probabilities []float64
	Distances     []int
}

// New validates the parameters and returns a Model. The reference must be a
// valid ranking; φ must lie in (0,1].
func New(reference ranking.Ranking, phi float64, opts ...Option) (*Model, error) {
	if err := reference.Validate(); err != nil {
		return nil, mallowsErrorf("New", err)
	}
	if err := ValidateDispersion(phi); err != nil {
		return nil, mallowsErrorf("New", err)
	}
	cfg := newModelConfig(opts...)
	metric, err := ranking.LookupMetric(cfg.metric)
	if err != nil {
		return nil, mallowsErrorf("New", err)
	}

	return &Model{
		reference: reference.Clone(),
		phi:       phi,
		t:         cfg.transformation,
		metric:    metric,
	}, nil
}

// Reference returns a copy of the reference ranking.
func (m *Model) Reference() ranking.Ranking { return m.reference.Clone() }

// Dispersion returns φ.
func (m *Model) Dispersion() float64 { return m.phi }

// Transformation returns t.
func (m *Model) Transformation() float64 { return m.t }

// Culture enumerates every preference, its distance and its probability.
// The result is computed once per Model and shared; callers must not mutate it.
//
// Complexity: O(n²·n!) on first call.
func (m *Model) Culture() (*Culture, error) {
	m.once.Do(func() {
		m.culture, m.err = m.buildCulture()
	})

	return m.culture, m.err
}

func (m *Model) buildCulture() (*Culture, error) {
	prefs, err := enumerate.Preferences(m.reference)
	if err != nil {
		return nil, mallowsErrorf("Culture", err)
	}
	dists := make([]int, len(prefs))
	for i, p := range prefs {
		if dists[i], err = m.metric(p, m.reference); err != nil {
			return nil, mallowsErrorf("Culture", err)
		}
	}

	probs := make([]float64, len(prefs))
	if m.t == 0 {
		for i, d := range dists {
			if probs[i], err = PDF(d, len(m.reference), m.phi); err != nil {
				return nil, mallowsErrorf("Culture", err)
			}
		}
	} else {
		z, err := TransformedNormalizationConstant(m.phi, m.t, dists)
		if err != nil {
			return nil, mallowsErrorf("Culture", err)
		}
		for i, d := range dists {
			probs[i] = transformedWeight(d, m.phi, m.t) / z
		}
	}

	return &Culture{Preferences: prefs, Probabilities: probs, Distances: dists}, nil
}

// Probability returns the model probability of r.
func (m *Model) Probability(r ranking.Ranking) (float64, error) {
	c, err := m.Culture()
	if err != nil {
		return 0, err
	}
	d, err := m.metric(r, m.reference)
	if err != nil {
		return 0, mallowsErrorf("Probability", err)
	}
	if m.t == 0 {
		return PDF(d, len(m.reference), m.phi)
	}

	return TransformedPDF(d, m.phi, m.t, c.Distances)
}

// Sample draws k rankings i.i.d. (with replacement) from the model.
func (m *Model) Sample(src rand.Source, k int) ([]ranking.Ranking, error) {
	c, err := m.Culture()
	if err != nil {
		return nil, err
	}

	return c.Sample(src, k)
}

// Sample draws k preferences i.i.d. from the categorical distribution the
// culture defines. Returned rankings are fresh copies.
func (c *Culture) Sample(src rand.Source, k int) ([]ranking.Ranking, error) {
	if k < 1 {
		return nil, mallowsErrorf("Culture.Sample", ErrSampleSize)
	}
	cat := distuv.NewCategorical(c.Probabilities, src)
	out := make([]ranking.Ranking, k)
	for i := range out {
		out[i] = c.Preferences[int(cat.Rand())].Clone()
	}

	return out, nil
}
