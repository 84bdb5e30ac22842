// SPDX-License-Identifier: MIT
// Package: choice/mallows
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors panic on meaningless values (NaN/Inf t).
//   • Named lookups that can legitimately fail (metric names) are resolved
//     in New and surface as errors.

package mallows

import (
	"math"

	"github.com/katalvlaran/choice/ranking"
)

// Option customizes a Model.
type Option func(*modelConfig)

type modelConfig struct {
	transformation float64
	metric         string
}

func newModelConfig(opts ...Option) modelConfig {
	cfg := modelConfig{
		transformation: 0,
		metric:         ranking.MetricKendallTau,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTransformation sets the distance exponent parameter t (weights become
// φ^(d^{e^t})). Panics on NaN or ±Inf.
func WithTransformation(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		panic("mallows: WithTransformation(non-finite)")
	}
	return func(c *modelConfig) {
		c.transformation = t
	}
}

// WithMetric selects the ranking distance by name. Only "kendall-tau" is
// registered; other names make New fail with ranking.ErrUnknownMetric.
func WithMetric(name string) Option {
	return func(c *modelConfig) {
		c.metric = name
	}
}
