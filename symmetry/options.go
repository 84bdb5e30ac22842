// SPDX-License-Identifier: MIT
// Package: choice/symmetry
//
// options.go — enumeration options.

package symmetry

// Option customizes an enumeration.
type Option func(*config)

type config struct {
	includeOriginal bool
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOriginal keeps the profile equal to the input in the result.
// By default it is excluded.
func WithOriginal() Option {
	return func(c *config) { c.includeOriginal = true }
}
