// SPDX-License-Identifier: MIT
// Package: choice/experiment
//
// errors.go — sentinel errors for experiment configuration and runs.

package experiment

import (
	"fmt"

	"github.com/katalvlaran/choice/ranking"
)

var (
	// ErrInvalidConfig indicates a configuration rejected by validation.
	ErrInvalidConfig = fmt.Errorf("experiment: invalid configuration: %w", ranking.ErrInvalidParameter)

	// ErrDecodeConfig indicates YAML that does not decode into a Config.
	ErrDecodeConfig = fmt.Errorf("experiment: cannot decode configuration: %w", ranking.ErrInvalidInput)
)

// experimentErrorf wraps err with the operation and, when trial ≥ 0, the
// trial index.
func experimentErrorf(op string, trial int, err error) error {
	if trial < 0 {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s(trial %d): %w", op, trial, err)
}
