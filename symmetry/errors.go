// SPDX-License-Identifier: MIT
// Package: choice/symmetry
//
// errors.go — sentinel errors for symmetry enumeration.

package symmetry

import (
	"fmt"

	"github.com/katalvlaran/choice/ranking"
)

var (
	// ErrNilProfile indicates a nil or voterless profile.
	ErrNilProfile = fmt.Errorf("symmetry: profile is nil or has no voters: %w", ranking.ErrInvalidInput)

	// ErrNilRule indicates a property check without a rule.
	ErrNilRule = fmt.Errorf("symmetry: rule is nil: %w", ranking.ErrInvalidInput)
)

func symmetryErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
