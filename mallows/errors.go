// SPDX-License-Identifier: MIT
// Package: choice/mallows
//
// errors.go — sentinel errors for the mallows package.

package mallows

import (
	"fmt"

	"github.com/katalvlaran/choice/ranking"
)

var (
	// ErrInvalidDispersion indicates φ outside (0,1] (NaN included).
	ErrInvalidDispersion = fmt.Errorf("mallows: dispersion must lie in (0,1]: %w", ranking.ErrInvalidParameter)

	// ErrInvalidTransformation indicates a NaN or infinite transformation t.
	ErrInvalidTransformation = fmt.Errorf("mallows: transformation must be finite: %w", ranking.ErrInvalidParameter)

	// ErrInvalidAlternatives indicates n < 1 for the closed-form constant.
	ErrInvalidAlternatives = fmt.Errorf("mallows: number of alternatives must be >= 1: %w", ranking.ErrInvalidInput)

	// ErrNegativeDistance indicates a negative distance passed to a PDF.
	ErrNegativeDistance = fmt.Errorf("mallows: distance must be >= 0: %w", ranking.ErrInvalidInput)

	// ErrNoDistances indicates an empty distance list for the transformed constant.
	ErrNoDistances = fmt.Errorf("mallows: distance list is empty: %w", ranking.ErrInvalidInput)

	// ErrSampleSize indicates a request for fewer than one draw.
	ErrSampleSize = fmt.Errorf("mallows: sample size must be >= 1: %w", ranking.ErrInvalidInput)
)

// mallowsErrorf wraps err with the method context.
func mallowsErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
