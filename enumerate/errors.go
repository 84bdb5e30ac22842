// SPDX-License-Identifier: MIT
// Package: choice/enumerate
//
// errors.go — sentinel errors for the enumerate package. Each wraps one
// classification sentinel from package ranking.

package enumerate

import (
	"fmt"

	"github.com/katalvlaran/choice/ranking"
)

var (
	// ErrNoCandidates indicates an empty candidate list.
	ErrNoCandidates = fmt.Errorf("enumerate: no candidates: %w", ranking.ErrInvalidInput)

	// ErrNoVoters indicates numVoters < 1.
	ErrNoVoters = fmt.Errorf("enumerate: voter count must be >= 1: %w", ranking.ErrInvalidInput)

	// ErrTooLarge indicates the requested enumeration would exceed Limit objects.
	ErrTooLarge = fmt.Errorf("enumerate: enumeration exceeds limit: %w", ranking.ErrInvalidParameter)
)

// enumerateErrorf wraps err with the method context.
func enumerateErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
