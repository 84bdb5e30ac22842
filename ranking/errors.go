// SPDX-License-Identifier: MIT
// Package: choice/ranking
//
// errors.go — error taxonomy shared by every choice package.
//
// Error policy:
//   • Three classification sentinels (ErrInvalidInput, ErrInvalidParameter,
//     ErrIndexOutOfRange) name the KIND of failure.
//   • Specific sentinels (here and in sibling packages) wrap exactly one kind,
//     so callers may branch on either: errors.Is(err, ErrUnknownMetric) or
//     errors.Is(err, ErrInvalidParameter).
//   • Call sites add method context with rankingErrorf(method, err).
//   • Empty winner sets (Condorcet, majority) are results, never errors.

package ranking

import (
	"errors"
	"fmt"
)

// ErrInvalidInput classifies malformed inputs: a non-list where a list is
// required, an empty input where at least one element is required, or a
// candidate-set specification of an unsupported type.
var ErrInvalidInput = errors.New("choice: invalid input")

// ErrInvalidParameter classifies out-of-domain scalar or named parameters:
// dispersion outside (0,1], unknown rule / scheme / metric names.
var ErrInvalidParameter = errors.New("choice: invalid parameter")

// ErrIndexOutOfRange classifies positional lookups outside [0, len).
var ErrIndexOutOfRange = errors.New("choice: index out of range")

var (
	// ErrEmptyRanking is returned when an operation requires at least one candidate.
	ErrEmptyRanking = fmt.Errorf("ranking: empty ranking: %w", ErrInvalidInput)

	// ErrDuplicateCandidate is returned when a ranking lists a candidate twice.
	ErrDuplicateCandidate = fmt.Errorf("ranking: duplicate candidate: %w", ErrInvalidInput)

	// ErrCandidateMismatch is returned when two rankings are not permutations
	// of the same candidate set.
	ErrCandidateMismatch = fmt.Errorf("ranking: rankings cover different candidates: %w", ErrInvalidInput)

	// ErrUnknownMetric is returned for a distance metric name that is not registered.
	ErrUnknownMetric = fmt.Errorf("ranking: unknown distance metric: %w", ErrInvalidParameter)

	// ErrNotBijection is returned when a relabeling is not a bijection of a
	// candidate set onto itself.
	ErrNotBijection = fmt.Errorf("ranking: relabeling is not a bijection: %w", ErrInvalidInput)

	// ErrNegativeCount is returned by LexicographicLabels for n < 0.
	ErrNegativeCount = fmt.Errorf("ranking: negative label count: %w", ErrInvalidInput)
)

// rankingErrorf prefixes err with the method name, keeping err matchable.
func rankingErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
