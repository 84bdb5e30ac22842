// SPDX-License-Identifier: MIT
// Package: choice/profile
//
// errors.go — sentinel errors for the profile package.
//
// Error policy:
//   • Callers branch with errors.Is on either the specific sentinel or its
//     classification (ranking.ErrInvalidInput / ErrInvalidParameter).
//   • Generation methods validate everything before touching the receiver:
//     on error the Profile is left exactly as it was.

package profile

import (
	"fmt"

	"github.com/katalvlaran/choice/ranking"
)

var (
	// ErrNoCandidates indicates an empty candidate list or a count < 1.
	ErrNoCandidates = fmt.Errorf("profile: at least one candidate is required: %w", ranking.ErrInvalidInput)

	// ErrNoVoters indicates an empty voter list or numVoters < 1.
	ErrNoVoters = fmt.Errorf("profile: at least one voter is required: %w", ranking.ErrInvalidInput)

	// ErrUnsupportedCandidates indicates a candidate spec that is neither an
	// integer count nor a list of labels.
	ErrUnsupportedCandidates = fmt.Errorf("profile: unsupported candidate specification: %w", ranking.ErrInvalidInput)

	// ErrVoterMismatch indicates a voter that is not a permutation of the
	// profile's candidate set.
	ErrVoterMismatch = fmt.Errorf("profile: voter does not rank the profile candidates: %w", ranking.ErrInvalidInput)

	// ErrInvalidNoise indicates a negative or non-finite noise deviation σ.
	ErrInvalidNoise = fmt.Errorf("profile: noise deviation must be finite and >= 0: %w", ranking.ErrInvalidParameter)
)

// profileErrorf wraps err with the method context, e.g.
// "GenerateMallows: mallows: dispersion must lie in (0,1]: ...".
func profileErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
