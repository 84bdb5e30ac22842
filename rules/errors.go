// SPDX-License-Identifier: MIT
// Package: choice/rules
//
// errors.go — sentinel errors for voting rules.
//
// Error policy:
//   • Every sentinel wraps one classification from package ranking.
//   • An empty winner set (majority, Condorcet) is a result, never an error.

package rules

import (
	"fmt"

	"github.com/katalvlaran/choice/ranking"
)

var (
	// ErrEmptyProfile indicates an electorate without voters or candidates.
	ErrEmptyProfile = fmt.Errorf("rules: electorate has no voters or no candidates: %w", ranking.ErrInvalidInput)

	// ErrVoterIndex indicates a dictator index outside [0, numVoters).
	ErrVoterIndex = fmt.Errorf("rules: voter index out of range: %w", ranking.ErrIndexOutOfRange)

	// ErrUnknownRule indicates a rule name Elect does not know.
	ErrUnknownRule = fmt.Errorf("rules: unknown rule: %w", ranking.ErrInvalidParameter)

	// ErrUnknownScheme indicates a Borda scheme name that is not registered.
	ErrUnknownScheme = fmt.Errorf("rules: unknown scoring scheme: %w", ranking.ErrInvalidParameter)

	// ErrApprovalLength indicates a fixed approval length above numCandidates.
	ErrApprovalLength = fmt.Errorf("rules: approval length exceeds candidate count: %w", ranking.ErrInvalidParameter)

	// ErrScoringLength indicates a points-per-rank vector whose length is
	// not the number of candidates.
	ErrScoringLength = fmt.Errorf("rules: scoring vector length mismatch: %w", ranking.ErrInvalidParameter)
)

// rulesErrorf wraps err with the rule name, e.g. "Borda: rules: unknown scoring scheme: ...".
func rulesErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
