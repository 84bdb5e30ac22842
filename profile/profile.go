// SPDX-License-Identifier: MIT
// Package: choice/profile
//
// profile.go — the Profile aggregate and its read surface.
//
// Invariants:
//   • every voter is a permutation of candidates;
//   • candidates are sorted and distinct;
//   • a Profile owns its voters: no ranking is shared with another Profile
//     or with the caller.

package profile

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/katalvlaran/choice/ranking"
)

// Profile is an ordered collection of voters' rankings over a shared
// candidate set. The zero value is an empty profile ready for a generation
// method.
type Profile struct {
	voters     []ranking.Ranking
	candidates []ranking.Candidate
}

// SummaryEntry counts the voters holding one ranking.
type SummaryEntry struct {
	Ranking string `json:"ranking" yaml:"ranking"`
	Count   int    `json:"count" yaml:"count"`
}

// New returns an empty profile.
func New() *Profile { return &Profile{} }

// FromVoters builds a profile from explicit voters. Candidates are the
// first voter's labels in sorted order.
func FromVoters(voters []ranking.Ranking) (*Profile, error) {
	p := New()
	if err := p.SetVoters(voters); err != nil {
		return nil, err
	}

	return p, nil
}

// SetVoters replaces the whole electorate with deep copies of voters.
// Every voter must be a permutation of the first one.
//
// Complexity: O(k·n) time and space.
func (p *Profile) SetVoters(voters []ranking.Ranking) error {
	if len(voters) == 0 {
		return profileErrorf("SetVoters", ErrNoVoters)
	}
	if err := voters[0].Validate(); err != nil {
		return profileErrorf("SetVoters", err)
	}
	owned := make([]ranking.Ranking, len(voters))
	for i, v := range voters {
		if !ranking.SameCandidates(voters[0], v) {
			return profileErrorf(fmt.Sprintf("SetVoters(voter %d)", i), ErrVoterMismatch)
		}
		owned[i] = v.Clone()
	}
	p.voters = owned
	p.candidates = voters[0].Sorted()

	return nil
}

// Candidates returns a copy of the sorted candidate set.
func (p *Profile) Candidates() []ranking.Candidate { return slices.Clone(p.candidates) }

// NumCandidates returns the size of the candidate set.
func (p *Profile) NumCandidates() int { return len(p.candidates) }

// NumVoters returns the number of voters.
func (p *Profile) NumVoters() int { return len(p.voters) }

// Empty reports whether the profile has no voters.
func (p *Profile) Empty() bool { return len(p.voters) == 0 }

// Voter returns voter i without copying. The ranking is owned by the
// profile and must not be modified. Panics when i is out of range, like
// slice indexing.
func (p *Profile) Voter(i int) ranking.Ranking { return p.voters[i] }

// Voters returns deep copies of all voters.
func (p *Profile) Voters() []ranking.Ranking {
	out := make([]ranking.Ranking, len(p.voters))
	for i, v := range p.voters {
		out[i] = v.Clone()
	}

	return out
}

// Condensed renders every voter as its concatenated labels.
func (p *Profile) Condensed() []string {
	out := make([]string, len(p.voters))
	for i, v := range p.voters {
		out[i] = v.Condensed()
	}

	return out
}

// Clone returns a deep copy.
func (p *Profile) Clone() *Profile {
	return &Profile{voters: p.Voters(), candidates: p.Candidates()}
}

// Equal reports whether both voter sequences are equal element-wise and in
// order. Profiles holding the same voters in another order are not equal.
func (p *Profile) Equal(other *Profile) bool {
	if other == nil {
		return false
	}

	return slices.EqualFunc(p.voters, other.voters, ranking.Ranking.Equal)
}

// Key is an unambiguous string identity consistent with Equal, suitable as
// a map key when deduplicating profiles.
func (p *Profile) Key() string {
	parts := make([]string, len(p.voters))
	for i, v := range p.voters {
		parts[i] = v.Key()
	}

	return strings.Join(parts, "\x1e")
}

// Rename applies rel to every voter and returns the relabeled profile.
// The receiver is not modified.
func (p *Profile) Rename(rel ranking.Relabeling) (*Profile, error) {
	if p.Empty() {
		return nil, profileErrorf("Rename", ErrNoVoters)
	}
	voters := make([]ranking.Ranking, len(p.voters))
	for i, v := range p.voters {
		r, err := rel.Apply(v)
		if err != nil {
			return nil, profileErrorf("Rename", err)
		}
		voters[i] = r
	}

	return &Profile{voters: voters, candidates: slices.Clone(p.candidates)}, nil
}

// Summary counts the voters per distinct condensed ranking, sorted
// case-insensitively by the condensed string (ties by the raw string).
func (p *Profile) Summary() []SummaryEntry {
	counts := make(map[string]int, len(p.voters))
	for _, v := range p.voters {
		counts[v.Condensed()]++
	}
	out := make([]SummaryEntry, 0, len(counts))
	for k, c := range counts {
		out = append(out, SummaryEntry{Ranking: k, Count: c})
	}

	fold := cases.Fold()
	slices.SortFunc(out, func(a, b SummaryEntry) int {
		if c := strings.Compare(fold.String(a.Ranking), fold.String(b.Ranking)); c != 0 {
			return c
		}
		return strings.Compare(a.Ranking, b.Ranking)
	})

	return out
}

// String renders a one-line header and the summary, e.g.
// "3 candidates, 2 voters | abc:1 | cba:1".
func (p *Profile) String() string {
	if p.Empty() {
		return "empty profile"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d candidates, %d voters", p.NumCandidates(), p.NumVoters())
	for _, e := range p.Summary() {
		fmt.Fprintf(&sb, " | %s:%d", e.Ranking, e.Count)
	}

	return sb.String()
}
