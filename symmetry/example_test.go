package symmetry_test

import (
	"fmt"

	"github.com/katalvlaran/choice/profile"
	"github.com/katalvlaran/choice/ranking"
	"github.com/katalvlaran/choice/rules"
	"github.com/katalvlaran/choice/symmetry"
)

// ExampleVoterPermutations lists the other orders of two voters.
func ExampleVoterPermutations() {
	p, _ := profile.FromVoters([]ranking.Ranking{{"a", "b"}, {"b", "a"}})
	others, err := symmetry.VoterPermutations(p)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, q := range others {
		fmt.Println(q.Condensed())
	}
	// Output: [ba ab]
}

// ExampleIsNeutral shows that plurality treats candidates alike.
func ExampleIsNeutral() {
	p, _ := profile.FromVoters([]ranking.Ranking{{"a", "b", "c"}, {"b", "c", "a"}})
	ok, err := symmetry.IsNeutral(p, rules.Plurality)
	fmt.Println(ok, err)
	// Output: true <nil>
}
