package ranking_test

import (
	"fmt"

	"github.com/katalvlaran/choice/ranking"
)

// ExampleKendallTau counts the pairs two voters disagree on: (a,c) and (b,c).
func ExampleKendallTau() {
	d, err := ranking.KendallTau(ranking.Ranking{"a", "b", "c"}, ranking.Ranking{"c", "a", "b"})
	fmt.Println(d, err)
	// Output: 2 <nil>
}

// ExampleRelabeling_Apply renames candidates consistently.
func ExampleRelabeling_Apply() {
	rel, err := ranking.FromOrders(ranking.Ranking{"a", "b", "c"}, ranking.Ranking{"c", "a", "b"})
	if err != nil {
		fmt.Println(err)
		return
	}
	r, err := rel.Apply(ranking.Ranking{"b", "c", "a"})
	fmt.Println(r.Condensed(), err)
	// Output: abc <nil>
}
