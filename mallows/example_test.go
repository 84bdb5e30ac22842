package mallows_test

import (
	"fmt"

	"github.com/katalvlaran/choice/mallows"
	"github.com/katalvlaran/choice/ranking"
)

// ExampleNormalizationConstant evaluates Z for three alternatives:
// (1+φ)(1+φ+φ²) = 1.5 · 1.75 at φ = 0.5.
func ExampleNormalizationConstant() {
	z, err := mallows.NormalizationConstant(3, 0.5)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f\n", z)
	// Output: 2.6250
}

// ExampleModel_Culture lists the probability of every ranking; the reference
// is the most likely and its reversal the least.
func ExampleModel_Culture() {
	m, err := mallows.New(ranking.Ranking{"a", "b", "c"}, 0.5)
	if err != nil {
		fmt.Println(err)
		return
	}
	c, err := m.Culture()
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, r := range c.Preferences {
		fmt.Printf("%s d=%d p=%.4f\n", r.Condensed(), c.Distances[i], c.Probabilities[i])
	}
	// Output:
	// abc d=0 p=0.3810
	// acb d=1 p=0.1905
	// bac d=1 p=0.1905
	// bca d=2 p=0.0952
	// cab d=2 p=0.0952
	// cba d=3 p=0.0476
}
