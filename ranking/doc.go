// Package ranking holds the leaf data model of the choice module: candidate
// labels, strict total orders over them (rankings), the Kendall-tau distance
// between two rankings, the lexicographic label scheme used to expand an
// integer candidate count, and validated candidate relabelings.
//
// The package also owns the error taxonomy every other package wraps:
//
//	ErrInvalidInput      — malformed or empty inputs, unsupported specs
//	ErrInvalidParameter  — out-of-domain parameters and unknown names
//	ErrIndexOutOfRange   — positional lookups outside [0, len)
//
// Kendall-tau distance:
//
//	d(a,b) = |{ {x,y} : a ranks x above y and b ranks y above x }|
//
// It is the bubble-sort distance: the number of adjacent swaps turning a
// into b. It is not normalized; its range is 0..C(n,2).
//
// Example:
//
//	d, _ := ranking.KendallTau(ranking.Ranking{"a", "b", "c"}, ranking.Ranking{"c", "b", "a"})
//	// d == 3
package ranking
