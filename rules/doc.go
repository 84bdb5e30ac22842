// Package rules implements voting rules over a preference profile.
//
// Every rule reads an Electorate (implemented by *profile.Profile) and
// returns a Winners set sorted by label, so ties stay explicit:
//
//	Dictator / DictatorAt  top choice of one voter (random or fixed)
//	Plurality              most first places
//	Majority               plurality leader with at least half the first places
//	Approval               most approvals of ranking prefixes
//	Condorcet              beats every rival by strict pairwise majority
//	Borda / Positional     highest total of points per rank
//
// Majority and Condorcet may return an empty set; that is an outcome, not
// an error. Randomized rules take WithSeed or WithRand for reproducibility.
//
// Elect and Lookup dispatch by name:
//
//	w, err := rules.Elect(p, "borda", rules.WithScheme("dowdall"))
//
// Float totals (Dowdall, custom points) tie when equal within 1e-9.
package rules
