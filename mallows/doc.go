// Package mallows implements the Mallows probabilistic culture: a
// distribution over every preference of a candidate set, concentrated
// around a reference ranking.
//
//	P(r) ∝ φ^(d(r, ref)^{e^t})
//
//	φ ∈ (0,1]  dispersion; φ → 0 concentrates on ref, φ = 1 is uniform (1/n!)
//	t ∈ ℝ      distance transformation; t = 0 gives the classical model
//	d          Kendall-tau distance (package ranking)
//
// The classical model (t = 0) is normalized in closed form; the transformed
// model is normalized by enumerating all n! distances. Either way a Culture
// enumerates every preference, so the model is meant for small n (n ≤ 8).
//
// Usage:
//
//	m, err := mallows.New(ranking.Ranking{"a", "b", "c"}, 0.5)
//	voters, err := m.Sample(rand.NewPCG(1, 2), 10)
package mallows
