// Package choice is an in-memory toolkit for computational social choice:
// build preference profiles, draw them from probabilistic cultures, elect
// winners with classical voting rules and test those rules against the
// symmetries they are supposed to respect.
//
// 🚀 What is in the box?
//
//	• Rankings & distances: strict orders, Kendall-tau, relabelings
//	• Enumeration: every preference, every electorate (factorial, bounded)
//	• Cultures: impartial (uniform), Mallows (φ, t), noisy consensus (σ)
//	• Rules: dictator, plurality, majority, approval, Condorcet, Borda
//	• Symmetry: voter-order and candidate-relabeling classes, axiom checks
//	• Experiments: parallel, reproducible Monte Carlo runs from YAML
//
// Subpackages:
//
//	ranking/    — Candidate, Ranking, Kendall-tau, labels, relabelings, error taxonomy
//	enumerate/  — all preferences and all electorates over a candidate set
//	mallows/    — normalization constants, PDFs, Model and Culture sampling
//	profile/    — the Profile aggregate and its generation methods
//	rules/      — voting rules over a read-only Electorate, Elect dispatcher
//	symmetry/   — VoterPermutations, CandidateRelabelings, Combined, IsAnonymous, IsNeutral
//	experiment/ — Config (YAML), Run (errgroup), Report (stats)
//
// Quick example:
//
//	p, _ := profile.FromVoters([]ranking.Ranking{
//		{"a", "b", "c"},
//		{"a", "c", "b"},
//		{"c", "b", "a"},
//	})
//	w, _ := rules.Plurality(p)            // {a}
//	w, _ = rules.Condorcet(p)             // {a}
//	w, _ = rules.Borda(p, rules.BordaZero) // totals a=4 b=2 c=3 → {a}
//
// Determinism: every randomized operation takes an explicit seed or
// *rand.Rand (math/rand/v2). Nothing reads a global source unless the
// caller omits both.
//
// Complexity: preference enumeration is O(n!), profile enumeration
// O((n!)^k) and voter symmetry O(k!). All of them refuse to materialize
// more than enumerate.Limit items.
package choice
