// Package enumerate generates, exhaustively, every preference (strict total
// order) over a candidate set and every electorate (ordered tuple of
// preferences, one per voter).
//
// Growth:
//
//	n candidates           → n! preferences
//	n candidates, k voters → (n!)^k electorates
//
//	n=3,k=3 → 216      n=4,k=3 → 13 824      n=5,k=3 → 1 728 000
//
// These generators exist to verify rule properties exhaustively on small
// instances; the practical ceiling is n ≤ 5–6 and k ≤ 4–5. Requests above
// Limit materialized objects fail with ErrTooLarge.
package enumerate
