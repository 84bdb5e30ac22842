// SPDX-License-Identifier: MIT
// Package: choice/ranking
//
// labels.go — deterministic candidate label scheme.

package ranking

// LabelFn returns the lowercase spreadsheet-style label for idx,
// e.g. 0→"a", 25→"z", 26→"aa", 27→"ab", 701→"zz", 702→"aaa".
// Complexity: O(k) time where k ≈ log₍₂₆₎(idx), O(k) space.
// Panics if idx < 0.
func LabelFn(idx int) string {
	if idx < 0 {
		panic("ranking: LabelFn(idx<0)")
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('a'+(i%26)))
	}
	for l, r := 0, len(runes)-1; l < r; l, r = l+1, r-1 {
		runes[l], runes[r] = runes[r], runes[l]
	}

	return string(runes)
}

// LexicographicLabels returns the first n labels of the scheme
// a, b, …, z, aa, ab, …. n == 0 yields an empty slice.
func LexicographicLabels(n int) ([]Candidate, error) {
	if n < 0 {
		return nil, rankingErrorf("LexicographicLabels", ErrNegativeCount)
	}
	out := make([]Candidate, n)
	for i := range out {
		out[i] = Candidate(LabelFn(i))
	}

	return out, nil
}
