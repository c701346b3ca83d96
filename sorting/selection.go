package sorting

import (
	"cmp"
	"slices"
)

// Selection returns a sorted copy of s in non-decreasing order using
// selection sort. s is not modified.
//
// Algorithm Outline:
//  1. w = copy of s, n = len(w).
//  2. For i = 0..n-1:
//     min = index of the first-seen minimum of w[i:]
//     exchange w[i] and w[min]
//  3. Return w.
//
// There is no early exit: every call performs n outer iterations and
// n·(n−1)/2 comparisons. Ties keep the first occurrence as the minimum,
// but the exchange can still reorder equal elements.
//
// Complexity:
//
//	Time   = O(n²) in every case
//	Memory = O(n) for the copy
func Selection[E cmp.Ordered](s []E) []E {
	return SelectionFunc(s, cmp.Less[E])
}

// SelectionFunc is Selection with an explicit strict ordering predicate.
// less must not be nil; a nil less panics at the first comparison.
func SelectionFunc[E any](s []E, less func(a, b E) bool) []E {
	w := slices.Clone(s)
	selectionSort[E](w, less, nil)

	return w
}

// selectionSort orders w in place. Exchanges of a position with itself
// are skipped and not counted.
func selectionSort[E any](w []E, less func(a, b E) bool, t *tracker[E]) {
	n := len(w)
	for i := 0; i < n; i++ {
		t.pass()
		minIdx := i
		for j := i + 1; j < n; j++ {
			if t.less(less, w[j], w[minIdx]) {
				minIdx = j
			}
		}
		if minIdx != i {
			t.swap(w, i, minIdx)
		}
	}
}
