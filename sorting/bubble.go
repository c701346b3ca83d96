package sorting

import (
	"cmp"
	"slices"
)

// Bubble returns a sorted copy of s in non-decreasing order using bubble
// sort. s is not modified.
//
// Algorithm Outline:
//  1. w = copy of s, n = len(w).
//  2. For pass i = 0..n-2:
//     For j = 0..n-i-2: if w[j+1] < w[j], swap them.
//     If the pass made no swap, w is sorted; stop.
//  3. Return w.
//
// After pass i the largest i+1 elements sit in their final places at the
// tail, so each pass scans one element fewer.
//
// Complexity:
//
//	Time   = O(n) on sorted input, O(n²) otherwise
//	Memory = O(n) for the copy
func Bubble[E cmp.Ordered](s []E) []E {
	return BubbleFunc(s, cmp.Less[E])
}

// BubbleFunc is Bubble with an explicit strict ordering predicate.
// less must not be nil; a nil less panics at the first comparison, so
// inputs shorter than two elements still succeed.
func BubbleFunc[E any](s []E, less func(a, b E) bool) []E {
	w := slices.Clone(s)
	bubbleSort[E](w, less, nil)

	return w
}

// bubbleSort orders w in place.
func bubbleSort[E any](w []E, less func(a, b E) bool, t *tracker[E]) {
	n := len(w)
	for i := 0; i < n-1; i++ {
		t.pass()
		swapped := false
		for j := 0; j < n-1-i; j++ {
			if t.less(less, w[j+1], w[j]) {
				t.swap(w, j, j+1)
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
