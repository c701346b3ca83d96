// Package sorting provides two classic comparison sorts, bubble sort and
// selection sort, over any element type with a total order.
//
// 🚀 What is in here?
//
//	Both strategies share one contract: take a slice, return a NEW slice in
//	non-decreasing order, never touch the caller's slice.
//	  • Bubble    — adjacent swaps, stops early after a pass with no swaps
//	  • Selection — moves the first-seen minimum of the suffix to the front
//
// ✨ Key features:
//   - generic over cmp.Ordered (Bubble, Selection) or any type with an
//     explicit less predicate (BubbleFunc, SelectionFunc)
//   - copy semantics: the input slice is read, never written
//   - instrumented entry point Sort with pass/comparison/swap counters,
//     descending order, swap hooks and step-by-step snapshots
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvsort/sorting"
//
//	out := sorting.Bubble([]int{64, 34, 25, 12, 22, 11, 90})
//	// out == [11 12 22 25 34 64 90]
//
//	res, err := sorting.Sort(words, func(a, b string) bool { return a < b },
//	  sorting.WithStrategy(sorting.StrategySelection),
//	  sorting.WithDescending(),
//	)
//
// Performance:
//
//   - Bubble:    O(n) best (already sorted), O(n²) average/worst
//   - Selection: O(n²) always, exactly n·(n−1)/2 comparisons
//   - Memory:    O(n) for the returned copy (plus O(n·swaps) with WithSteps)
//
// Neither strategy is stable: equal elements may change relative order.
package sorting
