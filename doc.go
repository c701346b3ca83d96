// Package lvsort is a small playground of classic comparison sorts,
// written to be read as much as to be run.
//
// 🚀 What is in lvsort?
//
//	• Bubble sort with early exit on a clean pass
//	• Selection sort with first-seen minimum
//	• Generic over cmp.Ordered, or any type through a less predicate
//	• Copy semantics: the caller's slice is never modified
//	• Instrumentation: passes, comparisons, swaps and step snapshots
//
// Layout:
//
//	sorting/      — the algorithms, options and counters
//	cmd/sortdemo/ — CLI that prints sample runs and sorts its arguments
//
// Quick example:
//
//	sorting.Bubble([]int{5, 4, 3, 2, 1}) // [1 2 3 4 5]
//
//	go get github.com/katalvlaran/lvsort/sorting
package lvsort
