// Package sorting_test contains test helpers
//
// Purpose:
//   • Provide small deterministic fixtures and predicates for the sorts.
//   • Keep random inputs reproducible by seeding every generator.

package sorting_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/lvsort/sorting"
	"github.com/stretchr/testify/assert"
)

// lessInt is the natural order on int, passed where a predicate is required.
func lessInt(a, b int) bool { return a < b }

// sorter names a copy-returning sort under test.
type sorter struct {
	name string
	fn   func([]int) []int
}

// allSorters lists every public entry point reduced to []int -> []int.
func allSorters() []sorter {
	viaSort := func(s sorting.Strategy) func([]int) []int {
		return func(in []int) []int {
			res, err := sorting.Sort(in, lessInt, sorting.WithStrategy(s))
			if err != nil {
				panic(err)
			}

			return res.Sorted
		}
	}

	return []sorter{
		{"Bubble", sorting.Bubble[int]},
		{"BubbleFunc", func(in []int) []int { return sorting.BubbleFunc(in, lessInt) }},
		{"Selection", sorting.Selection[int]},
		{"SelectionFunc", func(in []int) []int { return sorting.SelectionFunc(in, lessInt) }},
		{"Sort/bubble", viaSort(sorting.StrategyBubble)},
		{"Sort/selection", viaSort(sorting.StrategySelection)},
	}
}

// randomInts returns n values in [-span, span) from a seeded source.
// A small span forces duplicates.
func randomInts(rng *rand.Rand, n, span int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(2*span) - span
	}

	return out
}

// assertPermutation fails unless got holds the same multiset as want.
func assertPermutation(t *testing.T, want, got []int) {
	t.Helper()
	assert.ElementsMatch(t, want, got, "output must be a permutation of the input")
}

// assertNonDecreasing fails if any adjacent pair is out of order.
func assertNonDecreasing(t *testing.T, got []int) {
	t.Helper()
	assert.True(t, slices.IsSorted(got), "output must be non-decreasing: %v", got)
}
