package sorting_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/lvsort/sorting"
)

// benchmarkSort runs fn on a fixed input of length n shaped by kind.
// It resets the timer before entering the loop.
func benchmarkSort(b *testing.B, n int, kind string, fn func([]int) []int) {
	in := make([]int, n)
	switch kind {
	case "sorted":
		for i := range in {
			in[i] = i
		}
	case "reversed":
		for i := range in {
			in[i] = n - i
		}
	default:
		in = randomInts(rand.New(rand.NewSource(1)), n, n)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fn(in)
	}
}

// BenchmarkBubble_Sorted shows the O(n) early exit.
func BenchmarkBubble_Sorted(b *testing.B) {
	benchmarkSort(b, 1000, "sorted", sorting.Bubble[int])
}

// BenchmarkBubble_Random benchmarks bubble sort on 1000 random ints.
func BenchmarkBubble_Random(b *testing.B) {
	benchmarkSort(b, 1000, "random", sorting.Bubble[int])
}

// BenchmarkBubble_Reversed benchmarks the worst case.
func BenchmarkBubble_Reversed(b *testing.B) {
	benchmarkSort(b, 1000, "reversed", sorting.Bubble[int])
}

// BenchmarkSelection_Sorted shows there is no best case for selection sort.
func BenchmarkSelection_Sorted(b *testing.B) {
	benchmarkSort(b, 1000, "sorted", sorting.Selection[int])
}

// BenchmarkSelection_Random benchmarks selection sort on 1000 random ints.
func BenchmarkSelection_Random(b *testing.B) {
	benchmarkSort(b, 1000, "random", sorting.Selection[int])
}

// BenchmarkSort_Instrumented measures the tracker overhead.
func BenchmarkSort_Instrumented(b *testing.B) {
	benchmarkSort(b, 1000, "random", func(in []int) []int {
		res, _ := sorting.Sort(in, lessInt)
		return res.Sorted
	})
}

// BenchmarkStdlib is the baseline.
func BenchmarkStdlib(b *testing.B) {
	benchmarkSort(b, 1000, "random", func(in []int) []int {
		out := slices.Clone(in)
		slices.Sort(out)
		return out
	})
}
