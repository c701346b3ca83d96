package sorting

import "slices"

// tracker counts comparisons and swaps for one run and optionally keeps
// snapshots. A nil *tracker is valid and records nothing, so the plain
// sorts share the same loops as Sort without paying for bookkeeping.
type tracker[E any] struct {
	stats  Stats
	steps  [][]E
	record bool
	onSwap func(i, j int)
}

func newTracker[E any](o Options) *tracker[E] {
	return &tracker[E]{record: o.RecordSteps, onSwap: o.OnSwap}
}

// begin stores the initial snapshot. Empty input records nothing.
func (t *tracker[E]) begin(w []E) {
	if t == nil || !t.record || len(w) == 0 {
		return
	}
	t.steps = append(t.steps, slices.Clone(w))
}

func (t *tracker[E]) pass() {
	if t != nil {
		t.stats.Passes++
	}
}

// less evaluates the predicate and counts the call.
func (t *tracker[E]) less(less func(a, b E) bool, a, b E) bool {
	if t != nil {
		t.stats.Comparisons++
	}

	return less(a, b)
}

// swap exchanges w[i] and w[j] and fires the hook and snapshot.
func (t *tracker[E]) swap(w []E, i, j int) {
	w[i], w[j] = w[j], w[i]
	if t == nil {
		return
	}
	t.stats.Swaps++
	if t.onSwap != nil {
		t.onSwap(i, j)
	}
	if t.record {
		t.steps = append(t.steps, slices.Clone(w))
	}
}
