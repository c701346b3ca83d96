package sorting

import (
	"fmt"
	"slices"
)

// Sort returns a sorted copy of s using the strategy and hooks chosen by
// opts, together with work counters and optional snapshots.
//
// Errors:
//   - ErrNilLess         — less is nil.
//   - ErrOptionViolation — an option was invalid (wraps ErrUnknownStrategy
//     for an unknown Strategy).
//
// Sort never modifies s and never panics on bad arguments; panics raised
// by less itself propagate to the caller.
func Sort[E any](s []E, less func(a, b E) bool, opts ...Option) (*Result[E], error) {
	if less == nil {
		return nil, ErrNilLess
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ord := less
	if o.Descending {
		ord = func(a, b E) bool { return less(b, a) }
	}

	w := slices.Clone(s)
	t := newTracker[E](o)
	t.begin(w)

	switch o.Strategy {
	case StrategyBubble:
		bubbleSort(w, ord, t)
	case StrategySelection:
		selectionSort(w, ord, t)
	default:
		// Options with a hand-set Strategy field bypass WithStrategy.
		return nil, fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrUnknownStrategy, int(o.Strategy))
	}

	return &Result[E]{Sorted: w, Stats: t.stats, Steps: t.steps}, nil
}
