// Package sorting defines strategies, options and results for the
// instrumented Sort entry point.
package sorting

import (
	"fmt"
	"strings"
)

// Strategy selects the algorithm used by Sort.
//
//   - StrategyBubble    — adjacent exchanges with early exit. Best case O(n).
//   - StrategySelection — minimum selection. Always n·(n−1)/2 comparisons.
type Strategy int

const (
	// StrategyBubble is the default strategy.
	StrategyBubble Strategy = iota

	// StrategySelection scans the unsorted suffix for its first-seen minimum.
	StrategySelection
)

// String returns the lower-case name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case StrategyBubble:
		return "bubble"
	case StrategySelection:
		return "selection"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

func (s Strategy) valid() bool {
	return s == StrategyBubble || s == StrategySelection
}

// ParseStrategy maps a case-insensitive name ("bubble", "selection") to a
// Strategy. Unknown names yield ErrUnknownStrategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bubble":
		return StrategyBubble, nil
	case "selection":
		return StrategySelection, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Option configures Sort via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when Sort is invoked.
type Option func(*Options)

// Options holds the parameters and hooks of a Sort call.
type Options struct {
	// Strategy picks the algorithm. Default StrategyBubble.
	Strategy Strategy

	// Descending sorts into non-increasing order.
	Descending bool

	// RecordSteps keeps a snapshot of the working copy before the first
	// pass and after every swap in Result.Steps.
	RecordSteps bool

	// OnSwap is called after positions i and j of the working copy
	// have been exchanged.
	OnSwap func(i, j int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - StrategyBubble
//   - ascending order
//   - no step recording
//   - no-op OnSwap hook
func DefaultOptions() Options {
	return Options{
		Strategy:    StrategyBubble,
		Descending:  false,
		RecordSteps: false,
		OnSwap:      func(int, int) {},
		err:         nil,
	}
}

// WithStrategy selects the algorithm. An unknown Strategy is an option
// violation reported by Sort.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if !s.valid() {
			o.err = fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrUnknownStrategy, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithDescending sorts into non-increasing order.
func WithDescending() Option {
	return func(o *Options) {
		o.Descending = true
	}
}

// WithSteps enables snapshot recording in Result.Steps.
func WithSteps() Option {
	return func(o *Options) {
		o.RecordSteps = true
	}
}

// WithOnSwap registers a callback to run after every exchange.
func WithOnSwap(fn func(i, j int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSwap = fn
		}
	}
}

// Stats counts the work done by one Sort call.
//
//   - Passes      — outer iterations executed (bubble: until a clean pass;
//     selection: always len(s)).
//   - Comparisons — calls to the less predicate.
//   - Swaps       — exchanges of two distinct positions.
type Stats struct {
	Passes      int
	Comparisons int
	Swaps       int
}

// Result holds the output of Sort.
type Result[E any] struct {
	// Sorted is a newly allocated slice; the input is left untouched.
	Sorted []E

	// Stats counts passes, comparisons and swaps.
	Stats Stats

	// Steps is nil unless WithSteps was given. Steps[0] is the input,
	// every following entry is the working copy after one swap.
	Steps [][]E
}
