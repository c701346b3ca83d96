// SPDX-License-Identifier: MIT
// Package: lvsort/sorting
//
// errors.go — sentinel errors for the sorting package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w at the return site, never baked into
//     the sentinel message.
//   • The plain generic sorts are total and return no error. Only Sort,
//     which accepts a runtime predicate and options, reports errors.

package sorting

import "errors"

var (
	// ErrNilLess is returned by Sort when the ordering predicate is nil.
	ErrNilLess = errors.New("sorting: less predicate is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")

	// ErrUnknownStrategy indicates a Strategy value or name that no
	// algorithm in this package implements.
	ErrUnknownStrategy = errors.New("sorting: unknown strategy")
)
