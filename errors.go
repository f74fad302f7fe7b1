package perfect

import (
	"errors"
	"fmt"
)

// The search engine surfaces a small, closed taxonomy of structured errors
// (spec.md §7): ErrEmptyKeyword from NewSearch, the others from Optimize.
// The original tool calls exit(1); this design
// propagates one of the sentinels below instead, wrapped with context via
// fmt.Errorf's %w, so the caller (the emitter pipeline) can distinguish
// them with errors.Is.
var (
	// ErrEmptyKeyword is returned when any keyword has zero length: the
	// generated lookup function's comparison logic cannot work for it.
	ErrEmptyKeyword = errors.New("perfect: empty keyword is not allowed")

	// ErrUnresolvableDuplicates is returned when keywords collapse into
	// the same equivalence class (identical selchars, and - unless
	// IgnoreLength - identical length) and Config.AllowDuplicates is
	// false.
	ErrUnresolvableDuplicates = errors.New("perfect: duplicate keywords have identical hash input, enable AllowDuplicates or change key positions")

	// ErrExhaustiveSearch is returned when Step 3's backtracking search
	// runs out of alternatives: the stack underflows with no collision
	// left to retry.
	ErrExhaustiveSearch = errors.New("perfect: exhaustive search failed to find a set of associated values, try increasing SizeMultiple, disabling Fast, or using different key positions")

	// ErrInternalInvariant is returned when final verification finds a
	// collision despite Config.AllowDuplicates being false; this
	// indicates a bug in the search, not a bad input.
	ErrInternalInvariant = errors.New("perfect: internal invariant violated, duplicate hash value survived final verification")
)

// wrapf wraps a sentinel error with additional context, preserving
// errors.Is/As compatibility.
func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
