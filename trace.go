package perfect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the trace sink for this package, selected by name the way
// npillmayer-hyphenate does it (tracing.Select("hyphenate")). Debug
// diagnostics (spec.md §7) are routed through it instead of fprintf to
// stderr; callers that never configure the "perfect" trace key simply see
// nothing.
func tracer() tracing.Trace {
	return tracing.Select("perfect")
}
