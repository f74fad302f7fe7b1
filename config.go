package perfect

// Config gathers every knob the search engine accepts (spec.md §6
// inputs). It is threaded explicitly through NewSearch rather than read
// from a process-global option singleton (design notes §9).
type Config struct {
	// UseAllChars makes selchars cover every byte of a keyword instead of
	// a chosen subset of Positions.
	UseAllChars bool

	// IgnoreLength drops len(keyword) from the hash formula and from the
	// representatives-table equality test.
	IgnoreLength bool

	// SevenBit restricts the alphabet to 128 symbols instead of 256
	// (before accounting for AlphaInc overflow, see SPEC_FULL.md §6.2).
	SevenBit bool

	// AllowDuplicates accepts keywords that fall into the same
	// equivalence class instead of failing the search.
	AllowDuplicates bool

	// OccurrenceSort enables the Cichelli reorder (spec.md §4.7) before
	// Step 3 runs.
	OccurrenceSort bool

	// UserPositions, when non-nil, skips Step 1 entirely and uses the
	// given Positions as-is.
	UserPositions *Positions

	// SizeMultiple scales asso_value_max: positive multiplies, negative
	// divides (by its absolute value), zero means "use the keyword count
	// unchanged" (SPEC_FULL.md §6.3).
	SizeMultiple int

	// InitialAssoValue seeds asso_values[]; -1 means randomize.
	InitialAssoValue int

	// Jump is the deterministic probe increment for Step 3's asso_values
	// search; 0 means randomized probing.
	Jump int

	// Iterations bounds Step 3's per-candidate retries in Fast mode; 0
	// means "use the keyword list length".
	Iterations int

	// AssoIterations, if > 0, runs Step 3's search that many times with
	// different (InitialAssoValue, Jump) pairs and keeps the best result.
	AssoIterations int

	// Fast trades search thoroughness for speed by bounding Step 3's
	// per-candidate iteration count instead of always trying every value.
	Fast bool

	// Debug enables tracing of every stage's decisions.
	Debug bool

	// Rand supplies randomness for random initial asso values and random
	// jump steps. If nil, a default seedable source is used (see rand.go).
	// Exposed so callers can make a "random" run reproducible.
	Rand RandSource
}

// DefaultConfig returns the engine's default configuration: positions and
// alpha increments are searched for, seven-bit mode and duplicate
// acceptance are off, and Step 3 runs to exhaustion once with jump 1 and
// initial value 0 — deterministic by default.
func DefaultConfig() Config {
	return Config{
		Jump:             1,
		InitialAssoValue: 0,
	}
}

func (c *Config) alphaSize() int {
	if c.SevenBit {
		return 128
	}
	return 256
}
