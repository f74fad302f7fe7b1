package perfect

import (
	"math/rand"
	"time"
)

// RandSource is the minimal randomness interface the search needs. It
// replaces the original tool's reliance on global rand()/srand() (design
// notes §9): the PRNG becomes an explicit, optionally caller-supplied
// field of Search, so runs are reproducible when the caller wants them to
// be and isolated from any other use of the process-global generator.
type RandSource interface {
	Intn(n int) int
}

// newDefaultRand seeds a private PRNG from wall-clock time, matching the
// original's srand(time(0)) — the only source of nondeterminism in the
// default configuration (spec.md §5).
func newDefaultRand() RandSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
