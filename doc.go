// Package perfect finds perfect hash functions for a fixed set of keyword
// strings, following the position-selection / alphabet-adjustment /
// associated-value search pipeline popularized by GNU gperf: choose a small
// set of byte positions that already distinguish most keywords, adjust a
// handful of byte values so the remaining collisions under that projection
// disappear, then search for a per-character associated-value table that
// turns the adjusted projection into a hash with no (or, if allowed, few)
// collisions.
//
// NewSearch builds a Search from a keyword list and a Config; Search.Optimize
// runs the three-step pipeline and returns a Result with the chosen
// Positions, AlphaInc and AssoValues tables plus the keyword list sorted by
// hash value, ready for a code generator to emit a lookup function from.
package perfect
