package perfect

import (
	"context"
	"errors"
)

// Search owns the keyword arena and drives the three optimization steps
// described in spec.md §4: choosing byte Positions, choosing alpha_inc[],
// and choosing asso_values[]. It is a plain value built from a
// Configuration and a keyword list (design notes §9: capability
// composition instead of private inheritance from a mixin hierarchy).
type Search struct {
	cfg    Config
	arena  *arena
	head   *node
	maxLen int
	minLen int
}

// NewSearch builds a Search over keywords. It fails immediately if the
// list is empty or if any keyword has zero length (spec.md §7,
// ErrEmptyKeyword) - the generated lookup function's comparison logic
// cannot work for an empty key.
func NewSearch(keywords []Keyword, cfg Config) (*Search, error) {
	if len(keywords) == 0 {
		return nil, errors.New("perfect: keyword list is empty")
	}

	a := newArena(keywords)
	head := a.buildList()

	maxLen, minLen := 0, -1
	for _, kw := range keywords {
		n := len(kw.AllChars)
		if n > maxLen {
			maxLen = n
		}
		if minLen < 0 || n < minLen {
			minLen = n
		}
	}
	if minLen == 0 {
		return nil, wrapf(ErrEmptyKeyword, "at least one of %d keywords", len(keywords))
	}

	return &Search{cfg: cfg, arena: a, head: head, maxLen: maxLen, minLen: minLen}, nil
}

// Optimize runs Step 1, Step 2 and Step 3 in sequence and returns the
// solved tables plus the sorted representative list (spec.md §4,
// "optimize()"). ctx is accepted for symmetry with the rest of the
// ecosystem's blocking-call convention; the search itself never suspends
// (spec.md §5), so only ctx's initial state is observed.
func (s *Search) Optimize(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.cfg.Debug {
		tracer().Debugf("optimize: %d keywords, max_key_len=%d, min_key_len=%d", listLen(s.head), s.maxLen, s.minLen)
	}

	var positions Positions
	keysigLen := s.maxLen
	if !s.cfg.UseAllChars {
		st1 := &step1{cfg: &s.cfg, arena: s.arena, head: s.head, maxLen: s.maxLen}
		positions = st1.run()
		keysigLen = positions.Size()
	}

	st2 := &step2{cfg: &s.cfg, arena: s.arena, head: s.head, positions: positions, maxLen: s.maxLen}
	alphaInc := st2.run()

	st3 := newStep3Search(&s.cfg, s.arena, positions, alphaInc, s.maxLen, keysigLen)
	sortedHead, err := st3.run(s.head)
	if err != nil {
		return nil, err
	}

	result := &Result{
		arena:           s.arena,
		head:            sortedHead,
		Positions:       positions,
		AlphaInc:        alphaInc,
		AssoValues:      append([]int(nil), st3.assoValues...),
		AlphaSize:       st3.alphaSize,
		TotalDuplicates: st3.totalDuplicates,
		Occurrences:     append([]int(nil), st3.occurrences...),
	}
	result.computeMinMax()

	if s.cfg.Debug {
		s.debugDump(result)
	}

	return result, nil
}

// debugDump reproduces the shape of search.cc::Search::~Search's debug
// trace: the occurrence/associated-value tables, then the surviving
// keyword list with hash value, length, selchars and raw text
// (SPEC_FULL.md §7), routed through tracing instead of fprintf(stderr).
func (s *Search) debugDump(r *Result) {
	t := tracer()
	t.Debugf("dumping occurrence and associated values tables")
	for c, occ := range r.Occurrences {
		if occ != 0 {
			t.Debugf("asso_values[%d] = %6d, occurrences[%d] = %6d", c, r.AssoValues[c], c, occ)
		}
	}
	t.Debugf("total duplicates = %d, max key length = %d", r.TotalDuplicates, s.maxLen)
	for _, kw := range r.Keywords() {
		t.Debugf("hash=%d len=%d selchars=%v keyword=%q", kw.HashValue, len(kw.AllChars), kw.Selchars, string(kw.AllChars))
	}
}
