package perfect

// step2 searches for alpha_inc[] values that make the multiset-variant
// selchars projection injective on the keywords surviving Step 1's tuple
// projection, up to the number of duplicates Step 1 already accepted
// (spec.md §4.6).
type step2 struct {
	cfg       *Config
	arena     *arena
	head      *node
	positions Positions
	maxLen    int
}

// run returns alpha_inc indexed 0..maxLen-1 (zero outside the adjustable
// positions).
func (s *step2) run() []int {
	alphaInc := make([]int, s.maxLen)
	if s.maxLen == 0 {
		return alphaInc
	}

	goal := s.tupleDuplicates()
	if s.cfg.Debug {
		tracer().Debugf("step2: duplicates_goal=%d", goal)
	}

	adjustable := s.adjustableIndices()
	current := s.countDuplicates(alphaInc)

	for current > goal {
		bestIdx := -1
		bestInc := 0
		bestDup := current
		improved := false

		for _, idx := range adjustable {
			original := alphaInc[idx]
			for inc := 1; ; inc++ {
				alphaInc[idx] = inc
				dup := s.countDuplicates(alphaInc)
				if dup < current {
					if !improved || dup < bestDup {
						bestDup = dup
						bestIdx = idx
						bestInc = inc
						improved = true
					}
					alphaInc[idx] = original
					break
				}
				// Stop trying ever-larger increments for this index once
				// we've covered the full byte range without improvement;
				// there is nothing more to learn from this index.
				if inc >= 255 {
					break
				}
			}
			alphaInc[idx] = original
		}

		if !improved {
			// No single-index increment helps further; accept the
			// remaining duplicates (Step 3 may still fold them into
			// equivalence classes if AllowDuplicates is set).
			break
		}
		alphaInc[bestIdx] = bestInc
		current = bestDup
		if s.cfg.Debug {
			tracer().Debugf("step2: alpha_inc[%d]=%d -> duplicates=%d", bestIdx, bestInc, current)
		}
	}

	return alphaInc
}

// adjustableIndices returns the byte indices alpha_inc may be nonzero at:
// one less than each numeric position in s.positions (LastChar is never
// adjustable, since the last byte's offset is position-dependent, not a
// fixed index), or every index in UseAllChars mode.
func (s *step2) adjustableIndices() []int {
	if s.cfg.UseAllChars {
		idx := make([]int, s.maxLen)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	var idx []int
	s.positions.Iterate(func(p int) bool {
		if p != LastChar {
			idx = append(idx, p-1)
		}
		return true
	})
	return idx
}

// tupleDuplicates returns the number of duplicates under the tuple-variant
// selchars projection at s.positions with no alpha_inc applied: the
// baseline Step 1 already accepted, and alpha_inc can never shrink it
// further, since two byte tuples that are already identical stay identical
// under any shared per-index offset.
func (s *step2) tupleDuplicates() int {
	t := newHashTable(s.arena, listLen(s.head), s.cfg.IgnoreLength)
	dup := 0
	for p := s.head; p != nil; p = p.next {
		kw := s.arena.get(p.idx)
		kw.Selchars = selcharsTuple(&kw.Keyword, s.positions, nil, s.cfg.UseAllChars)
		if t.insert(p.idx) != noEntry {
			dup++
		}
	}
	return dup
}

// countDuplicates builds the representatives hash table under the
// multiset selchars variant for the given alpha_inc and returns the
// resulting duplicate count.
func (s *step2) countDuplicates(alphaInc []int) int {
	t := newHashTable(s.arena, listLen(s.head), s.cfg.IgnoreLength)
	dup := 0
	for p := s.head; p != nil; p = p.next {
		kw := s.arena.get(p.idx)
		kw.Selchars = selcharsMultiset(&kw.Keyword, s.positions, alphaInc, s.cfg.UseAllChars)
		if t.insert(p.idx) != noEntry {
			dup++
		}
	}
	return dup
}
