package perfect

// step1 chooses a good set of byte Positions, minimizing the number of
// duplicates produced by the tuple-variant selchars projection (spec.md
// §4.5). If the caller supplied UserPositions, Step 1 is skipped entirely.
type step1 struct {
	cfg      *Config
	arena    *arena
	head     *node
	maxLen   int
	alphaInc []int // all zero during Step 1; alpha increments are Step 2's job
}

// run executes Step 1 and returns the chosen Positions.
func (s *step1) run() Positions {
	if s.cfg.UserPositions != nil {
		return s.cfg.UserPositions.Clone()
	}

	current := s.mandatoryPositions()
	if s.cfg.Debug {
		tracer().Debugf("step1: mandatory positions = %s", current.String())
	}

	s.greedyAdd(&current)
	if s.cfg.Debug {
		tracer().Debugf("step1: after greedy add = %s (duplicates=%d)", current.String(), s.countDuplicates(current))
	}

	s.greedyRemove(&current)
	if s.cfg.Debug {
		tracer().Debugf("step1: after greedy remove = %s (duplicates=%d)", current.String(), s.countDuplicates(current))
	}

	s.twoForOneReplace(&current)
	if s.cfg.Debug {
		tracer().Debugf("step1: final positions = %s (duplicates=%d)", current.String(), s.countDuplicates(current))
	}

	return current
}

// countDuplicates builds the representatives hash table under the tuple
// selchars variant for the given Positions and returns #keywords -
// #distinct-projections.
func (s *step1) countDuplicates(positions Positions) int {
	t := newHashTable(s.arena, listLen(s.head), s.cfg.IgnoreLength)
	dup := 0
	for p := s.head; p != nil; p = p.next {
		kw := s.arena.get(p.idx)
		kw.Selchars = selcharsTuple(&kw.Keyword, positions, s.alphaInc, s.cfg.UseAllChars)
		if t.insert(p.idx) != noEntry {
			dup++
		}
	}
	return dup
}

// mandatoryPositions scans all pairs of same-length keywords and marks as
// mandatory every interior position (not the last byte) at which exactly
// one pair of keywords differs and nowhere else — omitting it would force
// a duplicate in the tuple projection no matter what else Step 1 chooses.
// Skipped entirely when duplicates are allowed: in that mode nothing is
// "mandatory".
func (s *step1) mandatoryPositions() Positions {
	var mandatory Positions
	if s.cfg.AllowDuplicates {
		return mandatory
	}

	keywords := make([]*KeywordExt, 0, listLen(s.head))
	for p := s.head; p != nil; p = p.next {
		keywords = append(keywords, s.arena.get(p.idx))
	}

	for i := 0; i < len(keywords); i++ {
		for j := i + 1; j < len(keywords); j++ {
			a, b := keywords[i], keywords[j]
			if len(a.AllChars) != len(b.AllChars) {
				continue
			}
			n := len(a.AllChars)
			diffPos := -1
			diffCount := 0
			for k := 0; k < n-1; k++ { // interior positions only; last byte excluded
				if a.AllChars[k] != b.AllChars[k] {
					diffCount++
					diffPos = k
				}
			}
			if diffCount == 1 {
				mandatory.Add(diffPos + 1) // positions are 1-based
			}
		}
	}
	return mandatory
}

// candidatePositions lists every position Step 1 is allowed to try adding:
// numeric positions 1..min(maxLen, MaxKeyPos), plus LastChar.
func (s *step1) candidatePositions() []int {
	imax := s.maxLen
	if imax > MaxKeyPos {
		imax = MaxKeyPos
	}
	cand := make([]int, 0, imax+1)
	cand = append(cand, LastChar)
	for i := 1; i <= imax; i++ {
		cand = append(cand, i)
	}
	return cand
}

// greedyAdd repeatedly adds the single position that most reduces
// duplicates, tie-breaking in favor of a numeric position over LastChar,
// until no further addition strictly helps.
func (s *step1) greedyAdd(current *Positions) {
	for {
		bestDup := s.countDuplicates(*current)
		bestPos := -1
		improved := false
		for _, cand := range s.candidatePositions() {
			if current.Contains(cand) {
				continue
			}
			trial := current.Clone()
			trial.Add(cand)
			dup := s.countDuplicates(trial)
			switch {
			case !improved && dup < bestDup:
				bestDup, bestPos, improved = dup, cand, true
			case improved && dup < bestDup:
				bestDup, bestPos = dup, cand
			case improved && dup == bestDup && preferNumeric(cand, bestPos):
				bestPos = cand
			}
		}
		if !improved {
			return
		}
		current.Add(bestPos)
	}
}

// preferNumeric reports whether candidate should replace incumbent as the
// tie-break winner: a numeric position (> 0) is preferred over LastChar.
func preferNumeric(candidate, incumbent int) bool {
	return candidate > 0 && incumbent == LastChar
}

// greedyRemove repeatedly removes any non-mandatory position whose removal
// does not increase duplicates, preferring to remove LastChar on ties,
// until no such removal exists.
func (s *step1) greedyRemove(current *Positions) {
	mandatory := s.mandatoryPositions()
	for {
		baseDup := s.countDuplicates(*current)
		removed := false
		// Iterate candidates for removal; prefer LastChar first so the
		// tie-break ("prefer removing LastChar") falls out naturally from
		// scan order combined with "first improvement wins".
		candidates := append([]int{}, current.Slice()...)
		orderLastCharFirst(candidates)
		for _, pos := range candidates {
			if mandatory.Contains(pos) {
				continue
			}
			trial := current.Clone()
			trial.Remove(pos)
			if s.countDuplicates(trial) <= baseDup {
				*current = trial
				removed = true
				break
			}
		}
		if !removed {
			return
		}
	}
}

func orderLastCharFirst(positions []int) {
	for i, p := range positions {
		if p == LastChar {
			positions[0], positions[i] = positions[i], positions[0]
			return
		}
	}
}

// twoForOneReplace looks for a local improvement of the form "remove two
// non-mandatory positions already in current, add one position not in
// current" that does not increase duplicates, and on each pass applies the
// best one (fewest duplicates) until no such triple exists. Tie-break mirrors the
// Open Question decision recorded in SPEC_FULL.md §6.1: among triples that
// tie, prefer one where either removed position is LastChar, or the added
// position is not LastChar.
func (s *step1) twoForOneReplace(current *Positions) {
	for {
		mandatory := s.mandatoryPositions()
		baseDup := s.countDuplicates(*current)
		removable := make([]int, 0, current.Size())
		for _, p := range current.Slice() {
			if !mandatory.Contains(p) {
				removable = append(removable, p)
			}
		}

		type triple struct {
			i1, i2, add int
			dup         int
		}
		var best *triple

		for a := 0; a < len(removable); a++ {
			for b := a + 1; b < len(removable); b++ {
				i1, i2 := removable[a], removable[b]
				for _, add := range s.candidatePositions() {
					if current.Contains(add) {
						continue
					}
					trial := current.Clone()
					trial.Remove(i1)
					trial.Remove(i2)
					trial.Add(add)
					dup := s.countDuplicates(trial)
					if dup > baseDup {
						continue
					}
					cand := triple{i1: i1, i2: i2, add: add, dup: dup}
					if best == nil || dup < best.dup ||
						(dup == best.dup && tieBreakTwoForOne(cand.i1, cand.i2, cand.add, best.i1, best.i2, best.add)) {
						best = &cand
					}
				}
			}
		}

		if best == nil {
			return
		}
		current.Remove(best.i1)
		current.Remove(best.i2)
		current.Add(best.add)
	}
}

// tieBreakTwoForOne implements the preserved tie-break: prefer the
// candidate triple if either of its removed positions is LastChar, or its
// added position is not LastChar - over the incumbent.
func tieBreakTwoForOne(i1, i2, add, bi1, bi2, badd int) bool {
	candPref := i1 == LastChar || i2 == LastChar || add != LastChar
	incPref := bi1 == LastChar || bi2 == LastChar || badd != LastChar
	return candPref && !incPref
}
