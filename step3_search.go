package perfect

// searchOnce runs Step 3's backtracking search once, for the current
// asso_values[] seed, over the keywords in list order. It mutates
// asso_values in place and reports the number of representative pairs
// left colliding when it gives up early (always 0 unless
// Config.AllowDuplicates lets it stop short of a full resolution).
//
// Implemented as an explicit stack of frames, one per unresolved
// collision still open for retry, rather than recursion: a recursive
// formulation falls out naturally (resolve keyword i, recurse on i+1,
// backtrack on failure) but the recursion depth can reach the keyword
// list length (design notes §9).
func (s *step3Search) searchOnce(keywords []*KeywordExt) (residualCollisions int, err error) {
	n := len(keywords)
	stack := make([]*frame, 0, n)
	i := 0

	for i < n {
		curr := keywords[i]
		s.computeHash(curr)
		priorIdx := s.firstCollision(keywords, i)
		if priorIdx < 0 {
			i++
			continue
		}

		f := s.newFrame(keywords, priorIdx, i)
		stack = append(stack, f)
		if s.resolve(f, keywords) {
			i++
			continue
		}

		// This collision could not be resolved by any candidate/trial;
		// back out of it and retry the previous choice point.
		stack = stack[:len(stack)-1]
		newI, ok := s.backtrack(&stack, keywords)
		if !ok {
			if s.cfg.AllowDuplicates {
				// Accept the keywords we could not separate and keep
				// going; final verification below counts the damage.
				if s.cfg.Debug {
					tracer().Debugf("step3: accepting residual collision at keyword #%d (duplicates allowed)", i)
				}
				i++
				continue
			}
			return 0, wrapf(ErrExhaustiveSearch, "keyword #%d", i)
		}
		i = newI
	}

	return s.countCollisions(keywords), nil
}

// countCollisions recomputes every keyword's hash under the current
// asso_values[] and counts how many collide with an earlier keyword.
func (s *step3Search) countCollisions(keywords []*KeywordExt) int {
	s.collisionDetector.clear()
	collisions := 0
	for _, kw := range keywords {
		h := s.computeHash(kw)
		if s.collisionDetector.setBit(h) {
			collisions++
		}
	}
	return collisions
}

// firstCollision returns the index of the earliest keyword in
// keywords[0:upto] whose current hash value equals keywords[upto]'s, or -1
// if there is none.
func (s *step3Search) firstCollision(keywords []*KeywordExt, upto int) int {
	h := keywords[upto].HashValue
	for j := 0; j < upto; j++ {
		if keywords[j].HashValue == h {
			return j
		}
	}
	return -1
}

// newFrame builds the choice point for the collision between
// keywords[priorIdx] and keywords[currIdx]: the disjoint union of their
// selchars, ordered by ascending occurrence (least-used byte first).
func (s *step3Search) newFrame(keywords []*KeywordExt, priorIdx, currIdx int) *frame {
	prior, curr := keywords[priorIdx], keywords[currIdx]
	union := disjointUnion(prior.Selchars, curr.Selchars, make([]uint32, 0, 2*s.keysigLen))
	s.sortByOccurrence(union)
	return &frame{
		currIdx:    currIdx,
		priorIdx:   priorIdx,
		candidates: union,
		iterations: s.iterationsFor(len(keywords)),
	}
}

// resolve repeatedly advances f, recomputing hashes for the prefix
// keywords[0:f.currIdx+1] after each trial, until either a trial leaves
// that prefix collision-free (success) or every candidate/trial is spent
// (failure).
func (s *step3Search) resolve(f *frame, keywords []*KeywordExt) bool {
	for f.advance(s) {
		if !s.hasCollisionInPrefix(keywords, f.currIdx) {
			if s.cfg.Debug {
				tracer().Debugf("step3: resolved collision on keyword #%d by changing asso_values (candidate byte %d)",
					f.currIdx, f.candidates[f.candPos])
			}
			return true
		}
	}
	return false
}

// hasCollisionInPrefix recomputes the hash of every keyword in
// keywords[0:upto] (inclusive) against the iteration-numbered collision
// detector and reports whether any two collide.
func (s *step3Search) hasCollisionInPrefix(keywords []*KeywordExt, upto int) bool {
	s.collisionDetector.clear()
	for i := 0; i <= upto; i++ {
		h := s.computeHash(keywords[i])
		if s.collisionDetector.setBit(h) {
			return true
		}
	}
	return false
}

// backtrack resumes the most recent still-open choice point on stack,
// trying its next alternative; if that choice point is itself exhausted it
// is discarded and the one below it is tried, and so on. It reports the
// keyword index to resume forward processing from, or false if the stack
// underflows (spec.md's ExhaustiveSearchFailure condition).
func (s *step3Search) backtrack(stack *[]*frame, keywords []*KeywordExt) (int, bool) {
	st := *stack
	for len(st) > 0 {
		top := st[len(st)-1]
		if s.resolve(top, keywords) {
			*stack = st
			return top.currIdx + 1, true
		}
		st = st[:len(st)-1]
	}
	*stack = st
	return 0, false
}
