package perfect

import "math"

// run drives the whole of Step 3: duplicate folding, occurrence counting,
// asso_value sizing, the optional Cichelli reorder, the backtracking
// search itself (once, or Config.AssoIterations times with different seed
// pairs), final verification, and the final sort by hash value
// (spec.md §4.7, "optimize()"). It returns the sorted representative list.
func (s *step3Search) run(head *node) (*node, error) {
	head, folded := s.foldDuplicates(head)
	if folded > 0 && !s.cfg.AllowDuplicates {
		return nil, wrapf(ErrUnresolvableDuplicates, "%d keyword(s) folded into duplicate chains", folded)
	}

	s.computeOccurrences(head)
	nonLinkedLength := listLen(head)
	s.prepareAssoValues(nonLinkedLength)

	if s.cfg.OccurrenceSort {
		head = s.reorder(head)
	}

	keywords := toSlice(s.arena, head)

	var collisions int
	var err error
	if s.cfg.AssoIterations <= 0 {
		s.initAssoValues(s.cfg.InitialAssoValue)
		collisions, err = s.searchOnce(keywords)
		if err != nil {
			return nil, err
		}
	} else {
		collisions, err = s.multiStart(keywords)
		if err != nil {
			return nil, err
		}
	}

	if collisions > 0 && !s.cfg.AllowDuplicates {
		return nil, wrapf(ErrInternalInvariant, "%d colliding pair(s) survived the search", collisions)
	}
	s.totalDuplicates += collisions

	sorted := mergesortList(s.arena, head, func(a, b *KeywordExt) bool {
		return a.HashValue < b.HashValue
	})
	return sorted, nil
}

// multiStart tries successive (initial_asso_value, jump) pairs, enumerated
// as spec.md §4.7 specifies: (0,1), (1,1), (2,1), (0,3), (3,1), (1,3),
// (4,1), (2,3), (0,5), ... Keeps the attempt with fewest collisions,
// breaking ties toward the smaller max_hash_value.
func (s *step3Search) multiStart(keywords []*KeywordExt) (int, error) {
	bestAsso := make([]int, len(s.assoValues))
	bestCollisions := math.MaxInt
	bestMaxHash := math.MaxInt
	found := false

	initial, jump := 0, 1
	originalJump := s.cfg.Jump
	defer func() { s.cfg.Jump = originalJump }()

	for iter := 0; iter < s.cfg.AssoIterations; iter++ {
		s.cfg.Jump = jump
		s.initAssoValues(initial)

		collisions, err := s.searchOnce(keywords)
		if err == nil {
			maxHash := s.currentMaxHash(keywords)
			if collisions < bestCollisions || (collisions == bestCollisions && maxHash < bestMaxHash) {
				copy(bestAsso, s.assoValues)
				bestCollisions = collisions
				bestMaxHash = maxHash
				found = true
			}
		}

		if initial >= 2 {
			initial -= 2
			jump += 2
		} else {
			initial += jump
			jump = 1
		}
	}

	if !found {
		return 0, wrapf(ErrExhaustiveSearch, "no (initial_asso_value, jump) pair succeeded in %d attempts", s.cfg.AssoIterations)
	}

	copy(s.assoValues, bestAsso)
	for _, kw := range keywords {
		s.computeHash(kw)
	}
	return bestCollisions, nil
}

func (s *step3Search) currentMaxHash(keywords []*KeywordExt) int {
	max := math.MinInt
	for _, kw := range keywords {
		if kw.HashValue > max {
			max = kw.HashValue
		}
	}
	return max
}

// toSlice flattens a node list into a slice of its arena elements, in
// list order.
func toSlice(a *arena, head *node) []*KeywordExt {
	out := make([]*KeywordExt, 0, listLen(head))
	for p := head; p != nil; p = p.next {
		out = append(out, a.get(p.idx))
	}
	return out
}
