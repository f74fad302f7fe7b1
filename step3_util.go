package perfect

// disjointUnion computes the ordered set of byte values whose multiplicity
// differs between the two ordered multisets a and b: only changing
// asso_values[c] for such a c can possibly separate their hash values
// (spec.md §4.7). Both inputs must already be sorted ascending, as every
// Selchars value is (selcharsMultiset's contract).
func disjointUnion(a, b []uint32, out []uint32) []uint32 {
	out = out[:0]
	i, j := 0, 0
	appendUnique := func(v uint32) {
		if len(out) == 0 || out[len(out)-1] != v {
			out = append(out, v)
		}
	}
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			appendUnique(a[i])
			i++
		default:
			appendUnique(b[j])
			j++
		}
	}
	for ; i < len(a); i++ {
		appendUnique(a[i])
	}
	for ; j < len(b); j++ {
		appendUnique(b[j])
	}
	return out
}

// sortByOccurrence sorts set ascending by occurrences[c], so that the
// least-used bytes are tried first when resolving a collision (spec.md
// §4.7): changing a rarely used associated value does the least collateral
// damage to keywords already resolved. Insertion sort, matching
// search.cc::sort_by_occurrence's choice for these small sets.
func (s *step3Search) sortByOccurrence(set []uint32) {
	for i := 1; i < len(set); i++ {
		v := set[i]
		j := i - 1
		for j >= 0 && s.occurrences[set[j]] > s.occurrences[v] {
			set[j+1] = set[j]
			j--
		}
		set[j+1] = v
	}
}

// iterationsFor returns the trial budget per candidate byte: the full
// asso_value_max range unless Fast mode is on, in which case it is bounded
// by min(Config.Iterations, listLen) (or just listLen when Iterations is 0),
// so the per-candidate budget never exceeds the number of keywords.
func (s *step3Search) iterationsFor(listLen int) int {
	if !s.cfg.Fast {
		return s.assoValueMax
	}
	if v := s.cfg.Iterations; v > 0 {
		if v < listLen {
			return v
		}
		return listLen
	}
	return listLen
}
