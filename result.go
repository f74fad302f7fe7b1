package perfect

// Result is everything the (out of scope) emitter collaborator needs
// (spec.md §6 outputs): the sorted representative list with hash values
// and duplicate chains populated, and the tables the search settled on.
type Result struct {
	arena *arena
	head  *node

	Positions       Positions
	AlphaInc        []int
	AssoValues      []int
	AlphaSize       int
	MinHashValue    int
	MaxHashValue    int
	TotalDuplicates int
	Occurrences     []int
}

// Keywords returns the representative keywords, sorted ascending by
// HashValue.
func (r *Result) Keywords() []*KeywordExt {
	return toSlice(r.arena, r.head)
}

// Duplicates returns every keyword folded into rep's equivalence class,
// in the order they were linked (most-recently-folded first, mirroring
// search.cc's duplicate_link chain construction).
func (r *Result) Duplicates(rep *KeywordExt) []*KeywordExt {
	var out []*KeywordExt
	for idx := rep.DuplicateLink; idx != noDuplicate; {
		kw := r.arena.get(idx)
		out = append(out, kw)
		idx = kw.DuplicateLink
	}
	return out
}

// computeMinMax fills in MinHashValue/MaxHashValue from the actual
// representative hash values (as opposed to the theoretical upper bound
// computed in step3Search.prepareAssoValues).
func (r *Result) computeMinMax() {
	first := true
	for p := r.head; p != nil; p = p.next {
		h := r.arena.get(p.idx).HashValue
		if first {
			r.MinHashValue, r.MaxHashValue = h, h
			first = false
			continue
		}
		if h < r.MinHashValue {
			r.MinHashValue = h
		}
		if h > r.MaxHashValue {
			r.MaxHashValue = h
		}
	}
}
