package perfect

// Keyword is an immutable input record: the raw bytes of the keyword
// (which may contain NUL) and the trailing text seen on the same input
// line, carried through untouched for the (out of scope) emitter.
type Keyword struct {
	AllChars []byte
	Rest     string
}

// noDuplicate is the sentinel DuplicateLink value meaning "not linked to
// any other keyword".
const noDuplicate = -1

// KeywordExt extends Keyword with the fields the search engine computes:
// the selected characters that participate in the hash, the frequency
// valuation used for Cichelli reordering, the final hash value, the link
// to other members of its duplicate-equivalence class, and the index it
// will occupy in the emitted word list.
//
// Every KeywordExt is owned by exactly one arena (see arena) and referenced
// either from the arena's main list or from exactly one DuplicateLink
// chain, never both (spec invariant).
type KeywordExt struct {
	Keyword

	Selchars       []uint32
	Occurrence     int
	HashValue      int
	DuplicateLink  int32 // arena index of the next keyword in this equivalence class, or noDuplicate
	FinalIndex     int
}

// node is a singly linked list cell threading arena indices together. The
// main keyword list is a sequence of *node values; KeywordExt values
// themselves never move and are never aliased between two lists at once.
type node struct {
	idx  int32
	next *node
}

// arena owns every KeywordExt allocated for a search. Lists and duplicate
// chains reference its elements by index, avoiding the pointer-aliasing
// ambiguity of the original design (see DESIGN.md, "ownership of the
// linked keyword list with chained duplicates").
type arena struct {
	items []KeywordExt
}

func newArena(keywords []Keyword) *arena {
	a := &arena{items: make([]KeywordExt, len(keywords))}
	for i, kw := range keywords {
		a.items[i] = KeywordExt{Keyword: kw, DuplicateLink: noDuplicate}
	}
	return a
}

func (a *arena) get(idx int32) *KeywordExt { return &a.items[idx] }

// buildList returns a fresh singly linked list over every arena index in
// order 0..len(a.items)-1.
func (a *arena) buildList() *node {
	var head, tail *node
	for i := range a.items {
		n := &node{idx: int32(i)}
		if head == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	return head
}

// listLen returns the number of nodes in the list starting at head.
func listLen(head *node) int {
	n := 0
	for p := head; p != nil; p = p.next {
		n++
	}
	return n
}

// copyList returns an independent copy of the list starting at head,
// referencing the same arena indices, without touching the arena itself.
// Step 3's multi-start search does not call it: searchOnce never reorders
// its keyword slice, so every attempt already sees the same order.
func copyList(head *node) *node {
	var newHead, tail *node
	for p := head; p != nil; p = p.next {
		n := &node{idx: p.idx}
		if newHead == nil {
			newHead = n
		} else {
			tail.next = n
		}
		tail = n
	}
	return newHead
}

// selcharsTuple computes the tuple-variant selchars for kw according to
// positions and alphaInc: the ordered projection of kw's bytes through
// positions in their decreasing iteration order (spec.md §4.2), without
// sorting. Used by Step 1, where order
// (not just multiset identity) distinguishes keywords that happen to share
// a multiset of selected bytes.
func selcharsTuple(kw *Keyword, positions Positions, alphaInc []int, useAllChars bool) []uint32 {
	if useAllChars {
		out := make([]uint32, len(kw.AllChars))
		for i, c := range kw.AllChars {
			inc := 0
			if i < len(alphaInc) {
				inc = alphaInc[i]
			}
			out[i] = uint32(c) + uint32(inc)
		}
		return out
	}

	out := make([]uint32, 0, positions.Size())
	n := len(kw.AllChars)
	positions.Iterate(func(p int) bool {
		if p == LastChar {
			out = append(out, uint32(kw.AllChars[n-1]))
			return true
		}
		if p <= n {
			inc := 0
			if p-1 < len(alphaInc) {
				inc = alphaInc[p-1]
			}
			out = append(out, uint32(kw.AllChars[p-1])+uint32(inc))
		}
		return true
	})
	return out
}

// selcharsMultiset computes the multiset variant: the tuple projection,
// additionally sorted ascending so that keywords sharing a multiset of
// selected bytes compare equal regardless of the order positions visited
// them in (spec.md §4.2). Used from Step 2 onward.
func selcharsMultiset(kw *Keyword, positions Positions, alphaInc []int, useAllChars bool) []uint32 {
	s := selcharsTuple(kw, positions, alphaInc, useAllChars)
	sortUint32(s)
	return s
}

func sortUint32(s []uint32) {
	// Insertion sort: selchars sequences are always tiny (bounded by
	// max_key_len or the number of selected positions), so this beats the
	// overhead of sort.Slice, matching search.cc's own choice for its
	// (comparably small) union-set sort.
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && s[j] > v {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}

func equalUint32(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
