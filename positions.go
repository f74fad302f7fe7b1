package perfect

import "sort"

// LastChar denotes the last byte of a keyword, whose index depends on
// the keyword's length. It sorts before every numeric position so that
// reverse iteration visits numeric positions first and LastChar last.
const LastChar = 0

// MaxKeyPos is the largest byte position a caller may specify explicitly.
// Positions are 1-based; MaxKeyPos+1 positions (including LastChar) is the
// most a Positions value can ever hold, since duplicates are rejected.
const MaxKeyPos = 255

// Positions is an ordered set of byte positions used to access a keyword,
// kept in strictly decreasing order so that LastChar (value 0) always sorts
// last. It mirrors gperf's Positions class (see positions.h in the original
// sources), re-cast as a value type instead of a fixed-capacity C array.
type Positions struct {
	p []int
}

// NewPositions builds a Positions set from the given positions, sorted into
// the canonical decreasing order. Duplicate values are collapsed.
func NewPositions(pos ...int) Positions {
	var ps Positions
	for _, p := range pos {
		ps.Add(p)
	}
	return ps
}

// Size returns the number of positions in the set.
func (ps *Positions) Size() int { return len(ps.p) }

// Contains reports whether pos is a member of the set.
func (ps *Positions) Contains(pos int) bool {
	for _, p := range ps.p {
		if p == pos {
			return true
		}
	}
	return false
}

// Add inserts pos into the set, preserving decreasing order. Adding a
// position already present is a no-op. Exceeding MaxKeyPos+1 members is a
// caller bug: positions are pairwise distinct, so it cannot occur in
// practice.
func (ps *Positions) Add(pos int) {
	if ps.Contains(pos) {
		return
	}
	ps.p = append(ps.p, pos)
	ps.sort()
}

// Remove deletes pos from the set, if present.
func (ps *Positions) Remove(pos int) {
	for i, p := range ps.p {
		if p == pos {
			ps.p = append(ps.p[:i], ps.p[i+1:]...)
			return
		}
	}
}

// sort re-establishes the decreasing-order invariant. LastChar (0) always
// ends up last since every numeric position is >= 1.
func (ps *Positions) sort() {
	sort.Sort(sort.Reverse(sort.IntSlice(ps.p)))
}

// Clone returns an independent copy of ps.
func (ps Positions) Clone() Positions {
	out := Positions{p: make([]int, len(ps.p))}
	copy(out.p, ps.p)
	return out
}

// Slice returns the positions in their canonical decreasing order. The
// returned slice must not be mutated by the caller.
func (ps Positions) Slice() []int { return ps.p }

// Iterate calls fn for each position in decreasing order (numeric positions
// first, LastChar last), stopping early if fn returns false.
func (ps Positions) Iterate(fn func(pos int) bool) {
	for _, p := range ps.p {
		if !fn(p) {
			return
		}
	}
}

// Equal reports whether ps and other contain the same positions.
func (ps Positions) Equal(other Positions) bool {
	if len(ps.p) != len(other.p) {
		return false
	}
	for i, p := range ps.p {
		if other.p[i] != p {
			return false
		}
	}
	return true
}

// String renders the set in gperf's external syntax, e.g. "1,3,$".
func (ps Positions) String() string {
	out := make([]byte, 0, 4*len(ps.p))
	for i, p := range ps.p {
		if i > 0 {
			out = append(out, ',')
		}
		if p == LastChar {
			out = append(out, '$')
		} else {
			out = appendInt(out, p)
		}
	}
	return string(out)
}

func appendInt(b []byte, v int) []byte {
	if v == 0 {
		return append(b, '0')
	}
	start := len(b)
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
