package perfect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestArenaBuildListCoversEveryIndex verifies buildList produces a list
// visiting every arena slot exactly once, in order.
func TestArenaBuildListCoversEveryIndex(t *testing.T) {
	a := newArena([]Keyword{
		{AllChars: []byte("a")},
		{AllChars: []byte("b")},
		{AllChars: []byte("c")},
	})
	head := a.buildList()

	var idxs []int32
	for p := head; p != nil; p = p.next {
		idxs = append(idxs, p.idx)
	}
	assert.Equal(t, []int32{0, 1, 2}, idxs)
}

// TestCopyListIsIndependent verifies that mutating the copy's links does not
// affect the original list.
func TestCopyListIsIndependent(t *testing.T) {
	a := newArena([]Keyword{{AllChars: []byte("a")}, {AllChars: []byte("b")}})
	head := a.buildList()
	cp := copyList(head)

	cp.next = nil

	assert.Equal(t, 2, listLen(head))
	assert.Equal(t, 1, listLen(cp))
}

// TestSelcharsTupleProjectsRequestedPositions verifies the tuple variant
// preserves the decreasing position order of Positions (3, 1, then LastChar)
// and resolves LastChar to the final byte.
func TestSelcharsTupleProjectsRequestedPositions(t *testing.T) {
	kw := &Keyword{AllChars: []byte("hello")}
	positions := NewPositions(1, 3, LastChar)

	got := selcharsTuple(kw, positions, nil, false)
	assert.Equal(t, []uint32{'l', 'h', 'o'}, got)
}

// TestSelcharsTupleAppliesAlphaInc verifies Step 2's alpha_inc offsets are
// added to the projected byte values.
func TestSelcharsTupleAppliesAlphaInc(t *testing.T) {
	kw := &Keyword{AllChars: []byte("ab")}
	positions := NewPositions(1, 2)
	alphaInc := []int{0, 5}

	got := selcharsTuple(kw, positions, alphaInc, false)
	assert.Equal(t, []uint32{'b' + 5, 'a'}, got) // position 2 is visited before position 1
}

// TestSelcharsTupleUseAllChars verifies that UseAllChars ignores positions
// and projects every byte of the keyword.
func TestSelcharsTupleUseAllChars(t *testing.T) {
	kw := &Keyword{AllChars: []byte("xyz")}
	got := selcharsTuple(kw, Positions{}, nil, true)
	assert.Equal(t, []uint32{'x', 'y', 'z'}, got)
}

// TestSelcharsMultisetIgnoresOrder verifies that two keywords whose tuple
// projections are permutations of each other produce equal multisets.
func TestSelcharsMultisetIgnoresOrder(t *testing.T) {
	positions := NewPositions(1, 2)
	ab := selcharsMultiset(&Keyword{AllChars: []byte("ab")}, positions, nil, false)
	ba := selcharsMultiset(&Keyword{AllChars: []byte("ba")}, positions, nil, false)

	assert.True(t, equalUint32(ab, ba))
}

// TestSortUint32 verifies the small-set insertion sort used by
// selcharsMultiset.
func TestSortUint32(t *testing.T) {
	s := []uint32{5, 1, 4, 2, 3}
	sortUint32(s)
	assert.Equal(t, []uint32{1, 2, 3, 4, 5}, s)
}

// TestEqualUint32 verifies both the happy path and the length-mismatch
// short-circuit.
func TestEqualUint32(t *testing.T) {
	assert.True(t, equalUint32([]uint32{1, 2}, []uint32{1, 2}))
	assert.False(t, equalUint32([]uint32{1, 2}, []uint32{1, 2, 3}))
	assert.False(t, equalUint32([]uint32{1, 2}, []uint32{1, 3}))
}
