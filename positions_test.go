package perfect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPositionsAddKeepsDecreasingOrder verifies that the LastChar value
// always sorts last regardless of insertion order.
func TestPositionsAddKeepsDecreasingOrder(t *testing.T) {
	var ps Positions
	ps.Add(3)
	ps.Add(LastChar)
	ps.Add(1)
	ps.Add(7)

	assert.Equal(t, []int{7, 3, 1, LastChar}, ps.Slice())
}

// TestPositionsAddIsIdempotent verifies that adding an already-present
// position does not change the set.
func TestPositionsAddIsIdempotent(t *testing.T) {
	ps := NewPositions(1, 2, 3)
	ps.Add(2)
	assert.Equal(t, 3, ps.Size())
}

// TestPositionsRemove verifies that removing a present position shrinks the
// set and removing an absent one is a no-op.
func TestPositionsRemove(t *testing.T) {
	ps := NewPositions(1, 2, 3)
	ps.Remove(2)
	assert.False(t, ps.Contains(2))
	assert.Equal(t, 2, ps.Size())

	ps.Remove(99)
	assert.Equal(t, 2, ps.Size())
}

// TestPositionsClone verifies that mutating a clone does not affect the
// original.
func TestPositionsClone(t *testing.T) {
	ps := NewPositions(1, 2, 3)
	clone := ps.Clone()
	clone.Add(5)

	assert.False(t, ps.Contains(5))
	assert.True(t, clone.Contains(5))
}

// TestPositionsEqual verifies order-independent equality.
func TestPositionsEqual(t *testing.T) {
	a := NewPositions(1, 2, 3)
	b := NewPositions(3, 1, 2)
	c := NewPositions(1, 2)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

// TestPositionsString verifies gperf's external rendering syntax, including
// the "$" sigil for LastChar.
func TestPositionsString(t *testing.T) {
	ps := NewPositions(1, 3, LastChar)
	assert.Equal(t, "3,1,$", ps.String())
}

// TestPositionsIterateStopsEarly verifies that returning false from the
// callback halts iteration.
func TestPositionsIterateStopsEarly(t *testing.T) {
	ps := NewPositions(1, 2, 3)
	var seen []int
	ps.Iterate(func(p int) bool {
		seen = append(seen, p)
		return len(seen) < 2
	})
	assert.Len(t, seen, 2)
}
