package perfect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newStep2(t *testing.T, keywords []Keyword, positions Positions, cfg Config) *step2 {
	t.Helper()
	a := newArena(keywords)
	head := a.buildList()
	maxLen := 0
	for _, kw := range keywords {
		if n := len(kw.AllChars); n > maxLen {
			maxLen = n
		}
	}
	return &step2{cfg: &cfg, arena: a, head: head, positions: positions, maxLen: maxLen}
}

// TestStep2RunSeparatesOrderSensitiveDuplicate exercises the classic case
// Step 2 exists for: "ab" and "ba" project to the same multiset under
// positions {1,2} (order doesn't matter to a multiset) even though their
// tuple projections already differ, so Step 1 accepted these positions.
// Step 2 must find an alpha_inc that also separates the multiset.
func TestStep2RunSeparatesOrderSensitiveDuplicate(t *testing.T) {
	s := newStep2(t, []Keyword{
		{AllChars: []byte("ab")},
		{AllChars: []byte("ba")},
	}, NewPositions(1, 2), DefaultConfig())

	alphaInc := s.run()

	assert.Equal(t, []int{0, 1}, alphaInc)
	assert.Equal(t, 0, s.countDuplicates(alphaInc))
}

// TestStep2RunNoopWhenAlreadyInjective verifies that Step 2 leaves alpha_inc
// at zero when the multiset projection is already injective.
func TestStep2RunNoopWhenAlreadyInjective(t *testing.T) {
	s := newStep2(t, []Keyword{
		{AllChars: []byte("ax")},
		{AllChars: []byte("by")},
	}, NewPositions(1, 2), DefaultConfig())

	alphaInc := s.run()
	assert.Equal(t, []int{0, 0}, alphaInc)
}

// TestStep2AdjustableIndicesExcludesLastChar verifies that LastChar never
// appears as an adjustable byte index, since its offset in AllChars
// depends on keyword length rather than being fixed.
func TestStep2AdjustableIndicesExcludesLastChar(t *testing.T) {
	s := newStep2(t, nil, NewPositions(1, LastChar), DefaultConfig())
	idx := s.adjustableIndices()
	assert.Equal(t, []int{0}, idx)
}

// TestStep2AdjustableIndicesUseAllChars verifies that UseAllChars mode
// makes every byte index adjustable regardless of positions.
func TestStep2AdjustableIndicesUseAllChars(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseAllChars = true
	s := newStep2(t, []Keyword{{AllChars: []byte("abcd")}}, Positions{}, cfg)
	idx := s.adjustableIndices()
	assert.Equal(t, []int{0, 1, 2, 3}, idx)
}

// TestStep2RunZeroMaxLen verifies the degenerate case of an empty keyword
// list never panics and returns an empty slice.
func TestStep2RunZeroMaxLen(t *testing.T) {
	s := newStep2(t, nil, Positions{}, DefaultConfig())
	assert.Empty(t, s.run())
}
