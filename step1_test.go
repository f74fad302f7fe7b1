package perfect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newStep1(t *testing.T, keywords []Keyword, cfg Config) (*step1, *arena) {
	t.Helper()
	a := newArena(keywords)
	head := a.buildList()
	maxLen := 0
	for _, kw := range keywords {
		if n := len(kw.AllChars); n > maxLen {
			maxLen = n
		}
	}
	return &step1{cfg: &cfg, arena: a, head: head, maxLen: maxLen}, a
}

// TestStep1MandatoryPositionsFindsSoleDifference verifies that "ab"/"ba",
// which differ at exactly one interior byte, makes that byte mandatory.
func TestStep1MandatoryPositionsFindsSoleDifference(t *testing.T) {
	s, _ := newStep1(t, []Keyword{
		{AllChars: []byte("ab")},
		{AllChars: []byte("ba")},
	}, DefaultConfig())

	mandatory := s.mandatoryPositions()
	assert.True(t, mandatory.Equal(NewPositions(1)))
}

// TestStep1MandatoryPositionsEmptyWhenDuplicatesAllowed verifies that
// AllowDuplicates short-circuits mandatory-position detection entirely.
func TestStep1MandatoryPositionsEmptyWhenDuplicatesAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowDuplicates = true
	s, _ := newStep1(t, []Keyword{
		{AllChars: []byte("ab")},
		{AllChars: []byte("ba")},
	}, cfg)

	mandatory := s.mandatoryPositions()
	assert.Equal(t, 0, mandatory.Size())
}

// TestStep1RunResolvesMandatoryCase verifies the full run() pipeline on the
// "ab"/"ba" case: the single mandatory position already separates both
// keywords, so greedy add/remove/replace all leave it untouched.
func TestStep1RunResolvesMandatoryCase(t *testing.T) {
	s, _ := newStep1(t, []Keyword{
		{AllChars: []byte("ab")},
		{AllChars: []byte("ba")},
	}, DefaultConfig())

	positions := s.run()
	assert.True(t, positions.Equal(NewPositions(1)), "got %s", positions.String())
	assert.Equal(t, 0, s.countDuplicates(positions))
}

// TestStep1RunWithUserPositionsSkipsSearch verifies that Optimize's
// UserPositions shortcut is honored by returning the caller's set
// unmodified (Search.Optimize relies on step1.run for this: it builds a
// step1 whenever UseAllChars is off, and run returns UserPositions before
// any search).
func TestStep1RunWithUserPositionsSkipsSearch(t *testing.T) {
	cfg := DefaultConfig()
	want := NewPositions(2, LastChar)
	cfg.UserPositions = &want

	s, _ := newStep1(t, []Keyword{{AllChars: []byte("xy")}}, cfg)
	got := s.run()
	assert.True(t, got.Equal(want))
}

// TestStep1GreedyAddPrefersNumericOnTie verifies the tie-break rule: when a
// numeric position and LastChar reduce duplicates equally, the numeric one
// wins.
func TestStep1GreedyAddPrefersNumericOnTie(t *testing.T) {
	s, _ := newStep1(t, []Keyword{
		{AllChars: []byte("ab")},
		{AllChars: []byte("ba")},
	}, DefaultConfig())

	current := Positions{}
	s.greedyAdd(&current)
	assert.True(t, current.Contains(1), "expected numeric position 1 to win the tie, got %s", current.String())
	assert.False(t, current.Contains(LastChar))
}

// TestStep1CandidatePositionsCapsAtMaxKeyPos verifies the candidate list is
// bounded by MaxKeyPos even for very long keywords.
func TestStep1CandidatePositionsCapsAtMaxKeyPos(t *testing.T) {
	s, _ := newStep1(t, nil, DefaultConfig())
	s.maxLen = MaxKeyPos + 50
	cand := s.candidatePositions()
	assert.Len(t, cand, MaxKeyPos+1) // LastChar plus 1..MaxKeyPos
}
