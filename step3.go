package perfect

// step3Search finds asso_values[] such that the hash formula is injective
// over the keyword representatives (spec.md §4.7). It owns every scratch
// structure Step 3 needs: the occurrence table, the candidate associated
// values, the iteration-numbered collision detector and the backtracking
// stack.
type step3Search struct {
	cfg       *Config
	arena     *arena
	positions Positions
	alphaInc  []int
	maxKeyLen int
	keysigLen int // number of selected positions (get_max_keysig_size)

	alphaSize    int
	assoValueMax int
	maxHashValue int

	occurrences []int
	assoValues  []int
	determined  []bool

	collisionDetector *boolArray
	unionSet          []uint32

	rand RandSource

	totalDuplicates int
}

// newStep3Search allocates every Step 3 scratch structure per
// spec.md §4.7's "Parameters"/"Preparation" and SPEC_FULL.md §6.2's
// alpha_size decision.
func newStep3Search(cfg *Config, a *arena, positions Positions, alphaInc []int, maxKeyLen, keysigLen int) *step3Search {
	maxInc := 0
	for _, v := range alphaInc {
		if v > maxInc {
			maxInc = v
		}
	}
	alphaSize := cfg.alphaSize() + maxInc

	s := &step3Search{
		cfg:         cfg,
		arena:       a,
		positions:   positions,
		alphaInc:    alphaInc,
		maxKeyLen:   maxKeyLen,
		keysigLen:   keysigLen,
		alphaSize:   alphaSize,
		occurrences: make([]int, alphaSize),
		assoValues:  make([]int, alphaSize),
		determined:  make([]bool, alphaSize),
		unionSet:    make([]uint32, 0, 2*keysigLen),
	}
	if cfg.Rand != nil {
		s.rand = cfg.Rand
	} else {
		s.rand = newDefaultRand()
	}
	return s
}

// foldDuplicates recomputes every keyword's multiset selchars under the
// final Positions/alpha_inc, builds the representatives hash table, and
// removes every duplicate from head into its representative's
// DuplicateLink chain. Returns the new head (representatives only) and the
// number of keywords removed into duplicate chains. It mirrors
// search.cc::Search::prepare()'s duplicate-folding block.
func (s *step3Search) foldDuplicates(head *node) (*node, int) {
	n := listLen(head)
	t := newHashTable(s.arena, n, s.cfg.IgnoreLength)

	var newHead, tail *node
	folded := 0
	for p := head; p != nil; {
		kw := s.arena.get(p.idx)
		kw.Selchars = selcharsMultiset(&kw.Keyword, s.positions, s.alphaInc, s.cfg.UseAllChars)

		next := p.next
		if otherIdx := t.insert(p.idx); otherIdx != noEntry {
			other := s.arena.get(otherIdx)
			if s.cfg.Debug {
				tracer().Debugf("key link: %q = %q, selchars=%v", string(kw.AllChars), string(other.AllChars), kw.Selchars)
			}
			kw.DuplicateLink = other.DuplicateLink
			other.DuplicateLink = p.idx
			folded++
		} else {
			if newHead == nil {
				newHead = p
			} else {
				tail.next = p
			}
			tail = p
		}
		p = next
	}
	if tail != nil {
		tail.next = nil
	}
	s.totalDuplicates += folded
	return newHead, folded
}

// computeOccurrences tallies, for every byte value, how many times it
// appears among the selchars of every surviving representative.
func (s *step3Search) computeOccurrences(head *node) {
	for i := range s.occurrences {
		s.occurrences[i] = 0
	}
	for p := head; p != nil; p = p.next {
		kw := s.arena.get(p.idx)
		for _, c := range kw.Selchars {
			s.occurrences[c]++
		}
	}
}

// prepareAssoValues computes asso_value_max and max_hash_value, and
// allocates the collision detector, per spec.md §4.7.
// The SizeMultiple==0 interpretation follows SPEC_FULL.md §6.3: it leaves
// the non-duplicate keyword count unscaled, rather than normalizing to 1.
func (s *step3Search) prepareAssoValues(nonLinkedLength int) {
	sm := s.cfg.SizeMultiple
	var assoValueMax int
	switch {
	case sm == 0:
		assoValueMax = nonLinkedLength
	case sm > 0:
		assoValueMax = nonLinkedLength * sm
	default:
		assoValueMax = nonLinkedLength / -sm
	}
	if assoValueMax == 0 {
		assoValueMax = 1
	}
	s.assoValueMax = int(nextPow2(uint32(assoValueMax)))

	maxKeysigSize := s.keysigLen
	if s.cfg.UseAllChars {
		maxKeysigSize = s.maxKeyLen
	}
	lengthTerm := 0
	if !s.cfg.IgnoreLength {
		lengthTerm = s.maxKeyLen
	}
	s.maxHashValue = lengthTerm + (s.assoValueMax-1)*maxKeysigSize

	s.collisionDetector = newBoolArray(s.maxHashValue + 1)
	s.unionSet = make([]uint32, 0, 2*maxKeysigSize)

	if s.cfg.Debug {
		tracer().Debugf("step3: non_linked_length=%d asso_value_max=%d max_hash_value=%d",
			nonLinkedLength, s.assoValueMax, s.maxHashValue)
	}
}

// initAssoValues puts a first guess into asso_values[], either a single
// repeated seed or (when initialAssoValue < 0) a uniformly random value
// per slot.
func (s *step3Search) initAssoValues(initialAssoValue int) {
	if initialAssoValue < 0 {
		for i := range s.assoValues {
			s.assoValues[i] = s.rand.Intn(s.assoValueMax)
		}
		return
	}
	v := initialAssoValue & (s.assoValueMax - 1)
	for i := range s.assoValues {
		s.assoValues[i] = v
	}
}

// computeHash computes a keyword's hash value relative to the current
// asso_values[] and stores it on the keyword (spec.md's hash formula).
func (s *step3Search) computeHash(kw *KeywordExt) int {
	sum := 0
	if !s.cfg.IgnoreLength {
		sum = len(kw.AllChars)
	}
	for _, c := range kw.Selchars {
		sum += s.assoValues[c]
	}
	kw.HashValue = sum
	return sum
}
