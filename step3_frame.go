package perfect

// frame is one level of Step 3's explicit backtracking stack: the
// resolution attempt for a single hash collision. Recursion would mirror
// this shape more directly, but depth can equal the keyword list length
// (design notes §9), so the search keeps its own stack of frames instead
// of recursing.
type frame struct {
	currIdx    int      // index of the keyword whose hash collided
	priorIdx   int      // index of the keyword it collided with (diagnostics only)
	candidates []uint32 // disjoint-union byte set, ascending by occurrence
	iterations int      // trial budget per candidate

	candPos       int  // index into candidates currently being tried
	candStarted   bool // whether originalValue/currentValue were captured for candidates[candPos]
	trialsLeft    int  // remaining trials for candidates[candPos]
	currentValue  int  // most recent trial value written to asso_values[c]
	originalValue int  // asso_values[c] before this candidate started
}

// advance tries the next trial value for the frame's current candidate,
// moving on to the next candidate once the current one's trial budget is
// spent. It reports whether a new trial value was applied; once every
// candidate is exhausted it returns false and leaves asso_values exactly
// as it found them (every value tried has already been restored).
func (f *frame) advance(s *step3Search) bool {
	for f.candPos < len(f.candidates) {
		c := f.candidates[f.candPos]
		if !f.candStarted {
			f.originalValue = s.assoValues[c]
			f.currentValue = f.originalValue
			f.trialsLeft = f.iterations
			f.candStarted = true
		}
		if f.trialsLeft > 0 {
			f.trialsLeft--
			if s.cfg.Jump != 0 {
				f.currentValue = (f.currentValue + s.cfg.Jump) & (s.assoValueMax - 1)
			} else {
				f.currentValue = (f.currentValue + s.rand.Intn(s.assoValueMax)) & (s.assoValueMax - 1)
			}
			s.assoValues[c] = f.currentValue
			return true
		}
		// This candidate's trial budget is spent: restore and move on.
		s.assoValues[c] = f.originalValue
		f.candPos++
		f.candStarted = false
	}
	return false
}
