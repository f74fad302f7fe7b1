package perfect

// boolArray is a bit array of fixed size, optimized for being filled
// sparsely and cleared frequently: Step 3 clears it thousands of times and
// sets bits in it millions of times, so clear() must be O(1) rather than
// O(size). It mirrors gperf's Bool_Array (bool-array.h): each slot stores
// the iteration number at which it was last set, rather than a raw bit.
type boolArray struct {
	storage   []uint64
	iteration uint64
}

// newBoolArray returns a bit array with room for bits numbered 0..size-1.
func newBoolArray(size int) *boolArray {
	return &boolArray{
		storage:   make([]uint64, size),
		iteration: 1,
	}
}

// clear resets every bit to zero. O(1): it merely starts a new generation.
func (b *boolArray) clear() {
	b.iteration++
}

// setBit sets bit index for the current generation and reports whether it
// was already set in this generation.
func (b *boolArray) setBit(index int) (wasSet bool) {
	if b.storage[index] == b.iteration {
		return true
	}
	b.storage[index] = b.iteration
	return false
}
