package vector

// reallocate replaces the buffer with one of exactly n slots and copies
// the live range over. Callers guarantee n ≥ size.
func (v *Vector[T]) reallocate(n int) {
	var next []T
	if n > 0 {
		next = make([]T, n)
	}
	copied := copy(next, v.buf[:v.size]) // only live slots move
	v.buf = next
	v.stats.Reallocations++
	v.stats.ElementCopies += copied
}

// growFor ensures room for extra more elements, doubling the capacity
// (starting from 1) until it fits.
func (v *Vector[T]) growFor(extra int) {
	need := v.size + extra
	if need <= len(v.buf) {
		return
	}
	next := len(v.buf)
	if next == 0 {
		next = 1
	}
	for next < need {
		next *= 2
	}
	v.reallocate(next)
}

// Reserve grows the capacity to exactly n if it is currently smaller.
// It never shrinks the buffer. Returns ErrNegativeSize for n < 0.
// Complexity: O(Size()) when it grows, O(1) otherwise.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return vectorErrorf("Reserve", ErrNegativeSize, "%d", n)
	}
	if n <= len(v.buf) {
		return nil
	}
	v.reallocate(n)

	return nil
}

// Resize sets the number of live elements to n.
//
//   - n > Cap(): the buffer grows to exactly n slots.
//   - n > Size(): the new slots hold the zero value of T.
//   - n < Size(): the destroyer runs on the excluded tail first.
//
// Returns ErrNegativeSize for n < 0.
// Complexity: O(|n - Size()|) plus O(Size()) on reallocation.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return vectorErrorf("Resize", ErrNegativeSize, "%d", n)
	}
	switch {
	case n == v.size:
		return nil
	case n < v.size:
		v.destroyRange(n, v.size)
	case n > len(v.buf):
		v.reallocate(n)
	}
	v.size = n

	return nil
}

// ShrinkToFit reallocates the buffer to exactly Size() slots. It does
// nothing when the capacity already equals the size, so a second call
// never reallocates.
// Complexity: O(Size()).
func (v *Vector[T]) ShrinkToFit() {
	if len(v.buf) == v.size {
		return
	}
	v.reallocate(v.size)
}
