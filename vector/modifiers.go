package vector

import (
	"slices"
	"unsafe"
)

// PushBack appends x, doubling the capacity first when the vector is full.
// Growth replaces the buffer and invalidates earlier aliases.
// Complexity: amortised O(1).
func (v *Vector[T]) PushBack(x T) {
	v.growFor(1)
	v.buf[v.size] = x
	v.size++
}

// PopBack removes the last element, running the destroyer on it.
// The capacity is unchanged. Returns ErrEmpty on an empty vector.
// Complexity: O(1).
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return vectorErrorf("PopBack", ErrEmpty, "")
	}
	v.destroyRange(v.size-1, v.size)
	v.size--

	return nil
}

// Insert places x at index pos, shifting [pos, Size()) one slot right.
// pos == Size() appends. Positions past Size() are rejected with
// ErrOutOfRange rather than leaving a gap of unset slots.
// Complexity: O(Size() - pos), plus O(Size()) on growth.
func (v *Vector[T]) Insert(pos int, x T) error {
	if pos < 0 || pos > v.size {
		return vectorErrorf("Insert", ErrOutOfRange, "%d", pos)
	}
	if pos == v.size {
		v.PushBack(x)
		return nil
	}
	v.growFor(1)
	copy(v.buf[pos+1:v.size+1], v.buf[pos:v.size]) // block move of the tail
	v.buf[pos] = x
	v.size++

	return nil
}

// InsertRange inserts a copy of src at index pos, shifting the tail right
// by len(src). src may alias the vector's own storage.
// Complexity: O(Size() - pos + len(src)), plus O(Size()) on growth.
func (v *Vector[T]) InsertRange(pos int, src []T) error {
	if pos < 0 || pos > v.size {
		return vectorErrorf("InsertRange", ErrOutOfRange, "%d", pos)
	}
	k := len(src)
	if k == 0 {
		return nil
	}
	if v.aliases(src) {
		src = slices.Clone(src) // the tail shift would overwrite it
	}
	v.growFor(k)
	copy(v.buf[pos+k:v.size+k], v.buf[pos:v.size])
	copy(v.buf[pos:pos+k], src)
	v.size += k

	return nil
}

// Erase removes the element at index pos, running the destroyer on it and
// shifting the tail left by one.
// Complexity: O(Size() - pos).
func (v *Vector[T]) Erase(pos int) error {
	if err := v.checkIndex("Erase", pos); err != nil {
		return err
	}
	v.eraseRange(pos, pos+1)

	return nil
}

// EraseRange removes [start, end), running the destroyer on each removed
// element in order, then shifting the tail left. An empty range is a no-op.
// Complexity: O(Size() - start).
func (v *Vector[T]) EraseRange(start, end int) error {
	if err := v.checkRange("EraseRange", start, end); err != nil {
		return err
	}
	v.eraseRange(start, end)

	return nil
}

// eraseRange does the work of EraseRange on a validated range.
func (v *Vector[T]) eraseRange(start, end int) {
	k := end - start
	if k == 0 {
		return
	}
	if v.destroy != nil {
		for i := start; i < end; i++ {
			v.destroy(&v.buf[i])
		}
	}
	copy(v.buf[start:], v.buf[end:v.size])
	clear(v.buf[v.size-k : v.size]) // vacated tail
	v.size -= k
}

// Assign replaces the contents with n copies of x. The destroyer runs
// over every current element first; the buffer grows to exactly n when
// it is too small. Returns ErrNegativeSize for n < 0.
// Complexity: O(Size() + n).
func (v *Vector[T]) Assign(n int, x T) error {
	if n < 0 {
		return vectorErrorf("Assign", ErrNegativeSize, "%d", n)
	}
	v.destroyRange(0, v.size)
	v.size = 0
	if n > len(v.buf) {
		v.reallocate(n)
	}
	for i := 0; i < n; i++ {
		v.buf[i] = x
	}
	v.size = n

	return nil
}

// AssignRange replaces the contents with a copy of src, so that Data()
// equals src element for element afterwards. src may alias the vector's
// own storage; when a destroyer is installed the aliased elements are
// destroyed before being copied back, which is the caller's concern.
// Complexity: O(Size() + len(src)).
func (v *Vector[T]) AssignRange(src []T) {
	if v.aliases(src) {
		src = slices.Clone(src)
	}
	v.destroyRange(0, v.size)
	v.size = 0
	if len(src) > len(v.buf) {
		v.reallocate(len(src))
	}
	v.size = copy(v.buf, src)
}

// Clear removes every element, running the destroyer on each. The
// capacity is kept.
// Complexity: O(Size()).
func (v *Vector[T]) Clear() {
	v.destroyRange(0, v.size)
	v.size = 0
}

// aliases reports whether s shares memory with the vector's buffer.
func (v *Vector[T]) aliases(s []T) bool {
	if len(s) == 0 || len(v.buf) == 0 || v.elemSize == 0 {
		return false
	}
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(v.buf)))
	hi := lo + uintptr(len(v.buf))*v.elemSize
	p := uintptr(unsafe.Pointer(unsafe.SliceData(s)))

	return p+uintptr(len(s))*v.elemSize > lo && p < hi
}
