package vector

import (
	"iter"
	"math"
	"unsafe"
)

// Stats counts the buffer work done by a Vector since construction (or
// since the last Free).
type Stats struct {
	// Reallocations is the number of times the buffer was replaced.
	Reallocations int

	// ElementCopies is the number of live elements moved into a new buffer
	// across all reallocations.
	ElementCopies int
}

// Vector is a growable contiguous buffer of T.
//
// buf has length equal to the capacity; only buf[:size] is live.
// elemSize is fixed by T. destroy, if non-nil, runs on every element
// leaving the live range.
type Vector[T any] struct {
	size     int      // number of live elements
	buf      []T      // owned storage, len(buf) == capacity
	elemSize uintptr  // unsafe.Sizeof(T)
	destroy  func(*T) // optional per-element finalizer
	stats    Stats    // reallocation diagnostics
}

// New creates an empty Vector with room for capacity elements.
// Returns ErrNegativeSize if capacity < 0.
// Complexity: O(capacity).
func New[T any](capacity int, opts ...Option[T]) (*Vector[T], error) {
	if capacity < 0 {
		return nil, vectorErrorf("New", ErrNegativeSize, "%d", capacity)
	}
	var zero T
	v := &Vector[T]{elemSize: unsafe.Sizeof(zero)}
	if capacity > 0 {
		v.buf = make([]T, capacity) // no buffer at all for capacity 0
	}
	for _, opt := range opts {
		opt(v)
	}

	return v, nil
}

// From creates a Vector holding a copy of src with capacity len(src).
// Complexity: O(len(src)).
func From[T any](src []T, opts ...Option[T]) *Vector[T] {
	v, _ := New[T](len(src), opts...) // len is never negative
	v.size = copy(v.buf, src)

	return v
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// ElemSize returns the width of one element in bytes.
func (v *Vector[T]) ElemSize() uintptr { return v.elemSize }

// Empty reports whether Size() == 0.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// MaxSize returns the largest element count the vector could address.
func (v *Vector[T]) MaxSize() int {
	if v.elemSize == 0 {
		return math.MaxInt
	}

	return int(uintptr(math.MaxInt) / v.elemSize)
}

// Stats returns the reallocation counters.
func (v *Vector[T]) Stats() Stats { return v.stats }

// At returns the element at index i. Negative indices count from the
// back, so At(-1) is the last element.
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	idx, err := v.resolve("At", i)
	if err != nil {
		var zero T
		return zero, err
	}

	return v.buf[idx], nil
}

// Ptr returns a pointer to the slot at index i (negative indices count
// from the back). The pointer is invalidated by any reallocation.
// Complexity: O(1).
func (v *Vector[T]) Ptr(i int) (*T, error) {
	idx, err := v.resolve("Ptr", i)
	if err != nil {
		return nil, err
	}

	return &v.buf[idx], nil
}

// Set overwrites the element at index i with x, running the destroyer
// on the previous value first.
// Complexity: O(1).
func (v *Vector[T]) Set(i int, x T) error {
	idx, err := v.resolve("Set", i)
	if err != nil {
		return err
	}
	v.destroyRange(idx, idx+1)
	v.buf[idx] = x

	return nil
}

// Front returns the first element or ErrEmpty.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, vectorErrorf("Front", ErrEmpty, "")
	}

	return v.buf[0], nil
}

// Back returns the last element or ErrEmpty.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, vectorErrorf("Back", ErrEmpty, "")
	}

	return v.buf[v.size-1], nil
}

// Data returns the live range as a slice aliasing the buffer. Its
// capacity is clipped to Size() so appending to it never writes into
// the vector's unused slots.
func (v *Vector[T]) Data() []T {
	return v.buf[:v.size:v.size]
}

// View returns the live sub-range [start, end) aliasing the buffer.
// Returns ErrInvalidRange unless 0 ≤ start ≤ end ≤ Size().
func (v *Vector[T]) View(start, end int) ([]T, error) {
	if err := v.checkRange("View", start, end); err != nil {
		return nil, err
	}

	return v.buf[start:end:end], nil
}

// All yields (index, element) pairs of the live range in order.
// Mutating the vector during iteration is not supported.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values yields the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Free runs the destroyer over every live element, releases the buffer
// and resets size, capacity, destroyer and stats. The element size is
// kept. The vector may be reused afterwards as a fresh, empty vector.
// Complexity: O(n).
func (v *Vector[T]) Free() {
	v.destroyRange(0, v.size)
	v.buf = nil
	v.size = 0
	v.destroy = nil
	v.stats = Stats{}
}

// Close calls Free. It always returns nil and lets a Vector be used as
// an io.Closer.
func (v *Vector[T]) Close() error {
	v.Free()

	return nil
}

// destroyRange runs the destroyer on buf[start:end] (if one is set) and
// zeroes the slots so the garbage collector can reclaim what they
// referenced.
func (v *Vector[T]) destroyRange(start, end int) {
	if v.destroy != nil {
		for i := start; i < end; i++ {
			v.destroy(&v.buf[i])
		}
	}
	clear(v.buf[start:end])
}
