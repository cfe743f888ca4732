package array

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvdsa/algo"
	"github.com/katalvlaran/lvdsa/sorting"
)

var (
	// ErrNegativeSize indicates a negative length.
	ErrNegativeSize = errors.New("array: size must be non-negative")
	// ErrEmpty indicates an element access on a zero-length array.
	ErrEmpty = errors.New("array: array is empty")
	// ErrOutOfRange indicates an index outside the array.
	ErrOutOfRange = errors.New("array: index out of range")
	// ErrInvalidRange indicates a malformed [start, end) range.
	ErrInvalidRange = errors.New("array: invalid range")
)

func arrayErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("Array.%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}

// Option configures an Array at construction time.
type Option[T any] func(a *Array[T])

// WithDestroyer installs fn as the per-element finalizer, run on every
// slot that is overwritten by Set/Fill or released by Clear/Free.
// Panics on nil.
func WithDestroyer[T any](fn func(p *T)) Option[T] {
	if fn == nil {
		panic("array: WithDestroyer(nil)")
	}
	return func(a *Array[T]) { a.destroy = fn }
}

// Array is a fixed-length sequence of T. Every slot is always live.
type Array[T any] struct {
	data    []T
	destroy func(*T)
}

// New creates an array of n zero-valued elements.
func New[T any](n int, opts ...Option[T]) (*Array[T], error) {
	if n < 0 {
		return nil, arrayErrorf("New", ErrNegativeSize, "%d", n)
	}
	a := &Array[T]{data: make([]T, n)}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// From creates an array holding a copy of src.
func From[T any](src []T, opts ...Option[T]) *Array[T] {
	a, _ := New[T](len(src), opts...)
	copy(a.data, src)

	return a
}

// Len returns the fixed number of elements.
func (a *Array[T]) Len() int { return len(a.data) }

// Data returns the elements as a slice aliasing the array.
func (a *Array[T]) Data() []T { return a.data }

func (a *Array[T]) resolve(method string, i int) (int, error) {
	idx := i
	if idx < 0 {
		idx += len(a.data) // -1 is the last element
	}
	if idx < 0 || idx >= len(a.data) {
		return 0, arrayErrorf(method, ErrOutOfRange, "%d", i)
	}

	return idx, nil
}

func (a *Array[T]) checkRange(method string, start, end int) error {
	if start < 0 || end > len(a.data) || start > end {
		return arrayErrorf(method, ErrInvalidRange, "%d, %d", start, end)
	}

	return nil
}

func (a *Array[T]) release(s []T) {
	if a.destroy != nil {
		algo.Map(s, a.destroy)
	}
	clear(s)
}

// At returns the element at index i; negative i counts from the back.
func (a *Array[T]) At(i int) (T, error) {
	idx, err := a.resolve("At", i)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.data[idx], nil
}

// Ptr returns a pointer to the slot at index i.
func (a *Array[T]) Ptr(i int) (*T, error) {
	idx, err := a.resolve("Ptr", i)
	if err != nil {
		return nil, err
	}

	return &a.data[idx], nil
}

// Set overwrites the element at index i, destroying the previous value.
func (a *Array[T]) Set(i int, x T) error {
	idx, err := a.resolve("Set", i)
	if err != nil {
		return err
	}
	a.release(a.data[idx : idx+1])
	a.data[idx] = x

	return nil
}

// Front returns the first element.
func (a *Array[T]) Front() (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, arrayErrorf("Front", ErrEmpty, "")
	}

	return a.data[0], nil
}

// Back returns the last element.
func (a *Array[T]) Back() (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, arrayErrorf("Back", ErrEmpty, "")
	}

	return a.data[len(a.data)-1], nil
}

// Fill overwrites every element with x.
func (a *Array[T]) Fill(x T) {
	a.release(a.data)
	algo.Fill(a.data, x)
}

// FillRange overwrites [start, end) with x.
func (a *Array[T]) FillRange(start, end int, x T) error {
	if err := a.checkRange("FillRange", start, end); err != nil {
		return err
	}
	a.release(a.data[start:end])
	algo.Fill(a.data[start:end], x)

	return nil
}

// ForEach calls fn for every element in order.
func (a *Array[T]) ForEach(fn func(x T, idx int)) { algo.ForEachIndex(a.data, fn) }

// Map calls fn with a pointer to every element in order.
func (a *Array[T]) Map(fn func(p *T, idx int)) { algo.MapIndex(a.data, fn) }

// FindIf returns the index of the first element satisfying pred, or Len().
func (a *Array[T]) FindIf(pred func(x T) bool) int { return algo.FindIf(a.data, pred) }

// FindIfNot returns the index of the first element failing pred, or Len().
func (a *Array[T]) FindIfNot(pred func(x T) bool) int { return algo.FindIfNot(a.data, pred) }

// Find returns the index of the first element of a equal to x, or a.Len().
func Find[T comparable](a *Array[T], x T) int { return algo.Find(a.data, x) }

// Reverse reverses the array in place.
func (a *Array[T]) Reverse() { algo.Reverse(a.data) }

// ReverseRange reverses [start, end) in place.
func (a *Array[T]) ReverseRange(start, end int) error {
	if err := a.checkRange("ReverseRange", start, end); err != nil {
		return err
	}
	algo.Reverse(a.data[start:end])

	return nil
}

// Sort orders the array by cmp using sorting.Choose and returns the
// algorithm that ran.
func (a *Array[T]) Sort(cmp sorting.Comparator[T]) sorting.Algorithm {
	return sorting.Run(a.data, cmp)
}

// SortRange orders [start, end) by cmp.
func (a *Array[T]) SortRange(start, end int, cmp sorting.Comparator[T]) error {
	if err := a.checkRange("SortRange", start, end); err != nil {
		return err
	}
	sorting.Sort(a.data[start:end], cmp)

	return nil
}

// Clear destroys every element and resets it to the zero value. The
// length is unchanged.
func (a *Array[T]) Clear() { a.release(a.data) }

// Free destroys every element and releases the storage; Len becomes 0.
func (a *Array[T]) Free() {
	a.release(a.data)
	a.data = nil
	a.destroy = nil
}
