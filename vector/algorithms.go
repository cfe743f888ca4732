package vector

import (
	"github.com/katalvlaran/lvdsa/algo"
	"github.com/katalvlaran/lvdsa/sorting"
)

// ForEach calls fn for every live element in order.
func (v *Vector[T]) ForEach(fn func(x T)) {
	algo.ForEach(v.buf[:v.size], fn)
}

// ForEachIndex calls fn for every live element with its index.
func (v *Vector[T]) ForEachIndex(fn func(x T, idx int)) {
	algo.ForEachIndex(v.buf[:v.size], fn)
}

// ForEachRange calls fn for the elements of [start, end). The index passed
// to fn is relative to start.
func (v *Vector[T]) ForEachRange(start, end int, fn func(x T, idx int)) error {
	if err := v.checkRange("ForEachRange", start, end); err != nil {
		return err
	}
	algo.ForEachIndex(v.buf[start:end], fn)

	return nil
}

// Map calls fn with a pointer to every live element so it can be
// modified in place.
func (v *Vector[T]) Map(fn func(p *T)) {
	algo.Map(v.buf[:v.size], fn)
}

// MapIndex is Map with the element index.
func (v *Vector[T]) MapIndex(fn func(p *T, idx int)) {
	algo.MapIndex(v.buf[:v.size], fn)
}

// MapRange calls fn for the elements of [start, end) in place. The index
// passed to fn is relative to start.
func (v *Vector[T]) MapRange(start, end int, fn func(p *T, idx int)) error {
	if err := v.checkRange("MapRange", start, end); err != nil {
		return err
	}
	algo.MapIndex(v.buf[start:end], fn)

	return nil
}

// FindBy returns the index of the first element e with eq(e, x) == 0, or
// Size() when there is none.
func (v *Vector[T]) FindBy(x T, eq func(a, b T) int) int {
	return algo.FindBy(v.buf[:v.size], x, eq)
}

// FindRange searches [start, end) with eq and returns an absolute index,
// or end when nothing in the range matches.
func (v *Vector[T]) FindRange(start, end int, x T, eq func(a, b T) int) (int, error) {
	if err := v.checkRange("FindRange", start, end); err != nil {
		return end, err
	}

	return start + algo.FindBy(v.buf[start:end], x, eq), nil
}

// FindIf returns the index of the first element satisfying pred, or Size().
func (v *Vector[T]) FindIf(pred func(x T) bool) int {
	return algo.FindIf(v.buf[:v.size], pred)
}

// FindIfNot returns the index of the first element not satisfying pred,
// or Size().
func (v *Vector[T]) FindIfNot(pred func(x T) bool) int {
	return algo.FindIfNot(v.buf[:v.size], pred)
}

// IndexFunc is FindIf with an explicit found flag instead of the Size()
// sentinel.
func (v *Vector[T]) IndexFunc(pred func(x T) bool) (int, bool) {
	i := v.FindIf(pred)
	if i == v.size {
		return -1, false
	}

	return i, true
}

// Find returns the index of the first element of v equal to x, or
// v.Size() when x is absent.
func Find[T comparable](v *Vector[T], x T) int {
	return algo.Find(v.buf[:v.size], x)
}

// Index returns the index of the first element of v equal to x and
// whether it was found.
func Index[T comparable](v *Vector[T], x T) (int, bool) {
	i := Find(v, x)
	if i == v.size {
		return -1, false
	}

	return i, true
}

// Contains reports whether x is present in v.
func Contains[T comparable](v *Vector[T], x T) bool {
	_, ok := Index(v, x)

	return ok
}

// Fill overwrites every live element with x, running the destroyer on
// the previous values.
func (v *Vector[T]) Fill(x T) {
	v.fill(0, v.size, x)
}

// FillRange overwrites [start, end) with x.
func (v *Vector[T]) FillRange(start, end int, x T) error {
	if err := v.checkRange("FillRange", start, end); err != nil {
		return err
	}
	v.fill(start, end, x)

	return nil
}

// FillN overwrites n elements starting at start with x.
func (v *Vector[T]) FillN(start, n int, x T) error {
	if n < 0 {
		return vectorErrorf("FillN", ErrNegativeSize, "%d, %d", start, n)
	}
	if err := v.checkRange("FillN", start, start+n); err != nil {
		return err
	}
	v.fill(start, start+n, x)

	return nil
}

func (v *Vector[T]) fill(start, end int, x T) {
	v.destroyRange(start, end)
	algo.Fill(v.buf[start:end], x)
}

// Reverse reverses the live elements in place.
func (v *Vector[T]) Reverse() {
	algo.Reverse(v.buf[:v.size])
}

// ReverseRange reverses [start, end) in place.
func (v *Vector[T]) ReverseRange(start, end int) error {
	if err := v.checkRange("ReverseRange", start, end); err != nil {
		return err
	}
	algo.Reverse(v.buf[start:end])

	return nil
}

// Swap exchanges the elements at indices i and j.
func (v *Vector[T]) Swap(i, j int) error {
	if err := v.checkIndex("Swap", i); err != nil {
		return err
	}
	if err := v.checkIndex("Swap", j); err != nil {
		return err
	}
	algo.Swap(v.buf, i, j)

	return nil
}

// Sort orders the live elements by cmp with the algorithm picked by
// sorting.Choose and returns that algorithm.
func (v *Vector[T]) Sort(cmp sorting.Comparator[T]) sorting.Algorithm {
	return sorting.Run(v.buf[:v.size], cmp)
}

// SortRange orders [start, end) by cmp.
func (v *Vector[T]) SortRange(start, end int, cmp sorting.Comparator[T]) (sorting.Algorithm, error) {
	if err := v.checkRange("SortRange", start, end); err != nil {
		return 0, err
	}

	return sorting.Run(v.buf[start:end], cmp), nil
}

// SortWith orders the live elements with the named algorithm.
func (v *Vector[T]) SortWith(alg sorting.Algorithm, cmp sorting.Comparator[T]) error {
	if err := sorting.SortWith(alg, v.buf[:v.size], cmp); err != nil {
		return vectorErrorf("SortWith", err, "%s", alg)
	}

	return nil
}
