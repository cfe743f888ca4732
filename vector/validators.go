package vector

// checkIndex validates 0 ≤ i < size.
func (v *Vector[T]) checkIndex(method string, i int) error {
	if i < 0 || i >= v.size {
		return vectorErrorf(method, ErrOutOfRange, "%d", i)
	}

	return nil
}

// checkRange validates 0 ≤ start ≤ end ≤ size.
func (v *Vector[T]) checkRange(method string, start, end int) error {
	if start < 0 || end > v.size || start > end {
		return vectorErrorf(method, ErrInvalidRange, "%d, %d", start, end)
	}

	return nil
}

// resolve maps a possibly negative index onto [0, size). Negative values
// count from the back: -1 is the last element.
func (v *Vector[T]) resolve(method string, i int) (int, error) {
	idx := i
	if idx < 0 {
		idx += v.size
	}
	if idx < 0 || idx >= v.size {
		return 0, vectorErrorf(method, ErrOutOfRange, "%d", i)
	}

	return idx, nil
}
