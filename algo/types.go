package algo

// Predicate reports whether an element satisfies a condition.
// Used by FindIf and FindIfNot.
type Predicate[T any] func(v T) bool

// EqualFunc is a three-way comparator used for equality lookups.
// A return value of 0 means a and b are considered equal; the sign of
// a non-zero result is ignored by this package.
type EqualFunc[T any] func(a, b T) int

// clampN bounds a caller-supplied count to the length of the view.
// Negative counts select nothing.
func clampN(length, n int) int {
	if n < 0 {
		return 0
	}
	if n > length {
		return length
	}

	return n
}
