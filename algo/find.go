package algo

// Find returns the index of the first element of s equal to v, or len(s)
// when v is absent. Equality is Go's == on the element type, which for
// value types is a field-by-field (byte-wise for plain data) comparison.
// Complexity: O(n).
func Find[T comparable](s []T, v T) int {
	for i := range s {
		if s[i] == v {
			return i // first match wins
		}
	}

	return len(s) // end sentinel
}

// FindBy returns the index of the first element e of s with eq(e, v) == 0,
// or len(s) when no element compares equal.
// Complexity: O(n) calls to eq.
func FindBy[T any](s []T, v T, eq func(a, b T) int) int {
	for i := range s {
		if eq(s[i], v) == 0 {
			return i
		}
	}

	return len(s)
}

// FindN searches only the first n slots of s. The end sentinel is the
// clamped n, not len(s).
// Complexity: O(min(n, len(s))).
func FindN[T comparable](s []T, n int, v T) int {
	return Find(s[:clampN(len(s), n)], v)
}

// FindIf returns the index of the first element satisfying pred, or len(s).
// Complexity: O(n) calls to pred.
func FindIf[T any](s []T, pred func(v T) bool) int {
	for i := range s {
		if pred(s[i]) {
			return i
		}
	}

	return len(s)
}

// FindIfNot returns the index of the first element for which pred is
// false, or len(s) when every element satisfies pred.
// Complexity: O(n) calls to pred.
func FindIfNot[T any](s []T, pred func(v T) bool) int {
	for i := range s {
		if !pred(s[i]) {
			return i
		}
	}

	return len(s)
}
