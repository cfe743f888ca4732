package algo

// ForEach calls fn once per slot of s in ascending order.
// fn receives a copy of each element; use Map to mutate in place.
// Complexity: O(n).
func ForEach[T any](s []T, fn func(v T)) {
	for i := range s {
		fn(s[i])
	}
}

// ForEachIndex calls fn once per slot of s in ascending order together
// with the 0-based position of the slot within s.
// Complexity: O(n).
func ForEachIndex[T any](s []T, fn func(v T, idx int)) {
	for i := range s {
		fn(s[i], i)
	}
}

// ForEachN is ForEach restricted to the first n slots of s.
// Complexity: O(min(n, len(s))).
func ForEachN[T any](s []T, n int, fn func(v T)) {
	ForEach(s[:clampN(len(s), n)], fn)
}

// Map calls fn with a pointer to every slot of s in ascending order.
// The callback may modify the element in place.
// Complexity: O(n).
func Map[T any](s []T, fn func(p *T)) {
	for i := range s {
		fn(&s[i]) // pointer into the caller's view
	}
}

// MapIndex is Map with the 0-based slot position passed alongside.
// Complexity: O(n).
func MapIndex[T any](s []T, fn func(p *T, idx int)) {
	for i := range s {
		fn(&s[i], i)
	}
}

// MapN is Map restricted to the first n slots of s.
// Complexity: O(min(n, len(s))).
func MapN[T any](s []T, n int, fn func(p *T)) {
	Map(s[:clampN(len(s), n)], fn)
}
