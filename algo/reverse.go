package algo

// Reverse reverses s in place by swapping symmetric pairs from both ends
// inward and returns s. Exactly ⌊len(s)/2⌋ swaps are performed.
// Complexity: O(n) time, O(1) memory.
func Reverse[T any](s []T) []T {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l] // exchange the outermost unswapped pair
	}

	return s
}

// ReverseN reverses the first n slots of s and returns s.
// Complexity: O(min(n, len(s))).
func ReverseN[T any](s []T, n int) []T {
	Reverse(s[:clampN(len(s), n)])

	return s
}

// Swap exchanges the elements at positions i and j of s.
// Both indices must be within s; Swap(s, i, i) is a no-op.
// Complexity: O(1).
func Swap[T any](s []T, i, j int) {
	s[i], s[j] = s[j], s[i]
}
