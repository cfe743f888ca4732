package algo

// Fill overwrites every slot of s with a copy of v.
// Complexity: O(n) time, O(1) memory.
func Fill[T any](s []T, v T) {
	for i := range s { // ascending slot order
		s[i] = v
	}
}

// FillN overwrites the first n slots of s with v.
// n is clamped to len(s); a negative n fills nothing.
// Complexity: O(n) time, O(1) memory.
func FillN[T any](s []T, n int, v T) {
	Fill(s[:clampN(len(s), n)], v)
}
