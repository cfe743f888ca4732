package sorting

// Insertion sorts s with insertion sort, moving each element left by
// adjacent swaps while it compares strictly less than its predecessor.
// Equal elements never pass each other, so the sort is stable.
// Complexity: O(n²) worst case, O(n) on already-sorted input, O(1) memory.
func Insertion[T any](s []T, cmp Comparator[T]) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && cmp(s[j], s[j-1]) < 0; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
