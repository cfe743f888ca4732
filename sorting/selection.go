package sorting

// Selection sorts s with selection sort: for each position it scans the
// unsorted suffix for the minimum and swaps it into place, skipping the
// swap when the minimum is already there.
// Complexity: O(n²) comparisons, at most n-1 swaps, O(1) memory. Not stable.
func Selection[T any](s []T, cmp Comparator[T]) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if cmp(s[j], s[minIdx]) < 0 {
				minIdx = j // new minimum of the suffix
			}
		}
		if minIdx != i {
			s[i], s[minIdx] = s[minIdx], s[i]
		}
	}
}
