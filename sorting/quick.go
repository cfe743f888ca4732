package sorting

// Quick sorts s with quicksort using the middle element as pivot and a
// Hoare-style two-pointer partition, then recurses on both partitions.
// There is no randomisation and no fallback, so adversarial input
// degrades to O(n²).
// Complexity: average O(n log n), O(log n) stack on balanced splits. Not stable.
func Quick[T any](s []T, cmp Comparator[T]) {
	n := len(s)
	if n <= 1 {
		return
	}

	// Copy the pivot value: swaps below may move the pivot slot.
	pivot := s[n/2]
	left, right := 0, n-1

	for left <= right {
		// The bounds guards only matter for comparators that are not a
		// strict weak ordering; a valid one stops at the pivot value.
		for left < n-1 && cmp(s[left], pivot) < 0 {
			left++
		}
		for right > 0 && cmp(s[right], pivot) > 0 {
			right--
		}
		if left <= right {
			s[left], s[right] = s[right], s[left]
			left++
			right--
		}
	}

	// s[:right+1] ≤ pivot ≤ s[left:]
	Quick(s[:right+1], cmp)
	Quick(s[left:], cmp)
}
