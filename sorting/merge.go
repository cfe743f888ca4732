package sorting

// Merge sorts s with top-down merge sort. A single scratch buffer of
// len(s) elements is allocated per call and shared by every recursive
// merge. When the heads of both halves compare equal the left one is
// taken first, which makes the sort stable.
// Complexity: O(n log n) time, O(n) extra memory.
func Merge[T any](s []T, cmp Comparator[T]) {
	if len(s) <= 1 {
		return
	}
	buf := make([]T, len(s))
	mergeSort(s, buf, cmp)
}

// mergeSort sorts s using buf (same length) as scratch space.
func mergeSort[T any](s, buf []T, cmp Comparator[T]) {
	n := len(s)
	if n <= 1 {
		return
	}
	mid := n / 2
	mergeSort(s[:mid], buf[:mid], cmp)
	mergeSort(s[mid:], buf[mid:], cmp)

	// Already ordered across the seam: nothing to merge.
	if cmp(s[mid-1], s[mid]) <= 0 {
		return
	}

	l, r, k := 0, mid, 0
	for l < mid && r < n {
		if cmp(s[l], s[r]) <= 0 { // ties favour the left half
			buf[k] = s[l]
			l++
		} else {
			buf[k] = s[r]
			r++
		}
		k++
	}
	k += copy(buf[k:], s[l:mid])
	copy(buf[k:], s[r:n])
	copy(s, buf[:n])
}
