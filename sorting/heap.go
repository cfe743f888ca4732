package sorting

// Heap sorts s with heap sort: a max-heap is built bottom-up from the last
// parent node, then the root is repeatedly swapped to the end of the
// shrinking heap and sifted down.
// Complexity: O(n log n) time, O(1) memory. Not stable.
func Heap[T any](s []T, cmp Comparator[T]) {
	n := len(s)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n, cmp)
	}
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0] // current max to its final slot
		siftDown(s, 0, end, cmp)
	}
}

// siftDown restores the max-heap property for the subtree rooted at i
// within s[:size].
func siftDown[T any](s []T, i, size int, cmp Comparator[T]) {
	for {
		largest := i
		l, r := 2*i+1, 2*i+2
		if l < size && cmp(s[l], s[largest]) > 0 {
			largest = l
		}
		if r < size && cmp(s[r], s[largest]) > 0 {
			largest = r
		}
		if largest == i {
			return
		}
		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}
