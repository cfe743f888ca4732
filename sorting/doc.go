// Package sorting implements five comparison sorts over a slice view and a
// dispatcher that picks one of them from the element width and count.
//
// What:
//
//   - Selection: O(n²) comparisons, at most n-1 swaps, not stable.
//   - Insertion: O(n²) worst case, O(n) on sorted input, stable.
//   - Quick:     middle-element pivot, Hoare two-pointer partition,
//     recursion on both sides. Average O(n log n), worst O(n²), not stable.
//   - Merge:     top-down, stable, one O(n) scratch buffer per call.
//   - Heap:      bottom-up max-heap then repeated root extraction.
//     O(n log n), in place, not stable.
//
// Dispatch:
//
//	Choose(elemSize, n) maps the element width in bytes and the element
//	count to an Algorithm. It never inspects the data.
//
//	  elemSize   | n ≤ 50    | 50 < n ≤ 100 | n > 100
//	  -----------+-----------+--------------+--------
//	  ≤ 8 bytes  | insertion | selection    | quick
//	  > 8 bytes  | insertion | insertion    | heap
//
//	Small elements are cheap to move, so comparison overhead decides at
//	small n and quicksort wins at scale. Wide elements are expensive to
//	move, so heap sort is preferred over merge sort: it needs no scratch
//	copy of the data.
//
// Comparator contract:
//
//	cmp(a, b) returns a negative number when a sorts before b, zero when
//	they are equivalent and a positive number otherwise. It must impose a
//	strict weak ordering. A broken comparator yields an unspecified order
//	but never an out-of-range access inside this package.
package sorting
