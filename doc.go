// Package lvdsa is a small library of generic, single-threaded containers
// and the algorithms that operate on them.
//
// What is in the box?
//
//	algo/     - range algorithms over slices: Fill, ForEach, Map, Find*, Reverse
//	sorting/  - Insertion, Selection, Quick, Merge, Heap plus size-aware dispatch
//	vector/   - growable contiguous Vector[T] with destroyer hooks and reallocation stats
//	array/    - fixed-length Array[T] sharing the same element lifecycle
//	stack/    - LIFO Stack[T] on top of vector
//	list/     - singly linked List[T] with head and tail pointers
//	cmd/lvdsa - CLI that prints the dispatch table, sorts generated data and
//	            replays the reference vector scenarios
//
// Element lifecycle:
//
//	Every container accepts WithDestroyer(fn). The destroyer runs exactly
//	once for each element that leaves the container (pop, erase, shrink,
//	clear, assign, overwrite, free). Vacated slots are zeroed.
//
// Sort dispatch:
//
//	sorting.Choose(elemSize, n) is a pure function of the element width in
//	bytes and the element count. Elements up to 8 bytes use insertion sort
//	up to 50 items, selection sort up to 100 and quicksort beyond. Wider
//	elements use insertion sort up to 100 items and heapsort beyond.
//
// Errors:
//
//	Each package exports sentinel errors (ErrOutOfRange, ErrEmpty, ...).
//	Methods wrap them with call context; test with errors.Is.
//
// Concurrency:
//
//	No container is safe for concurrent mutation. Guard shared instances
//	with your own lock.
package lvdsa
