package sorting

import "unsafe"

// Dispatch thresholds.
const (
	// SmallElemSize is the widest element, in bytes, treated as "small".
	SmallElemSize = 8
	// ShortRun is the largest count sorted with insertion sort for any width.
	ShortRun = 50
	// MediumRun is the largest count before switching to an O(n log n) sort.
	MediumRun = 100
)

// Choose returns the algorithm Sort uses for n elements of elemSize bytes.
// The choice depends only on its arguments.
// Complexity: O(1).
func Choose(elemSize uintptr, n int) Algorithm {
	if elemSize <= SmallElemSize {
		switch {
		case n <= ShortRun:
			return AlgoInsertion
		case n <= MediumRun:
			return AlgoSelection
		default:
			return AlgoQuick
		}
	}
	if n <= MediumRun {
		return AlgoInsertion
	}

	return AlgoHeap
}

// ElemSize reports the width in bytes of one T, the value Sort passes to Choose.
func ElemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Sort orders s by cmp using the algorithm selected by Choose.
func Sort[T any](s []T, cmp Comparator[T]) {
	_ = Run(s, cmp)
}

// Run behaves like Sort and also reports which algorithm ran.
func Run[T any](s []T, cmp Comparator[T]) Algorithm {
	alg := Choose(ElemSize[T](), len(s))
	// Choose only yields known values.
	_ = SortWith(alg, s, cmp)

	return alg
}

// SortWith orders s by cmp with the named algorithm.
// Returns ErrUnknownAlgorithm, leaving s untouched, for an unknown value.
func SortWith[T any](alg Algorithm, s []T, cmp Comparator[T]) error {
	switch alg {
	case AlgoInsertion:
		Insertion(s, cmp)
	case AlgoSelection:
		Selection(s, cmp)
	case AlgoQuick:
		Quick(s, cmp)
	case AlgoMerge:
		Merge(s, cmp)
	case AlgoHeap:
		Heap(s, cmp)
	default:
		return ErrUnknownAlgorithm
	}

	return nil
}

// IsSorted reports whether s is in non-decreasing order under cmp.
// Complexity: O(n).
func IsSorted[T any](s []T, cmp Comparator[T]) bool {
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[i-1]) < 0 {
			return false
		}
	}

	return true
}
