package sorting

import (
	"cmp"
	"errors"
)

// Comparator is a three-way comparison: negative if a < b, zero if a and b
// are equivalent, positive if a > b.
type Comparator[T any] func(a, b T) int

// Ascending returns the natural-order comparator for ordered types.
func Ascending[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Descending returns the reverse natural-order comparator.
func Descending[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) int { return cmp.Compare(b, a) }
}

// Algorithm names one of the sort implementations of this package.
type Algorithm int

const (
	// AlgoInsertion selects Insertion.
	AlgoInsertion Algorithm = iota
	// AlgoSelection selects Selection.
	AlgoSelection
	// AlgoQuick selects Quick.
	AlgoQuick
	// AlgoMerge selects Merge.
	AlgoMerge
	// AlgoHeap selects Heap.
	AlgoHeap
)

// ErrUnknownAlgorithm is returned when an Algorithm value or name does not
// match any implementation.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

var algoNames = [...]string{
	AlgoInsertion: "insertion",
	AlgoSelection: "selection",
	AlgoQuick:     "quick",
	AlgoMerge:     "merge",
	AlgoHeap:      "heap",
}

// String returns the lower-case name of the algorithm.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algoNames) {
		return "unknown"
	}

	return algoNames[a]
}

// ParseAlgorithm maps a name produced by Algorithm.String back to its value.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algoNames {
		if n == name {
			return Algorithm(i), nil
		}
	}

	return 0, ErrUnknownAlgorithm
}
