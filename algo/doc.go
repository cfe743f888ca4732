// Package algo implements stateless algorithms over a contiguous range of
// elements: fill, traversal, in-place map, linear search, reversal and swap.
//
// What:
//
//   - A range is a Go slice view ([]T). The view carries its own length, so
//     the functions here never validate bounds beyond what the slice permits.
//     Containers (vector, array) validate index ranges once at their own
//     boundary and hand a sub-slice down to this package.
//   - Nothing here allocates or retains the view. Every function runs to
//     completion synchronously and touches only the slots of the view.
//
// Not found:
//
//	The Find family returns the index of the first matching slot, or len(s)
//	when no slot matches. len(s) is the end sentinel of the view; compare
//	against it before indexing:
//
//	    if i := algo.Find(s, v); i != len(s) {
//	        use(s[i])
//	    }
//
// Key Types:
//
//   - Predicate[T]: func(T) bool, drives FindIf / FindIfNot.
//   - EqualFunc[T]: three-way comparator, 0 means "equal" for FindBy.
//
// Complexity:
//
//   - Fill, ForEach*, Map*, Find*:  Time O(n), Memory O(1)
//   - Reverse:                      Time O(n), ⌊n/2⌋ swaps, Memory O(1)
//   - Swap:                         Time O(1)
//
// Functions:
//
//   - Fill(s, v), FillN(s, n, v)
//   - ForEach(s, fn), ForEachIndex(s, fn), ForEachN(s, n, fn)
//   - Map(s, fn), MapIndex(s, fn), MapN(s, n, fn)
//   - Find(s, v), FindBy(s, v, cmp), FindN(s, n, v), FindIf(s, pred), FindIfNot(s, pred)
//   - Reverse(s), ReverseN(s, n), Swap(s, i, j)
package algo
