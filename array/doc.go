// Package array provides Array[T], a fixed-length buffer with the same
// range algorithms as package vector but no growth: the length is set at
// construction and never changes until Free.
//
// Index arguments are validated once here and the resulting sub-slice is
// handed to packages algo and sorting, which trust their input.
//
// Errors:
//
//   - ErrNegativeSize   negative length passed to New
//   - ErrEmpty          Front / Back on a zero-length array
//   - ErrOutOfRange     index outside [0, Len())
//   - ErrInvalidRange   [start, end) not within [0, Len()] or start > end
package array
