package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeSize indicates a negative capacity or element count.
	ErrNegativeSize = errors.New("vector: size must be non-negative")

	// ErrEmpty indicates an operation that needs at least one element.
	ErrEmpty = errors.New("vector: vector is empty")

	// ErrOutOfRange indicates an index outside the live range.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidRange indicates a [start, end) range that is reversed or
	// not contained in the live range.
	ErrInvalidRange = errors.New("vector: invalid range")
)

// vectorErrorf wraps err with the Vector method name and a formatted
// argument summary, e.g. "Vector.Erase(7): vector: index out of range".
func vectorErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("Vector.%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
