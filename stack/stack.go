// Package stack provides a LIFO stack backed by vector.Vector.
//
// Push, Pop, Top, Size and Empty delegate to PushBack, PopBack, Back,
// Size and Empty of the underlying vector, so growth, destroyer and
// error semantics are exactly those of package vector.
package stack

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvdsa/vector"
)

// ErrEmpty is returned by Pop and Top on an empty stack.
var ErrEmpty = errors.New("stack: stack is empty")

// Stack is a last-in, first-out collection of T.
type Stack[T any] struct {
	data *vector.Vector[T]
}

// New creates an empty stack. Options (e.g. vector.WithDestroyer) are
// forwarded to the backing vector.
func New[T any](opts ...vector.Option[T]) *Stack[T] {
	v, _ := vector.New[T](0, opts...) // capacity 0 is always valid

	return &Stack[T]{data: v}
}

// Push places x on top of the stack.
// Complexity: amortised O(1).
func (s *Stack[T]) Push(x T) {
	s.data.PushBack(x)
}

// Pop removes the top element, running the destroyer on it.
// Complexity: O(1).
func (s *Stack[T]) Pop() error {
	if err := s.data.PopBack(); err != nil {
		return fmt.Errorf("Stack.Pop: %w", ErrEmpty)
	}

	return nil
}

// Top returns the top element without removing it.
// Complexity: O(1).
func (s *Stack[T]) Top() (T, error) {
	x, err := s.data.Back()
	if err != nil {
		return x, fmt.Errorf("Stack.Top: %w", ErrEmpty)
	}

	return x, nil
}

// Size returns the number of elements.
func (s *Stack[T]) Size() int { return s.data.Size() }

// Empty reports whether the stack has no elements.
func (s *Stack[T]) Empty() bool { return s.data.Empty() }

// Free destroys every element and releases the storage.
func (s *Stack[T]) Free() { s.data.Free() }
