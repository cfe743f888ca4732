// Package list implements a singly linked list with head and tail
// pointers, O(1) push at both ends and O(1) pop at the front.
//
// Positions are 0-based indices. Operations that reach a position walk
// the chain from the head, so they cost O(index).
//
// Errors:
//
//   - ErrEmpty       Pop* / Front / Back on an empty list
//   - ErrOutOfRange  index outside the list
package list

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates an operation that needs at least one element.
	ErrEmpty = errors.New("list: list is empty")
	// ErrOutOfRange indicates an index outside the list.
	ErrOutOfRange = errors.New("list: index out of range")
)

func listErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("List.%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}

type node[T any] struct {
	value T
	next  *node[T]
}

// Option configures a List at construction time.
type Option[T any] func(l *List[T])

// WithDestroyer installs fn as the per-element finalizer, run on every
// element removed from the list or overwritten by SetAt. Panics on nil.
func WithDestroyer[T any](fn func(p *T)) Option[T] {
	if fn == nil {
		panic("list: WithDestroyer(nil)")
	}
	return func(l *List[T]) { l.destroy = fn }
}

// List is a singly linked list of T. The zero value is an empty list
// without a destroyer.
type List[T any] struct {
	head, tail *node[T]
	length     int
	destroy    func(*T)
}

// New creates an empty list.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.length }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.length == 0 }

// release runs the destroyer on n and unlinks it.
func (l *List[T]) release(n *node[T]) {
	if l.destroy != nil {
		l.destroy(&n.value)
	}
	n.next = nil
}

// PushFront prepends x. Complexity: O(1).
func (l *List[T]) PushFront(x T) {
	n := &node[T]{value: x, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.length++
}

// PushBack appends x. Complexity: O(1).
func (l *List[T]) PushBack(x T) {
	n := &node[T]{value: x}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
}

// PopFront removes the first element. Complexity: O(1).
func (l *List[T]) PopFront() error {
	if l.head == nil {
		return listErrorf("PopFront", ErrEmpty, "")
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	l.release(n)

	return nil
}

// PopBack removes the last element. A singly linked list has to find the
// predecessor of the tail, so this is O(n).
func (l *List[T]) PopBack() error {
	if l.head == nil {
		return listErrorf("PopBack", ErrEmpty, "")
	}

	return l.DeleteAt(l.length - 1)
}

// nodeAt walks to the node at a validated index.
func (l *List[T]) nodeAt(i int) *node[T] {
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}

	return n
}

// InsertAt inserts x so that it ends up at index i. i == Len() appends.
// Complexity: O(i).
func (l *List[T]) InsertAt(i int, x T) error {
	if i < 0 || i > l.length {
		return listErrorf("InsertAt", ErrOutOfRange, "%d", i)
	}
	switch i {
	case 0:
		l.PushFront(x)
	case l.length:
		l.PushBack(x)
	default:
		prev := l.nodeAt(i - 1)
		prev.next = &node[T]{value: x, next: prev.next}
		l.length++
	}

	return nil
}

// DeleteAt removes the element at index i. Complexity: O(i).
func (l *List[T]) DeleteAt(i int) error {
	if i < 0 || i >= l.length {
		return listErrorf("DeleteAt", ErrOutOfRange, "%d", i)
	}
	if i == 0 {
		return l.PopFront()
	}
	prev := l.nodeAt(i - 1)
	n := prev.next
	prev.next = n.next
	if n == l.tail {
		l.tail = prev
	}
	l.length--
	l.release(n)

	return nil
}

// At returns the element at index i. Complexity: O(i).
func (l *List[T]) At(i int) (T, error) {
	if i < 0 || i >= l.length {
		var zero T
		return zero, listErrorf("At", ErrOutOfRange, "%d", i)
	}

	return l.nodeAt(i).value, nil
}

// SetAt overwrites the element at index i, destroying the old value.
func (l *List[T]) SetAt(i int, x T) error {
	if i < 0 || i >= l.length {
		return listErrorf("SetAt", ErrOutOfRange, "%d", i)
	}
	n := l.nodeAt(i)
	if l.destroy != nil {
		l.destroy(&n.value)
	}
	n.value = x

	return nil
}

// Front returns the first element. Complexity: O(1).
func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, listErrorf("Front", ErrEmpty, "")
	}

	return l.head.value, nil
}

// Back returns the last element. Complexity: O(1).
func (l *List[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, listErrorf("Back", ErrEmpty, "")
	}

	return l.tail.value, nil
}

// IndexOf returns the index of the first element e with eq(e, x) == 0.
func (l *List[T]) IndexOf(x T, eq func(a, b T) int) (int, bool) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if eq(n.value, x) == 0 {
			return i, true
		}
		i++
	}

	return -1, false
}

// Contains reports whether some element compares equal to x under eq.
func (l *List[T]) Contains(x T, eq func(a, b T) int) bool {
	_, ok := l.IndexOf(x, eq)

	return ok
}

// Remove deletes the first element comparing equal to x and reports
// whether one was found. Complexity: O(n).
func (l *List[T]) Remove(x T, eq func(a, b T) int) bool {
	var prev *node[T]
	for n := l.head; n != nil; prev, n = n, n.next {
		if eq(n.value, x) != 0 {
			continue
		}
		if prev == nil {
			l.head = n.next
		} else {
			prev.next = n.next
		}
		if n == l.tail {
			l.tail = prev
		}
		l.length--
		l.release(n)

		return true
	}

	return false
}

// Reverse reverses the list in place by relinking nodes. Complexity: O(n).
func (l *List[T]) Reverse() {
	var prev *node[T]
	n := l.head
	l.tail = n
	for n != nil {
		next := n.next
		n.next = prev
		prev, n = n, next
	}
	l.head = prev
}

// ForEach calls fn for every element in order with its index.
func (l *List[T]) ForEach(fn func(x T, idx int)) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		fn(n.value, i)
		i++
	}
}

// Slice returns the elements in order as a new slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// Clear removes every element front to back, running the destroyer on each.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		l.release(n)
		n = next
	}
	l.head, l.tail, l.length = nil, nil, 0
}

// Free clears the list and drops the destroyer.
func (l *List[T]) Free() {
	l.Clear()
	l.destroy = nil
}

// Swap exchanges the contents (and destroyers) of l and other in O(1).
func (l *List[T]) Swap(other *List[T]) {
	*l, *other = *other, *l
}
