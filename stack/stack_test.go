package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdsa/stack"
	"github.com/katalvlaran/lvdsa/vector"
)

func TestStack_LIFO(t *testing.T) {
	s := stack.New[int]()
	assert.True(t, s.Empty())

	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	assert.Equal(t, 3, s.Size())

	var popped []int
	for !s.Empty() {
		top, err := s.Top()
		require.NoError(t, err)
		popped = append(popped, top)
		require.NoError(t, s.Pop())
	}
	assert.Equal(t, []int{3, 2, 1}, popped)
}

func TestStack_EmptyErrors(t *testing.T) {
	s := stack.New[string]()
	_, err := s.Top()
	assert.ErrorIs(t, err, stack.ErrEmpty)
	assert.ErrorIs(t, s.Pop(), stack.ErrEmpty)
}

func TestStack_DestroyerForwarded(t *testing.T) {
	var destroyed []int
	s := stack.New(vector.WithDestroyer(func(p *int) { destroyed = append(destroyed, *p) }))
	s.Push(1)
	s.Push(2)
	s.Push(3)

	require.NoError(t, s.Pop())
	s.Free()
	assert.Equal(t, []int{3, 1, 2}, destroyed)
	assert.True(t, s.Empty())
}
