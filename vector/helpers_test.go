package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdsa/vector"
)

// destroyLog records every destroyer invocation by element value.
type destroyLog struct {
	calls []int
	count map[int]int
}

func newDestroyLog() *destroyLog {
	return &destroyLog{count: make(map[int]int)}
}

func (d *destroyLog) fn(p *int) {
	d.calls = append(d.calls, *p)
	d.count[*p]++
}

// mustNew builds a vector or aborts the test.
func mustNew[T any](t *testing.T, capacity int, opts ...vector.Option[T]) *vector.Vector[T] {
	t.Helper()
	v, err := vector.New[T](capacity, opts...)
	require.NoError(t, err)

	return v
}

// pushAll appends xs in order.
func pushAll[T any](v *vector.Vector[T], xs ...T) {
	for _, x := range xs {
		v.PushBack(x)
	}
}
