package vector_test

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdsa/sorting"
	"github.com/katalvlaran/lvdsa/vector"
)

func TestForEachAndMap(t *testing.T) {
	v := vector.From([]int{1, 2, 3, 4})

	sum := 0
	v.ForEach(func(x int) { sum += x })
	assert.Equal(t, 10, sum)

	var idx []int
	v.ForEachIndex(func(_ int, i int) { idx = append(idx, i) })
	assert.Equal(t, []int{0, 1, 2, 3}, idx)

	v.Map(func(p *int) { *p *= 2 })
	assert.Equal(t, []int{2, 4, 6, 8}, v.Data())

	v.MapIndex(func(p *int, i int) { *p -= i })
	assert.Equal(t, []int{2, 3, 4, 5}, v.Data())
}

func TestRangeTraversal(t *testing.T) {
	v := vector.From([]int{10, 20, 30, 40})

	var seen []int
	require.NoError(t, v.ForEachRange(1, 3, func(x, i int) { seen = append(seen, x+i) }))
	assert.Equal(t, []int{20, 31}, seen)

	require.NoError(t, v.MapRange(2, 4, func(p *int, _ int) { *p = 0 }))
	assert.Equal(t, []int{10, 20, 0, 0}, v.Data())

	assert.ErrorIs(t, v.ForEachRange(3, 1, func(int, int) {}), vector.ErrInvalidRange)
	assert.ErrorIs(t, v.MapRange(0, 5, func(*int, int) {}), vector.ErrInvalidRange)
}

func TestFind(t *testing.T) {
	v := vector.From([]string{"go", "rust", "zig"})

	assert.Equal(t, 1, vector.Find(v, "rust"))
	assert.Equal(t, v.Size(), vector.Find(v, "c"), "absent returns the end sentinel")

	i, ok := vector.Index(v, "zig")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = vector.Index(v, "c")
	assert.False(t, ok)
	assert.True(t, vector.Contains(v, "go"))

	fold := func(a, b string) int { return strings.Compare(strings.ToUpper(a), strings.ToUpper(b)) }
	assert.Equal(t, 2, v.FindBy("ZIG", fold))

	long := func(s string) bool { return len(s) > 2 }
	assert.Equal(t, 1, v.FindIf(long))
	assert.Equal(t, 0, v.FindIfNot(long))
	i, ok = v.IndexFunc(func(s string) bool { return s == "none" })
	assert.False(t, ok)
	assert.Equal(t, -1, i)
}

func TestFindRange(t *testing.T) {
	v := vector.From([]int{5, 6, 5, 6})
	eq := sorting.Ascending[int]()

	i, err := v.FindRange(1, 4, 5, eq)
	require.NoError(t, err)
	assert.Equal(t, 2, i, "index is absolute")

	i, err = v.FindRange(1, 2, 5, eq)
	require.NoError(t, err)
	assert.Equal(t, 2, i, "not found returns the range end")

	_, err = v.FindRange(0, 9, 5, eq)
	assert.ErrorIs(t, err, vector.ErrInvalidRange)
}

func TestFill(t *testing.T) {
	log := newDestroyLog()
	v := mustNew(t, 0, vector.WithDestroyer(log.fn))
	pushAll(v, 1, 2, 3, 4)

	require.NoError(t, v.FillRange(1, 3, 0))
	assert.Equal(t, []int{1, 0, 0, 4}, v.Data())
	assert.Equal(t, []int{2, 3}, log.calls)

	require.NoError(t, v.FillN(3, 1, 9))
	assert.Equal(t, []int{1, 0, 0, 9}, v.Data())

	v.Fill(5)
	assert.Equal(t, []int{5, 5, 5, 5}, v.Data())
	assert.Len(t, log.calls, 7)

	assert.ErrorIs(t, v.FillN(2, 3, 0), vector.ErrInvalidRange)
	assert.ErrorIs(t, v.FillN(0, -1, 0), vector.ErrNegativeSize)
	assert.ErrorIs(t, v.FillRange(3, 2, 0), vector.ErrInvalidRange)
	assert.Equal(t, []int{5, 5, 5, 5}, v.Data())
}

func TestReverseAndSwap(t *testing.T) {
	v := vector.From([]int{1, 2, 3, 4, 5})
	v.Reverse()
	assert.Equal(t, []int{5, 4, 3, 2, 1}, v.Data())

	require.NoError(t, v.ReverseRange(1, 4))
	assert.Equal(t, []int{5, 2, 3, 4, 1}, v.Data())

	require.NoError(t, v.Swap(0, 4))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, v.Data())

	assert.ErrorIs(t, v.Swap(0, 5), vector.ErrOutOfRange)
	assert.ErrorIs(t, v.ReverseRange(2, 9), vector.ErrInvalidRange)
}

func TestSort(t *testing.T) {
	in := lo.Map(lo.Range(150), func(i, _ int) int { return (i * 37) % 150 })
	v := vector.From(in)

	alg := v.Sort(sorting.Ascending[int]())
	assert.Equal(t, sorting.AlgoQuick, alg)
	assert.Equal(t, lo.Range(150), v.Data())

	require.NoError(t, v.SortWith(sorting.AlgoHeap, sorting.Descending[int]()))
	assert.Equal(t, 149, lo.Must(v.Front()))

	err := v.SortWith(sorting.Algorithm(42), sorting.Ascending[int]())
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

func TestSortRange(t *testing.T) {
	v := vector.From([]int{9, 3, 2, 1, 0})
	alg, err := v.SortRange(1, 4, sorting.Ascending[int]())
	require.NoError(t, err)
	assert.Equal(t, sorting.AlgoInsertion, alg)
	assert.Equal(t, []int{9, 1, 2, 3, 0}, v.Data())

	_, err = v.SortRange(4, 1, sorting.Ascending[int]())
	assert.ErrorIs(t, err, vector.ErrInvalidRange)
}
