package sorting_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdsa/sorting"
)

// record is 32 bytes wide: Key plus three padding words.
type record struct {
	Key     int64
	A, B, C int64
}

func TestElemSize(t *testing.T) {
	assert.Equal(t, uintptr(4), sorting.ElemSize[int32]())
	assert.Equal(t, uintptr(32), sorting.ElemSize[record]())
}

func TestChoose_Table(t *testing.T) {
	cases := []struct {
		elemSize uintptr
		n        int
		want     sorting.Algorithm
	}{
		{4, 0, sorting.AlgoInsertion},
		{4, 50, sorting.AlgoInsertion},
		{4, 51, sorting.AlgoSelection},
		{4, 100, sorting.AlgoSelection},
		{4, 101, sorting.AlgoQuick},
		{8, 101, sorting.AlgoQuick},
		{9, 50, sorting.AlgoInsertion},
		{32, 51, sorting.AlgoInsertion},
		{32, 100, sorting.AlgoInsertion},
		{32, 101, sorting.AlgoHeap},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sorting.Choose(tc.elemSize, tc.n), "elemSize=%d n=%d", tc.elemSize, tc.n)
	}
}

func TestRun_SmallElements(t *testing.T) {
	expect := map[int]sorting.Algorithm{
		0: sorting.AlgoInsertion, 1: sorting.AlgoInsertion, 2: sorting.AlgoInsertion,
		50: sorting.AlgoInsertion, 100: sorting.AlgoSelection, 101: sorting.AlgoQuick,
	}
	r := rand.New(rand.NewSource(11))
	for n, want := range expect {
		in := lo.Times(n, func(int) int32 { return int32(r.Intn(40) - 20) })
		got := slices.Clone(in)

		alg := sorting.Run(got, sorting.Ascending[int32]())
		require.Equal(t, want, alg, "n=%d", n)
		assert.True(t, sorting.IsSorted(got, sorting.Ascending[int32]()), "n=%d", n)
		assert.ElementsMatch(t, in, got, "n=%d: output must be a permutation", n)
	}
}

func TestRun_WideElements(t *testing.T) {
	byKey := func(a, b record) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	}
	expect := map[int]sorting.Algorithm{
		0: sorting.AlgoInsertion, 1: sorting.AlgoInsertion, 2: sorting.AlgoInsertion,
		50: sorting.AlgoInsertion, 100: sorting.AlgoInsertion, 101: sorting.AlgoHeap,
	}
	r := rand.New(rand.NewSource(5))
	for n, want := range expect {
		in := lo.Times(n, func(i int) record {
			return record{Key: int64(r.Intn(30)), A: int64(i)}
		})
		got := slices.Clone(in)

		alg := sorting.Run(got, byKey)
		require.Equal(t, want, alg, "n=%d", n)
		assert.True(t, sorting.IsSorted(got, byKey), "n=%d", n)
		assert.ElementsMatch(t, in, got, "n=%d: output must be a permutation", n)
	}
}

func TestSort(t *testing.T) {
	s := []string{"pear", "apple", "fig"}
	sorting.Sort(s, sorting.Ascending[string]())
	assert.Equal(t, []string{"apple", "fig", "pear"}, s)
}
