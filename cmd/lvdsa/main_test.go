package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestDispatchSingle(t *testing.T) {
	out, err := run(t, "dispatch", "--elem-size", "4", "--count", "75")
	require.NoError(t, err)
	assert.Equal(t, "selection\n", out)

	out, err = run(t, "dispatch", "--elem-size", "32", "--count", "101")
	require.NoError(t, err)
	assert.Equal(t, "heap\n", out)
}

func TestDispatchTable(t *testing.T) {
	out, err := run(t, "dispatch")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 1+2*len(tableCounts))
	assert.Contains(t, out, "quick")
	assert.Contains(t, out, "heap")
}

func TestDispatchFlagErrors(t *testing.T) {
	_, err := run(t, "dispatch", "--count", "3")
	assert.Error(t, err)
	_, err = run(t, "dispatch", "--elem-size", "-1", "--count", "3")
	assert.Error(t, err)
}

func TestSort(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"sort", "--n", "40"}, "algorithm=insertion sorted=true"},
		{[]string{"sort", "--n", "500", "--algo", "merge"}, "algorithm=merge sorted=true"},
		{[]string{"sort", "--n", "300", "--kind", "names", "--seed", "7"}, "kind=names n=300 algorithm=heap sorted=true"},
		{[]string{"sort", "--n", "0"}, "sorted=true"},
	}
	for _, tc := range cases {
		out, err := run(t, tc.args...)
		require.NoError(t, err, tc.args)
		assert.Contains(t, out, tc.want, tc.args)
	}
}

func TestSortErrors(t *testing.T) {
	_, err := run(t, "sort", "--algo", "bogo")
	assert.Error(t, err)
	_, err = run(t, "sort", "--kind", "floats")
	assert.Error(t, err)
	_, err = run(t, "sort", "--n", "-5")
	assert.Error(t, err)
}

func TestVectorScenarios(t *testing.T) {
	out, err := run(t, "vector")
	require.NoError(t, err)
	assert.Contains(t, out, "data=[1 2 4 5]")
	assert.Contains(t, out, "destroyed=3")
	assert.Contains(t, out, "reserve  size=0 cap=100 reallocs=1 copies=0")
}
