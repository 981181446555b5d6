package io

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/regrid/math/interpolate"
)

func TestGridFromColumns(t *testing.T) {
	// Nodes of the grid x in {0, 1, 3}, y in {-1, 2}, shuffled, with value
	// 10x + y.
	xs := []float64{3, 0, 1, 0, 3, 1}
	ys := []float64{2, -1, 2, 2, -1, -1}
	vs := make([]float64, len(xs))
	for i := range xs {
		vs[i] = 10*xs[i] + ys[i]
	}

	axes, values, err := GridFromColumns([][]float64{xs, ys}, [][]float64{vs})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1, 3}, {-1, 2}}, axes)
	assert.Equal(t, []int{3, 2}, values.Shape)
	assert.Equal(t, []float64{-1, 2, 9, 12, 29, 32}, values.Data)

	g, err := interpolate.NewRegularGrid(axes, values, interpolate.BoundsError())
	require.NoError(t, err)
	res, err := g.EvalPoint(2, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 20.5, res[0], 1e-12)
}

func TestGridFromColumnsVector(t *testing.T) {
	xs := []float64{1, 0}
	a := []float64{5, 4}
	b := []float64{-5, -4}

	axes, values, err := GridFromColumns([][]float64{xs}, [][]float64{a, b})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}}, axes)
	assert.Equal(t, []int{2, 2}, values.Shape)
	assert.Equal(t, []float64{4, -4, 5, -5}, values.Data)
}

func TestGridFromColumnsErrors(t *testing.T) {
	table := []struct {
		coords, vals [][]float64
	}{
		{nil, [][]float64{{1}}},
		{[][]float64{{1}}, nil},
		{[][]float64{{}}, [][]float64{{}}},
		{[][]float64{{0, 1}}, [][]float64{{1}}},
		{[][]float64{{0, 1}, {0}}, [][]float64{{1, 2}}},
		// duplicate node
		{[][]float64{{0, 1, 1}}, [][]float64{{1, 2, 3}}},
		// missing node (1, 1)
		{[][]float64{{0, 0, 1}, {0, 1, 0}}, [][]float64{{1, 2, 3}}},
		{[][]float64{{0, math.NaN()}}, [][]float64{{1, 2}}},
	}

	for i, test := range table {
		if _, _, err := GridFromColumns(test.coords, test.vals); err == nil {
			t.Errorf("%d) Expected an error for coords %v, vals %v.",
				i+1, test.coords, test.vals)
		}
	}
}

func writeFile(t *testing.T, name, body string) string {
	fname := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fname, []byte(body), 0644))
	return fname
}

func TestReadGridAndQueries(t *testing.T) {
	grid := writeFile(t, "grid.txt", `# v x y
1 0 0
2 0 1
3 1 0
5 1 1
`)
	queries := writeFile(t, "queries.txt", `# id y x
7 0.5 0.5
8 1 0
`)

	axes, values, err := ReadGrid(grid, []int{1, 2}, []int{0})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {0, 1}}, axes)
	assert.Equal(t, []float64{1, 2, 3, 5}, values.Data)

	xi, err := ReadQueries(queries, []int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, xi.Shape)
	assert.Equal(t, []float64{0.5, 0.5, 0, 1}, xi.Data)

	g, err := interpolate.NewRegularGrid(axes, values, interpolate.BoundsError())
	require.NoError(t, err)
	res, err := g.Eval(xi)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.75, 2}, res.Data, 1e-12)

	_, err = ReadQueries(queries, nil)
	assert.Error(t, err)
}
