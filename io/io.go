package io

import (
	"fmt"
	"sort"

	"github.com/phil-mansfield/table"
	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/regrid/geom"
	"github.com/phil-mansfield/regrid/math/interpolate"
)

// GridFromColumns assembles a rectilinear grid from a table of nodes.
// coords[d][i] is the coordinate of node i along dimension d and vals[j][i]
// is the j-th component of its sample. Rows may be in any order.
//
// The axes are the sorted, distinct values of each coordinate column, and
// every point of their outer product must appear exactly once. With a single
// value column the value array has one dimension per axis; with several,
// the components form a trailing dimension.
func GridFromColumns(
	coords, vals [][]float64,
) (axes [][]float64, values *interpolate.Array, err error) {
	if len(coords) == 0 {
		return nil, nil, fmt.Errorf("No coordinate columns were given.")
	} else if len(vals) == 0 {
		return nil, nil, fmt.Errorf("No value columns were given.")
	}

	rows := len(coords[0])
	if rows == 0 {
		return nil, nil, fmt.Errorf("The node table has no rows.")
	}
	for i, col := range append(append([][]float64{}, coords...), vals...) {
		if len(col) != rows {
			return nil, nil, fmt.Errorf(
				"Column %d has %d rows, but column 0 has %d rows.",
				i, len(col), rows,
			)
		}
	}

	axes = make([][]float64, len(coords))
	shape := make([]int, len(coords))
	for d, col := range coords {
		if floats.HasNaN(col) {
			return nil, nil, fmt.Errorf(
				"Coordinate column %d contains NaN values.", d,
			)
		}
		axes[d] = distinct(col)
		shape[d] = len(axes[d])
	}

	nodes := geom.NewGrid(shape...)
	k := len(vals)
	seen := make([]bool, nodes.Size)
	data := make([]float64, nodes.Size*k)
	idx := make([]int, len(coords))

	for i := 0; i < rows; i++ {
		for d, col := range coords {
			idx[d] = sort.SearchFloat64s(axes[d], col[i])
		}
		n := nodes.Idx(idx...)
		if seen[n] {
			return nil, nil, fmt.Errorf(
				"Row %d repeats the grid node %v.", i, nodeAt(axes, idx),
			)
		}
		seen[n] = true
		for j := range vals {
			data[n*k+j] = vals[j][i]
		}
	}

	for n, ok := range seen {
		if !ok {
			return nil, nil, fmt.Errorf(
				"The grid node %v is missing from the table.",
				nodeAt(axes, nodes.Coords(n, idx)),
			)
		}
	}

	if k > 1 {
		shape = append(shape, k)
	}
	values, err = interpolate.NewArray(data, shape...)
	if err != nil {
		return nil, nil, err
	}
	return axes, values, nil
}

// distinct returns the sorted, distinct elements of xs.
func distinct(xs []float64) []float64 {
	out := append([]float64{}, xs...)
	sort.Float64s(out)
	n := 0
	for i, x := range out {
		if i == 0 || x != out[n-1] {
			out[n] = x
			n++
		}
	}
	return out[:n]
}

func nodeAt(axes [][]float64, idx []int) []float64 {
	x := make([]float64, len(axes))
	for d := range axes {
		x[d] = axes[d][idx[d]]
	}
	return x
}

// ReadGrid reads a node table from a text file and assembles it with
// GridFromColumns.
func ReadGrid(
	fname string, coordCols, valCols []int,
) (axes [][]float64, values *interpolate.Array, err error) {
	colIdxs := append(append([]int{}, coordCols...), valCols...)
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, nil, err
	}

	n := len(coordCols)
	axes, values, err = GridFromColumns(cols[:n], cols[n:])
	if err != nil {
		return nil, nil, fmt.Errorf("Grid file '%s': %s", fname, err.Error())
	}
	return axes, values, nil
}

// ReadQueries reads query points from the given columns of a text file. The
// result has shape (points, len(colIdxs)).
func ReadQueries(fname string, colIdxs []int) (*interpolate.Array, error) {
	if len(colIdxs) == 0 {
		return nil, fmt.Errorf("No query columns were given.")
	}
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	}
	return pointsFromColumns(cols)
}

func pointsFromColumns(cols [][]float64) (*interpolate.Array, error) {
	n, k := len(cols), len(cols[0])
	data := make([]float64, n*k)
	for d, col := range cols {
		if len(col) != k {
			return nil, fmt.Errorf(
				"Query column %d has %d rows, but column 0 has %d rows.",
				d, len(col), k,
			)
		}
		for i, x := range col {
			data[i*n+d] = x
		}
	}
	return interpolate.NewArray(data, k, n)
}
