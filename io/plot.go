package io

import (
	"fmt"
	"sort"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/regrid/math/interpolate"
)

var plotColors = []string{"b", "r", "g", "k", "m", "c"}

// plotSeries returns the query coordinates along dimension dim in ascending
// order, and for each result component the values in the same order.
func plotSeries(
	dim int, queries, result *interpolate.Array,
) (xs []float64, ys [][]float64, err error) {
	npts, qdim, comps, err := split(queries, result)
	if err != nil {
		return nil, nil, err
	} else if dim < 0 || dim >= qdim {
		return nil, nil, fmt.Errorf(
			"Plot dimension must be in range [0, %d), but is %d.", qdim, dim,
		)
	}

	order := make([]int, npts)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return queries.Data[order[i]*qdim+dim] < queries.Data[order[j]*qdim+dim]
	})

	xs = make([]float64, npts)
	ys = make([][]float64, comps)
	for j := range ys {
		ys[j] = make([]float64, npts)
	}
	for i, p := range order {
		xs[i] = queries.Data[p*qdim+dim]
		for j := range ys {
			ys[j][i] = result.Data[p*comps+j]
		}
	}
	return xs, ys, nil
}

// PlotResults queues a figure of every result component against the query
// coordinate along dimension dim and saves it to fname. Nothing is drawn
// until plt.Execute() is called.
func PlotResults(fname string, dim int, queries, result *interpolate.Array) error {
	xs, ys, err := plotSeries(dim, queries, result)
	if err != nil {
		return err
	}

	plt.Figure()
	for j := range ys {
		c := plotColors[j%len(plotColors)]
		plt.Plot(xs, ys[j], "o", plt.C(c))
		plt.Plot(xs, ys[j], plt.LW(2), plt.C(c))
	}
	plt.XLabel(fmt.Sprintf(`$x_{%d}$`, dim), plt.FontSize(16))
	plt.YLabel("Interpolated value", plt.FontSize(16))
	plt.Title(fmt.Sprintf("%d query points", len(xs)))
	plt.SaveFig(fname)
	return nil
}
