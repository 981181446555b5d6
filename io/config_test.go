package io

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/regrid/math/interpolate"
)

func TestExampleInterpolateFile(t *testing.T) {
	wrap := DefaultInterpolateWrapper()
	require.NoError(t, gcfg.ReadStringInto(wrap, ExampleInterpolateFile))

	con := &wrap.Interpolate
	require.NoError(t, con.CheckInit())
	assert.Equal(t, "path/to/grid.txt", con.Input)
	assert.Equal(t, 2, con.Dimensions)
	assert.Equal(t, []int{0, 1}, con.CoordinateColumn)
	assert.Equal(t, []int{2}, con.ValueColumn)
	assert.Equal(t, []int{0, 1}, con.QueryColumn)
	assert.Equal(t, 1, con.Workers)
	assert.Equal(t, interpolate.BoundsError(), con.Policy())
}

func TestReadInterpolateConfig(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "interp.ini")
	body := `[Interpolate]
Input = grid.txt
Queries = queries.txt
Output = out.txt
Dimensions = 3
CoordinateColumn = 4
CoordinateColumn = 0
CoordinateColumn = 2
ValueColumn = 1
ValueColumn = 3
BoundsPolicy = fill
FillValue = -1.5
Workers = 0
PlotFile = plot.png
PlotDimension = 2
`
	require.NoError(t, os.WriteFile(fname, []byte(body), 0644))

	con, err := ReadInterpolateConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 0, 2}, con.CoordinateColumn)
	assert.Equal(t, []int{1, 3}, con.ValueColumn)
	assert.Equal(t, []int{0, 1, 2}, con.QueryColumn)
	assert.Equal(t, 0, con.Workers)
	assert.Equal(t, interpolate.Fill(-1.5), con.Policy())
	assert.True(t, con.ValidPlotFile())

	_, err = ReadInterpolateConfig(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}

func TestCheckInit(t *testing.T) {
	valid := func() *InterpolateConfig {
		con := &DefaultInterpolateWrapper().Interpolate
		con.Input, con.Queries, con.Output = "in", "q", "out"
		con.Dimensions = 2
		return con
	}

	table := []struct {
		edit func(con *InterpolateConfig)
		ok   bool
	}{
		{func(con *InterpolateConfig) {}, true},
		{func(con *InterpolateConfig) { con.Input = "" }, false},
		{func(con *InterpolateConfig) { con.Queries = "" }, false},
		{func(con *InterpolateConfig) { con.Output = "" }, false},
		{func(con *InterpolateConfig) { con.Dimensions = 0 }, false},
		{func(con *InterpolateConfig) { con.CoordinateColumn = []int{0} }, false},
		{func(con *InterpolateConfig) { con.CoordinateColumn = []int{1, 1} }, false},
		{func(con *InterpolateConfig) { con.CoordinateColumn = []int{-1, 1} }, false},
		{func(con *InterpolateConfig) { con.ValueColumn = []int{1} }, false},
		{func(con *InterpolateConfig) { con.ValueColumn = []int{3, 3} }, false},
		{func(con *InterpolateConfig) { con.QueryColumn = []int{0, 1, 2} }, false},
		{func(con *InterpolateConfig) { con.BoundsPolicy = "Nearest" }, false},
		{func(con *InterpolateConfig) { con.BoundsPolicy = "extrapolate" }, true},
		{func(con *InterpolateConfig) { con.FillValue = "zero" }, false},
		{func(con *InterpolateConfig) { con.FillValue = "-Inf" }, true},
		{func(con *InterpolateConfig) { con.Workers = -2 }, false},
		{func(con *InterpolateConfig) { con.PlotFile, con.PlotDimension = "p.png", 2 }, false},
		{func(con *InterpolateConfig) { con.PlotFile, con.PlotDimension = "p.png", 1 }, true},
		{func(con *InterpolateConfig) { con.PlotDimension = 5 }, true},
	}

	for i, test := range table {
		con := valid()
		test.edit(con)
		err := con.CheckInit()
		if test.ok && err != nil {
			t.Errorf("%d) Expected valid config, got error '%s'.", i+1, err.Error())
		} else if !test.ok && err == nil {
			t.Errorf("%d) Expected invalid config, got no error.", i+1)
		}
	}
}

func TestPolicy(t *testing.T) {
	con := &DefaultInterpolateWrapper().Interpolate
	assert.Equal(t, interpolate.BoundsError(), con.Policy())

	con.BoundsPolicy = "Extrapolate"
	assert.Equal(t, interpolate.Extrapolate(), con.Policy())

	con.BoundsPolicy = "Fill"
	p := con.Policy()
	assert.Equal(t, interpolate.FillWithConstant, p.Mode)
	assert.True(t, math.IsNaN(p.FillValue.(float64)))

	con.BoundsPolicy = "?"
	assert.Panics(t, func() { con.Policy() })
}
