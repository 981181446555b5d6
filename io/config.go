package io

import (
	"fmt"
	"strconv"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/regrid/math/interpolate"
)

const (
	ExampleInterpolateFile = `[Interpolate]

#######################
# Required Parameters #
#######################

# Text table of grid nodes: one row per node, in any order. Every combination
# of the distinct coordinates found in each coordinate column must appear
# exactly once.
Input = path/to/grid.txt
# Text table of query points, one row per point.
Queries = path/to/queries.txt
# File which the interpolated values will be written to.
Output = path/to/output.txt

# Number of coordinate columns in Input and Queries.
Dimensions = 2

#######################
# Optional Parameters #
#######################

# Column indices (starting from 0) of the node coordinates and node values in
# Input. Repeat the line once per column. By default the first Dimensions
# columns are coordinates and the column after them is the value. Giving
# several ValueColumns interpolates vector-valued samples.
# CoordinateColumn = 0
# CoordinateColumn = 1
# ValueColumn = 2

# Column indices of the query coordinates in Queries. Defaults to the first
# Dimensions columns.
# QueryColumn = 0
# QueryColumn = 1

# What happens to query points outside the grid. Must be one of
# [ Error | Fill | Extrapolate ]. Error stops the run and reports the first
# offending dimension, Fill writes FillValue and Extrapolate extends the
# boundary cells linearly.
# BoundsPolicy = Error
# FillValue = NaN

# Number of goroutines used for interpolation. 0 uses every CPU.
# Workers = 1

# Writes a plot of the results against one query dimension. Requires python
# and matplotlib.
# PlotFile = results.png
# PlotDimension = 0

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`
)

type SharedConfig struct {
	// Required
	Input, Output string
	// Optional
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SharedConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type InterpolateConfig struct {
	SharedConfig

	// Required
	Queries    string
	Dimensions int

	// Optional
	CoordinateColumn, ValueColumn, QueryColumn []int
	BoundsPolicy, FillValue                    string
	Workers                                    int
	PlotFile                                   string
	PlotDimension                              int
}

type InterpolateWrapper struct {
	Interpolate InterpolateConfig
}

func DefaultInterpolateWrapper() *InterpolateWrapper {
	con := InterpolateConfig{}
	con.BoundsPolicy = "Error"
	con.FillValue = "NaN"
	con.Workers = 1
	return &InterpolateWrapper{con}
}

func (con *InterpolateConfig) ValidQueries() bool {
	return con.Queries != ""
}
func (con *InterpolateConfig) ValidDimensions() bool {
	return con.Dimensions > 0
}
func (con *InterpolateConfig) ValidCoordinateColumn() bool {
	return len(con.CoordinateColumn) == con.Dimensions &&
		validColumns(con.CoordinateColumn)
}
func (con *InterpolateConfig) ValidValueColumn() bool {
	return len(con.ValueColumn) > 0 && validColumns(con.ValueColumn)
}
func (con *InterpolateConfig) ValidQueryColumn() bool {
	return len(con.QueryColumn) == con.Dimensions &&
		validColumns(con.QueryColumn)
}
func (con *InterpolateConfig) ValidBoundsPolicy() bool {
	_, err := interpolate.ParseBoundsMode(con.BoundsPolicy)
	return err == nil
}
func (con *InterpolateConfig) ValidFillValue() bool {
	_, err := strconv.ParseFloat(con.FillValue, 64)
	return err == nil
}
func (con *InterpolateConfig) ValidWorkers() bool {
	return con.Workers >= 0
}
func (con *InterpolateConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}
func (con *InterpolateConfig) ValidPlotDimension() bool {
	return con.PlotDimension >= 0 && con.PlotDimension < con.Dimensions
}

func validColumns(cols []int) bool {
	seen := map[int]bool{}
	for _, c := range cols {
		if c < 0 || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

func span(start, n int) []int {
	cols := make([]int, n)
	for i := range cols {
		cols[i] = start + i
	}
	return cols
}

// CheckInit fills in the default columns and returns an error describing the
// first invalid parameter.
func (con *InterpolateConfig) CheckInit() error {
	if !con.ValidInput() {
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	} else if !con.ValidQueries() {
		return fmt.Errorf("Invalid/non-existent 'Queries' value.")
	} else if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidDimensions() {
		return fmt.Errorf(
			"'Dimensions' must be positive, but is %d.", con.Dimensions,
		)
	}

	if len(con.CoordinateColumn) == 0 {
		con.CoordinateColumn = span(0, con.Dimensions)
	}
	if len(con.ValueColumn) == 0 {
		con.ValueColumn = []int{con.Dimensions}
	}
	if len(con.QueryColumn) == 0 {
		con.QueryColumn = span(0, con.Dimensions)
	}

	if !con.ValidCoordinateColumn() {
		return fmt.Errorf(
			"%d distinct, non-negative 'CoordinateColumn' values are "+
				"needed, but %v was given.", con.Dimensions, con.CoordinateColumn,
		)
	} else if !con.ValidValueColumn() {
		return fmt.Errorf(
			"'ValueColumn' values must be distinct and non-negative, but "+
				"%v was given.", con.ValueColumn,
		)
	} else if !con.ValidQueryColumn() {
		return fmt.Errorf(
			"%d distinct, non-negative 'QueryColumn' values are needed, "+
				"but %v was given.", con.Dimensions, con.QueryColumn,
		)
	}
	for _, vc := range con.ValueColumn {
		for _, cc := range con.CoordinateColumn {
			if vc == cc {
				return fmt.Errorf(
					"Column %d is both a 'CoordinateColumn' and a "+
						"'ValueColumn'.", vc,
				)
			}
		}
	}

	if !con.ValidBoundsPolicy() {
		_, err := interpolate.ParseBoundsMode(con.BoundsPolicy)
		return err
	} else if !con.ValidFillValue() {
		return fmt.Errorf(
			"'FillValue' must be a number, but is '%s'.", con.FillValue,
		)
	} else if !con.ValidWorkers() {
		return fmt.Errorf(
			"'Workers' must be non-negative, but is %d.", con.Workers,
		)
	} else if con.ValidPlotFile() && !con.ValidPlotDimension() {
		return fmt.Errorf(
			"'PlotDimension' must be in range [0, %d), but is %d.",
			con.Dimensions, con.PlotDimension,
		)
	}

	return nil
}

// Policy returns the bounds policy described by BoundsPolicy and FillValue.
// CheckInit must have succeeded.
func (con *InterpolateConfig) Policy() interpolate.BoundsPolicy {
	mode, err := interpolate.ParseBoundsMode(con.BoundsPolicy)
	if err != nil {
		panic(err.Error())
	}

	switch mode {
	case interpolate.FillWithConstant:
		fill, _ := strconv.ParseFloat(con.FillValue, 64)
		return interpolate.Fill(fill)
	case interpolate.ExtrapolateLinear:
		return interpolate.Extrapolate()
	}
	return interpolate.BoundsError()
}

// ReadInterpolateConfig reads and checks the [Interpolate] section of the
// given config file.
func ReadInterpolateConfig(fname string) (*InterpolateConfig, error) {
	wrap := DefaultInterpolateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Interpolate
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}
