package interpolate

import (
	"errors"
	"fmt"

	"github.com/phil-mansfield/regrid/geom"
)

// RegularGrid is a multilinear interpolator over a rectilinear grid in N
// dimensions. Axis spacing may be non-uniform. Samples may be vector valued:
// any dimensions of the value array beyond the first N are carried through
// the interpolation unchanged.
//
// A RegularGrid is immutable once constructed and may be evaluated from
// multiple goroutines at once.
type RegularGrid struct {
	axes     []searcher
	vals     []float64
	n        int
	trailing []int
	tsize    int
	policy   BoundsPolicy
	fill     float64

	// strides[d] is the distance in vals between neighbouring nodes along
	// axis d, and corners[c] is the offset of corner c from the low corner
	// of its cell.
	strides []int
	corners []int
}

// NewRegularGrid creates an interpolator for the grid defined by axes, which
// takes on the values given by values. axes[i] must be strictly ascending and
// have the same length as values.Shape[i]. axes and values are copied.
func NewRegularGrid(
	axes [][]float64, values *Array, policy BoundsPolicy,
) (*RegularGrid, error) {
	if values == nil {
		return nil, fmt.Errorf("%w: nil value array", ErrUnsupportedKind)
	} else if len(axes) == 0 {
		return nil, fmt.Errorf("%w: at least one axis is required",
			ErrDimensionMismatch)
	} else if len(axes) > values.Rank() {
		return nil, fmt.Errorf(
			"%w: there are %d axes, but values has %d dimensions",
			ErrDimensionMismatch, len(axes), values.Rank(),
		)
	}

	vg := geom.NewGrid(values.Shape...)
	if vg.Size != len(values.Data) {
		return nil, fmt.Errorf(
			"%w: value shape %v holds %d elements, but %d were given",
			ErrShapeMismatch, values.Shape, vg.Size, len(values.Data),
		)
	}

	fill, err := policy.fill()
	if err != nil {
		return nil, err
	}

	for i, axis := range axes {
		if err := checkAxis(i, axis, values.Shape[i]); err != nil {
			return nil, err
		}
	}

	n := len(axes)
	g := &RegularGrid{
		axes:     make([]searcher, n),
		vals:     append([]float64{}, values.Data...),
		n:        n,
		trailing: append([]int{}, values.Shape[n:]...),
		tsize:    1,
		policy:   policy,
		fill:     fill,
		strides:  append([]int{}, vg.Strides[:n]...),
	}
	for i, axis := range axes {
		g.axes[i].init(append([]float64{}, axis...))
	}
	for _, m := range g.trailing {
		g.tsize *= m
	}
	g.initCorners()

	return g, nil
}

// New is NewRegularGrid for array-like inputs: each element of points and
// values itself may be anything accepted by AsArray. Integer samples are
// converted to float64.
func New(
	points []interface{}, values interface{}, policy BoundsPolicy,
) (*RegularGrid, error) {
	vals, err := AsArray(values)
	if err != nil {
		return nil, fmt.Errorf("values: %w", err)
	}
	if len(points) > vals.Rank() {
		return nil, fmt.Errorf(
			"%w: there are %d point arrays, but values has %d dimensions",
			ErrDimensionMismatch, len(points), vals.Rank(),
		)
	}

	axes := make([][]float64, len(points))
	for i, p := range points {
		a, err := AsArray(p)
		if errors.Is(err, ErrShapeMismatch) {
			return nil, fmt.Errorf("%w: dimension %d is ragged",
				ErrMalformedAxis, i)
		} else if err != nil {
			return nil, fmt.Errorf("points in dimension %d: %w", i, err)
		} else if a.Rank() != 1 {
			return nil, fmt.Errorf(
				"%w: the points in dimension %d have %d dimensions",
				ErrMalformedAxis, i, a.Rank(),
			)
		}
		axes[i] = a.Data
	}

	return NewRegularGrid(axes, vals, policy)
}

func checkAxis(dim int, axis []float64, n int) error {
	if len(axis) == 0 {
		return fmt.Errorf("%w: the points in dimension %d are empty",
			ErrMalformedAxis, dim)
	}
	for j := 1; j < len(axis); j++ {
		// Written so that NaNs fail.
		if !(axis[j] > axis[j-1]) {
			return fmt.Errorf(
				"%w: the points in dimension %d are not strictly ascending "+
					"at index %d (%g after %g)",
				ErrNonMonotonicAxis, dim, j, axis[j], axis[j-1],
			)
		}
	}
	if len(axis) != n {
		return fmt.Errorf(
			"%w: there are %d points and %d values in dimension %d",
			ErrShapeMismatch, len(axis), n, dim,
		)
	}
	return nil
}

// initCorners precomputes the offset of each of the 2^N cell corners from the
// cell's low corner. Bit N-1-d of the corner index selects the high edge of
// axis d, so the last axis varies fastest. An axis with a single node has no
// high edge; both of its "edges" refer to that node.
func (g *RegularGrid) initCorners() {
	g.corners = make([]int, 1<<uint(g.n))
	for c := range g.corners {
		off := 0
		for d := 0; d < g.n; d++ {
			if highEdge(c, d, g.n) && len(g.axes[d].xs) > 1 {
				off += g.strides[d]
			}
		}
		g.corners[c] = off
	}
}

func highEdge(corner, dim, n int) bool {
	return (corner>>uint(n-1-dim))&1 == 1
}

// Dims returns the number of interpolated dimensions, N.
func (g *RegularGrid) Dims() int { return g.n }

// Axis returns a copy of the grid points along dimension i.
func (g *RegularGrid) Axis(i int) []float64 {
	return append([]float64{}, g.axes[i].xs...)
}

// Bounds returns the first and last grid points along dimension i.
func (g *RegularGrid) Bounds(i int) (lo, hi float64) {
	xs := g.axes[i].xs
	return xs[0], xs[len(xs)-1]
}

// ValueShape returns the trailing dimensions of each sample. It is empty for
// scalar values.
func (g *RegularGrid) ValueShape() []int {
	return append([]int{}, g.trailing...)
}

// Policy returns the bounds policy the grid was created with.
func (g *RegularGrid) Policy() BoundsPolicy { return g.policy }
