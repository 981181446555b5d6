package interpolate

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// UniformAxis returns n grid points starting at x0 and separated by dx.
func UniformAxis(x0, dx float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{x0}
	}
	return floats.Span(make([]float64, n), x0, x0+dx*float64(n-1))
}

func optionalPolicy(policy []BoundsPolicy) BoundsPolicy {
	if len(policy) == 0 {
		return BoundsError()
	}
	return policy[0]
}

// mustEval evaluates the row-major block of points pts into out and panics
// if the bounds policy rejects them.
func mustEval(g *RegularGrid, pts, out []float64) {
	if err := g.evaluate(pts, len(pts)/g.n, out); err != nil {
		panic(err.Error())
	}
}

// pack interleaves coordinate columns into a row-major block of k points. A
// nil column is filled with the corresponding entry of fixed.
func pack(k int, cols [][]float64, fixed []float64) []float64 {
	n := len(cols)
	pts := make([]float64, k*n)
	for d, col := range cols {
		if col == nil {
			for p := 0; p < k; p++ {
				pts[p*n+d] = fixed[d]
			}
			continue
		}

		if len(col) != k {
			panic(fmt.Sprintf(
				"Coordinate slice %d has length %d, but %d points are "+
					"being evaluated.", d, len(col), k,
			))
		}
		for p, x := range col {
			pts[p*n+d] = x
		}
	}
	return pts
}

func output(k int, out [][]float64) []float64 {
	if len(out) == 0 {
		return make([]float64, k)
	}
	return out[0]
}

///////////////////////////
// Linear Implementation //
///////////////////////////

// Linear is a linear interpolator.
type Linear struct {
	g *RegularGrid
}

// NewLinear creates a linear interpolator for a sequence of strictly
// increasing points, xs, which take on the values given by vals. The bounds
// policy defaults to BoundsError().
//
// Lookups will occur in O(log |xs|), or O(1) if xs is uniformly spaced.
func NewLinear(xs, vals []float64, policy ...BoundsPolicy) (*Linear, error) {
	if len(xs) != len(vals) {
		return nil, fmt.Errorf("%w: len(xs) = %d, but len(vals) = %d",
			ErrShapeMismatch, len(xs), len(vals))
	}
	g, err := NewRegularGrid(
		[][]float64{xs},
		&Array{Shape: []int{len(vals)}, Data: vals},
		optionalPolicy(policy),
	)
	if err != nil {
		return nil, err
	}
	return &Linear{g}, nil
}

// NewUniformLinear creates a linear interpolator where a uniformly spaced
// sequence of x values starting at x0 and separated by dx take on the values
// given by vals.
func NewUniformLinear(
	x0, dx float64, vals []float64, policy ...BoundsPolicy,
) (*Linear, error) {
	return NewLinear(UniformAxis(x0, dx, len(vals)), vals, policy...)
}

// Eval returns the interpolated value at x.
//
// Under the BoundsError() policy, Eval panics if x is outside the range of
// the interpolator.
func (lin *Linear) Eval(x float64) float64 {
	var pt, out [1]float64
	pt[0] = x
	mustEval(lin.g, pt[:], out[:])
	return out[0]
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	res := output(len(xs), out)
	mustEval(lin.g, xs, res[:len(xs)])
	return res
}

// Grid returns the underlying N-dimensional interpolator.
func (lin *Linear) Grid() *RegularGrid { return lin.g }

/////////////////////////////
// BiLinear Implementation //
/////////////////////////////

// BiLinear is a bi-linear interpolator. Its values are stored with y varying
// fastest: the value at (xs[i], ys[j]) is vals[i*len(ys) + j].
type BiLinear struct {
	g *RegularGrid
}

// NewBiLinear creates a bi-linear interpolator over the grid xs × ys.
func NewBiLinear(
	xs, ys, vals []float64, policy ...BoundsPolicy,
) (*BiLinear, error) {
	if len(xs)*len(ys) != len(vals) {
		return nil, fmt.Errorf(
			"%w: len(vals) = %d, but len(xs) = %d and len(ys) = %d",
			ErrShapeMismatch, len(vals), len(xs), len(ys),
		)
	}
	g, err := NewRegularGrid(
		[][]float64{xs, ys},
		&Array{Shape: []int{len(xs), len(ys)}, Data: vals},
		optionalPolicy(policy),
	)
	if err != nil {
		return nil, err
	}
	return &BiLinear{g}, nil
}

// NewUniformBiLinear creates a bi-linear interpolator over uniformly spaced
// axes.
func NewUniformBiLinear(
	x0, dx float64, nx int,
	y0, dy float64, ny int,
	vals []float64, policy ...BoundsPolicy,
) (*BiLinear, error) {
	return NewBiLinear(
		UniformAxis(x0, dx, nx), UniformAxis(y0, dy, ny), vals, policy...,
	)
}

func (bi *BiLinear) Eval(x, y float64) float64 {
	var out [1]float64
	mustEval(bi.g, []float64{x, y}, out[:])
	return out[0]
}

func (bi *BiLinear) EvalAll(xs, ys []float64, out ...[]float64) []float64 {
	res := output(len(xs), out)
	pts := pack(len(xs), [][]float64{xs, ys}, nil)
	mustEval(bi.g, pts, res[:len(xs)])
	return res
}

func (bi *BiLinear) EvalAllX(x float64, ys []float64, out ...[]float64) []float64 {
	res := output(len(ys), out)
	pts := pack(len(ys), [][]float64{nil, ys}, []float64{x, 0})
	mustEval(bi.g, pts, res[:len(ys)])
	return res
}

func (bi *BiLinear) EvalAllY(xs []float64, y float64, out ...[]float64) []float64 {
	res := output(len(xs), out)
	pts := pack(len(xs), [][]float64{xs, nil}, []float64{0, y})
	mustEval(bi.g, pts, res[:len(xs)])
	return res
}

// Grid returns the underlying N-dimensional interpolator.
func (bi *BiLinear) Grid() *RegularGrid { return bi.g }

//////////////////////////////
// TriLinear Implementation //
//////////////////////////////

// TriLinear is a tri-linear interpolator. Its values are stored with z
// varying fastest and x slowest.
type TriLinear struct {
	g *RegularGrid
}

// NewTriLinear creates a tri-linear interpolator over the grid xs × ys × zs.
func NewTriLinear(
	xs, ys, zs, vals []float64, policy ...BoundsPolicy,
) (*TriLinear, error) {
	if len(xs)*len(ys)*len(zs) != len(vals) {
		return nil, fmt.Errorf(
			"%w: len(vals) = %d, but len(xs) = %d, len(ys) = %d, and "+
				"len(zs) = %d",
			ErrShapeMismatch, len(vals), len(xs), len(ys), len(zs),
		)
	}
	g, err := NewRegularGrid(
		[][]float64{xs, ys, zs},
		&Array{Shape: []int{len(xs), len(ys), len(zs)}, Data: vals},
		optionalPolicy(policy),
	)
	if err != nil {
		return nil, err
	}
	return &TriLinear{g}, nil
}

// NewUniformTriLinear creates a tri-linear interpolator over uniformly spaced
// axes.
func NewUniformTriLinear(
	x0, dx float64, nx int,
	y0, dy float64, ny int,
	z0, dz float64, nz int,
	vals []float64, policy ...BoundsPolicy,
) (*TriLinear, error) {
	return NewTriLinear(
		UniformAxis(x0, dx, nx), UniformAxis(y0, dy, ny),
		UniformAxis(z0, dz, nz), vals, policy...,
	)
}

func (tri *TriLinear) Eval(x, y, z float64) float64 {
	var out [1]float64
	mustEval(tri.g, []float64{x, y, z}, out[:])
	return out[0]
}

func (tri *TriLinear) EvalAll(xs, ys, zs []float64, out ...[]float64) []float64 {
	res := output(len(xs), out)
	pts := pack(len(xs), [][]float64{xs, ys, zs}, nil)
	mustEval(tri.g, pts, res[:len(xs)])
	return res
}

func (tri *TriLinear) EvalAllXY(x, y float64, zs []float64, out ...[]float64) []float64 {
	res := output(len(zs), out)
	pts := pack(len(zs), [][]float64{nil, nil, zs}, []float64{x, y, 0})
	mustEval(tri.g, pts, res[:len(zs)])
	return res
}

func (tri *TriLinear) EvalAllXZ(x float64, ys []float64, z float64, out ...[]float64) []float64 {
	res := output(len(ys), out)
	pts := pack(len(ys), [][]float64{nil, ys, nil}, []float64{x, 0, z})
	mustEval(tri.g, pts, res[:len(ys)])
	return res
}

func (tri *TriLinear) EvalAllYZ(xs []float64, y, z float64, out ...[]float64) []float64 {
	res := output(len(xs), out)
	pts := pack(len(xs), [][]float64{xs, nil, nil}, []float64{0, y, z})
	mustEval(tri.g, pts, res[:len(xs)])
	return res
}

// Grid returns the underlying N-dimensional interpolator.
func (tri *TriLinear) Grid() *RegularGrid { return tri.g }
