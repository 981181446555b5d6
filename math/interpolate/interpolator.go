/*package interpolate implements multilinear interpolation of data sampled on
rectilinear grids in any number of dimensions.

RegularGrid is the general interpolator: N axes, vector-valued samples and a
batch of query points per call. Linear, BiLinear and TriLinear wrap it with
the scalar, fixed-dimension interfaces below.
*/
package interpolate

// Interpolator is a 1D interpolator.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Linear{}
)

// BiInterpolator is a 2D interpolator.
type BiInterpolator interface {
	Eval(x, y float64) float64
	EvalAll(xs, ys []float64, out ...[]float64) []float64

	// EvalAllX evaluates the points (x, ys[i]).
	EvalAllX(x float64, ys []float64, out ...[]float64) []float64
	// EvalAllY evaluates the points (xs[i], y).
	EvalAllY(xs []float64, y float64, out ...[]float64) []float64
}

var (
	_ BiInterpolator = &BiLinear{}
)

// TriInterpolator is a 3D interpolator.
type TriInterpolator interface {
	Eval(x, y, z float64) float64
	EvalAll(xs, ys, zs []float64, out ...[]float64) []float64

	// EvalAllXY evaluates the points (x, y, zs[i]).
	EvalAllXY(x, y float64, zs []float64, out ...[]float64) []float64
	// EvalAllXZ evaluates the points (x, ys[i], z).
	EvalAllXZ(x float64, ys []float64, z float64, out ...[]float64) []float64
	// EvalAllYZ evaluates the points (xs[i], y, z).
	EvalAllYZ(xs []float64, y, z float64, out ...[]float64) []float64
}

var (
	_ TriInterpolator = &TriLinear{}
)

// GridInterpolator interpolates batches of N-dimensional points.
type GridInterpolator interface {
	Dims() int
	ValueShape() []int
	Eval(xi *Array, out ...*Array) (*Array, error)
}

var (
	_ GridInterpolator = &RegularGrid{}
)
