package interpolate

import (
	"fmt"
	"runtime"
)

// Eval interpolates the grid at the points in xi, which has shape (..., N).
// The result has shape (..., trailing...) where trailing is ValueShape().
//
// A rank-1 xi is read as a flat list of points, i.e. reshaped to (-1, N),
// and a rank-0 xi is accepted by 1D grids and gives a result with only the
// trailing dimensions.
//
// If an output array is given, the result is written to it (the array is
// still returned as a convenience). Its data must have exactly the length of
// the result; its shape is overwritten. If more than one output array is
// provided, only the first is used.
func (g *RegularGrid) Eval(xi *Array, out ...*Array) (*Array, error) {
	pts, lead, err := g.points(xi)
	if err != nil {
		return nil, err
	}
	res, err := g.result(lead, out)
	if err != nil {
		return nil, err
	}

	if err := g.evaluate(pts, len(pts)/g.n, res.Data); err != nil {
		return nil, err
	}
	return res, nil
}

// EvalPoints is Eval for any array-like query accepted by AsArray.
func (g *RegularGrid) EvalPoints(xi interface{}) (*Array, error) {
	a, err := AsArray(xi)
	if err != nil {
		return nil, fmt.Errorf("query points: %w", err)
	}
	return g.Eval(a)
}

// EvalColumns evaluates the points whose coordinates along dimension d are
// given by cols[d]. All columns must have the same length, k, and the result
// has shape (k, trailing...).
func (g *RegularGrid) EvalColumns(cols ...[]float64) (*Array, error) {
	if len(cols) != g.n {
		return nil, fmt.Errorf(
			"%w: %d coordinate columns were given, but the grid has "+
				"dimension %d",
			ErrQueryDimensionMismatch, len(cols), g.n,
		)
	}

	k := len(cols[0])
	pts := make([]float64, k*g.n)
	for d, col := range cols {
		if len(col) != k {
			return nil, fmt.Errorf(
				"%w: column %d has length %d, but column 0 has length %d",
				ErrShapeMismatch, d, len(col), k,
			)
		}
		for p, x := range col {
			pts[p*g.n+d] = x
		}
	}

	return g.Eval(&Array{Shape: []int{k, g.n}, Data: pts})
}

// EvalPoint evaluates a single point and returns its (flattened) sample.
func (g *RegularGrid) EvalPoint(x ...float64) ([]float64, error) {
	if len(x) != g.n {
		return nil, fmt.Errorf(
			"%w: the point has dimension %d, but the grid has dimension %d",
			ErrQueryDimensionMismatch, len(x), g.n,
		)
	}
	out := make([]float64, g.tsize)
	if err := g.evaluate(x, 1, out); err != nil {
		return nil, err
	}
	return out, nil
}

// EvalParallel is Eval with the batch split between workers goroutines. If
// workers is not positive, runtime.NumCPU() workers are used. The result is
// identical to Eval's.
func (g *RegularGrid) EvalParallel(xi *Array, workers int) (*Array, error) {
	pts, lead, err := g.points(xi)
	if err != nil {
		return nil, err
	}
	res, err := g.result(lead, nil)
	if err != nil {
		return nil, err
	}

	npts := len(pts) / g.n
	if g.policy.Mode == ErrorOnOutOfBounds {
		if err := g.checkBounds(pts, npts); err != nil {
			return nil, err
		}
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	out := make(chan int, workers)
	for id := 0; id < workers-1; id++ {
		go g.chanEval(id, workers, pts, res.Data, out)
	}
	g.chanEval(workers-1, workers, pts, res.Data, out)

	for i := 0; i < workers; i++ {
		<-out
	}
	return res, nil
}

// chanEval is a worker function which evaluates the worker's share of the
// points in pts and writes them into the matching part of res. The worker ID
// is sent to the out channel when it is done.
func (g *RegularGrid) chanEval(
	worker, workers int, pts, res []float64, out chan<- int,
) {
	npts := len(pts) / g.n
	lo, hi := npts*worker/workers, npts*(worker+1)/workers
	g.compute(pts[lo*g.n:hi*g.n], hi-lo, res[lo*g.tsize:hi*g.tsize])
	out <- worker
}

// evaluate applies the bounds policy around compute.
func (g *RegularGrid) evaluate(pts []float64, npts int, out []float64) error {
	if g.policy.Mode == ErrorOnOutOfBounds {
		if err := g.checkBounds(pts, npts); err != nil {
			return err
		}
	}
	g.compute(pts, npts, out)
	return nil
}

// compute interpolates npts points into out without checking bounds.
func (g *RegularGrid) compute(pts []float64, npts int, out []float64) {
	ws := newWorkspace(g.n, npts, g.policy.Mode == FillWithConstant)
	g.findIndices(pts, ws)
	for i := range out {
		out[i] = 0
	}
	g.blend(ws, out)
	if ws.oob != nil {
		g.applyFill(ws, out)
	}
}

// points returns the flattened coordinates of xi and the leading dimensions
// of the result.
func (g *RegularGrid) points(xi *Array) (pts []float64, lead []int, err error) {
	if xi == nil {
		return nil, nil, fmt.Errorf("%w: nil query", ErrQueryDimensionMismatch)
	} else if _, err := NewArray(xi.Data, xi.Shape...); err != nil {
		return nil, nil, fmt.Errorf("query points: %w", err)
	}

	switch {
	case xi.Rank() == 0 && g.n == 1:
		return xi.Data, []int{}, nil
	case xi.Rank() == 1:
		if len(xi.Data)%g.n != 0 {
			return nil, nil, fmt.Errorf(
				"%w: %d coordinates cannot be split into points of "+
					"dimension %d",
				ErrQueryDimensionMismatch, len(xi.Data), g.n,
			)
		}
		return xi.Data, []int{len(xi.Data) / g.n}, nil
	case xi.Rank() > 1 && xi.Shape[xi.Rank()-1] == g.n:
		return xi.Data, xi.Shape[:xi.Rank()-1], nil
	}

	last := 0
	if xi.Rank() > 0 {
		last = xi.Shape[xi.Rank()-1]
	}
	return nil, nil, fmt.Errorf(
		"%w: the requested sample points have dimension %d, but the grid "+
			"has dimension %d",
		ErrQueryDimensionMismatch, last, g.n,
	)
}

// result returns the output array for a query with the given leading
// dimensions, reusing out[0] if present.
func (g *RegularGrid) result(lead []int, out []*Array) (*Array, error) {
	shape := append(append([]int{}, lead...), g.trailing...)
	if len(out) == 0 || out[0] == nil {
		return Zeros(shape...), nil
	}

	size := 1
	for _, n := range shape {
		size *= n
	}
	if len(out[0].Data) != size {
		return nil, fmt.Errorf(
			"%w: output array holds %d elements, but the result has shape %v",
			ErrShapeMismatch, len(out[0].Data), shape,
		)
	}
	out[0].Shape = shape
	return out[0], nil
}
