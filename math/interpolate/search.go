package interpolate

import (
	"math"
	"sort"
)

// searcher locates query coordinates along one axis.
type searcher struct {
	xs []float64
	// Usually the axis is uniform. This is our estimate of the point
	// spacing.
	x0, dx float64
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.x0 = xs[0]
	if len(xs) > 1 {
		s.dx = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
	}
}

// search returns the index i of the low edge of the cell used for x and the
// normalized distance of x from that edge. i is the index of the largest
// point strictly smaller than x, clamped to [0, len(xs)-2]; so x == xs[k]
// gives the cell below k (distance 1) except at xs[0]. Outside the axis the
// distance lies outside [0, 1].
//
// An axis with a single point has no cells. Its distance is NaN.
func (s *searcher) search(x float64) (int, float64) {
	xs := s.xs
	m := len(xs)
	if m == 1 {
		return 0, math.NaN()
	}

	i := s.guess(x)
	if i < 0 {
		i = sort.SearchFloat64s(xs, x) - 1
		if i < 0 {
			i = 0
		} else if i > m-2 {
			i = m - 2
		}
	}

	return i, (x - xs[i]) / (xs[i+1] - xs[i])
}

// guess tries the cell predicted by uniform spacing and returns -1 if x is
// not inside it.
func (s *searcher) guess(x float64) int {
	f := (x - s.x0) / s.dx
	if !(f >= 0 && f < float64(len(s.xs)-1)) {
		return -1
	}
	i := int(f)
	if s.xs[i] < x && x <= s.xs[i+1] {
		return i
	}
	return -1
}

// contains returns true if x is inside the closed interval spanned by the
// axis.
func (s *searcher) contains(x float64) bool {
	return s.xs[0] <= x && x <= s.xs[len(s.xs)-1]
}

// workspace holds the per-call state of an evaluation: for point p and
// dimension d, dist[d*npts + p] is the normalized distance within the cell,
// base[p] is the offset of the cell's low corner in the value array and
// oob[p] is set if p is out of bounds in any dimension. oob is nil unless
// out-of-bounds points need to be flagged.
type workspace struct {
	npts int
	dist []float64
	base []int
	oob  []bool
}

func newWorkspace(n, npts int, flag bool) *workspace {
	ws := &workspace{
		npts: npts,
		dist: make([]float64, n*npts),
		base: make([]int, npts),
	}
	if flag {
		ws.oob = make([]bool, npts)
	}
	return ws
}

// findIndices locates every point of xi, a row-major (npts, N) block of
// coordinates, and fills in ws.
func (g *RegularGrid) findIndices(xi []float64, ws *workspace) {
	n, npts := g.n, ws.npts
	for d := range g.axes {
		s := &g.axes[d]
		stride := g.strides[d]
		dist := ws.dist[d*npts : (d+1)*npts]
		for p := range dist {
			x := xi[p*n+d]
			i, t := s.search(x)
			dist[p] = t
			ws.base[p] += i * stride
			if ws.oob != nil && (x < s.xs[0] || x > s.xs[len(s.xs)-1]) {
				ws.oob[p] = true
			}
		}
	}
}

// checkBounds returns a *DomainError for the first dimension containing a
// coordinate outside the grid. NaN coordinates are out of bounds.
func (g *RegularGrid) checkBounds(xi []float64, npts int) error {
	n := g.n
	for d := range g.axes {
		s := &g.axes[d]
		for p := 0; p < npts; p++ {
			x := xi[p*n+d]
			if !s.contains(x) {
				lo, hi := g.Bounds(d)
				return &DomainError{Dim: d, X: x, Lo: lo, Hi: hi}
			}
		}
	}
	return nil
}
