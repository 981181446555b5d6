package geom

import (
	"fmt"
)

// Grid provides an interface for reasoning over a 1D slice as if it were an
// N-dimensional grid. Indices are row-major: the last dimension varies
// fastest.
type Grid struct {
	Shape   []int
	Strides []int
	Size    int
}

// NewGrid returns a new Grid instance.
func NewGrid(shape ...int) *Grid {
	g := &Grid{}
	g.Init(shape...)
	return g
}

// Init initializes a Grid instance. Init panics if any dimension is
// negative.
func (g *Grid) Init(shape ...int) {
	g.Shape = make([]int, len(shape))
	copy(g.Shape, shape)
	g.Strides = make([]int, len(shape))

	g.Size = 1
	for i := len(shape) - 1; i >= 0; i-- {
		if shape[i] < 0 {
			panic(fmt.Sprintf("Grid dimension %d has negative length %d.",
				i, shape[i]))
		}
		g.Strides[i] = g.Size
		g.Size *= shape[i]
	}
}

// Dims returns the number of dimensions of the grid.
func (g *Grid) Dims() int { return len(g.Shape) }

// Idx returns the grid index corresponding to a set of coordinates. Only the
// first len(idx) dimensions are used, so a prefix of coordinates gives the
// start of the corresponding sub-block.
func (g *Grid) Idx(idx ...int) int {
	i := 0
	for d, x := range idx {
		i += x * g.Strides[d]
	}
	return i
}

// IdxCheck returns an index and true if the given coordinates are valid and
// false otherwise.
func (g *Grid) IdxCheck(idx ...int) (i int, ok bool) {
	if !g.BoundsCheck(idx...) {
		return -1, false
	}
	return g.Idx(idx...), true
}

// BoundsCheck returns true if the given coordinates are within the Grid and
// false otherwise.
func (g *Grid) BoundsCheck(idx ...int) bool {
	if len(idx) != len(g.Shape) {
		return false
	}
	for d, x := range idx {
		if x < 0 || x >= g.Shape[d] {
			return false
		}
	}
	return true
}

// Coords writes the coordinates of a point into out from its grid index,
// which must be in [0, Size). If out is nil or too short a new slice is
// allocated.
func (g *Grid) Coords(i int, out []int) []int {
	if len(out) < len(g.Shape) {
		out = make([]int, len(g.Shape))
	}
	for d := range g.Shape {
		out[d] = i / g.Strides[d]
		i -= out[d] * g.Strides[d]
	}
	return out[:len(g.Shape)]
}
