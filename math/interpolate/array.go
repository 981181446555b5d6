package interpolate

import (
	"fmt"
	"reflect"

	"github.com/phil-mansfield/regrid/geom"
)

// Array is a dense, row-major array of float64 values. It is the container
// used for value arrays, query points and results.
type Array struct {
	Shape []int
	Data  []float64
}

// NewArray wraps data in an Array with the given shape. data is not copied.
// An error is returned if the shape does not describe exactly len(data)
// elements.
func NewArray(data []float64, shape ...int) (*Array, error) {
	size := 1
	for _, n := range shape {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative length in shape %v",
				ErrShapeMismatch, shape)
		}
		size *= n
	}
	if size != len(data) {
		return nil, fmt.Errorf("%w: shape %v holds %d elements, but %d were given",
			ErrShapeMismatch, shape, size, len(data))
	}
	return &Array{Shape: append([]int{}, shape...), Data: data}, nil
}

// Zeros returns a zero-filled Array of the given shape.
func Zeros(shape ...int) *Array {
	g := geom.NewGrid(shape...)
	return &Array{Shape: g.Shape, Data: make([]float64, g.Size)}
}

// FromInts converts integer samples to an Array. The conversion is exact for
// any value with magnitude below 2^53.
func FromInts(data []int, shape ...int) (*Array, error) {
	fs := make([]float64, len(data))
	for i, x := range data {
		fs[i] = float64(x)
	}
	return NewArray(fs, shape...)
}

// Rank returns the number of dimensions of a.
func (a *Array) Rank() int { return len(a.Shape) }

// Len returns the total number of elements in a.
func (a *Array) Len() int { return len(a.Data) }

// At returns the element at the given coordinates. It will panic if the
// number of coordinates is wrong or any of them is out of bounds.
func (a *Array) At(idx ...int) float64 {
	g := geom.Grid{}
	g.Init(a.Shape...)
	i, ok := g.IdxCheck(idx...)
	if !ok {
		panic(fmt.Sprintf("Index %v out of bounds for Array of shape %v.",
			idx, a.Shape))
	}
	return a.Data[i]
}

// Reshape returns an Array sharing a's data with a new shape.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	return NewArray(a.Data, shape...)
}

// Copy returns a deep copy of a.
func (a *Array) Copy() *Array {
	return &Array{
		Shape: append([]int{}, a.Shape...),
		Data:  append([]float64{}, a.Data...),
	}
}

// AsArray converts array-like input to an Array. Accepted inputs are an
// *Array, real scalars and arbitrarily nested slices or arrays of real
// scalars (any integer, unsigned or float kind, possibly behind interface{}
// elements). Integer kinds are converted to float64.
//
// Ragged input returns ErrShapeMismatch and non-real elements (complex,
// strings, bools, ...) return ErrUnsupportedKind.
func AsArray(x interface{}) (*Array, error) {
	switch v := x.(type) {
	case *Array:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *Array", ErrUnsupportedKind)
		}
		return v, nil
	case []float64:
		return &Array{Shape: []int{len(v)}, Data: append([]float64{}, v...)}, nil
	case [][]float64:
		return fromRows(v)
	}

	rv := reflect.ValueOf(x)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: nil input", ErrUnsupportedKind)
	}

	shape := inferShape(rv)
	g := geom.NewGrid(shape...)
	a := &Array{Shape: g.Shape, Data: make([]float64, 0, g.Size)}
	if err := a.appendValue(rv, 0); err != nil {
		return nil, err
	}
	return a, nil
}

func fromRows(rows [][]float64) (*Array, error) {
	if len(rows) == 0 {
		return &Array{Shape: []int{0}, Data: []float64{}}, nil
	}
	n := len(rows[0])
	data := make([]float64, 0, n*len(rows))
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has length %d, row 0 has length %d",
				ErrShapeMismatch, i, len(row), n)
		}
		data = append(data, row...)
	}
	return &Array{Shape: []int{len(rows), n}, Data: data}, nil
}

// inferShape follows the first element of every nested sequence.
func inferShape(rv reflect.Value) []int {
	shape := []int{}
	for {
		for rv.Kind() == reflect.Interface && !rv.IsNil() {
			rv = rv.Elem()
		}
		if !isSequence(rv) {
			return shape
		}
		shape = append(shape, rv.Len())
		if rv.Len() == 0 {
			return shape
		}
		rv = rv.Index(0)
	}
}

func isSequence(rv reflect.Value) bool {
	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}

func (a *Array) appendValue(rv reflect.Value, depth int) error {
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}

	if depth == len(a.Shape) {
		if isSequence(rv) {
			return fmt.Errorf("%w: unexpected nesting at depth %d",
				ErrShapeMismatch, depth)
		}
		x, err := realValue(rv)
		if err != nil {
			return err
		}
		a.Data = append(a.Data, x)
		return nil
	}

	if !isSequence(rv) {
		return fmt.Errorf("%w: expected a sequence of length %d at depth %d",
			ErrShapeMismatch, a.Shape[depth], depth)
	} else if rv.Len() != a.Shape[depth] {
		return fmt.Errorf("%w: sequence at depth %d has length %d, expected %d",
			ErrShapeMismatch, depth, rv.Len(), a.Shape[depth])
	}

	for i := 0; i < rv.Len(); i++ {
		if err := a.appendValue(rv.Index(i), depth+1); err != nil {
			return err
		}
	}
	return nil
}

// realValue converts a real scalar to float64.
func realValue(rv reflect.Value) (float64, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Interface:
		if !rv.IsNil() {
			return realValue(rv.Elem())
		}
	}
	if !rv.IsValid() {
		return 0, fmt.Errorf("%w: nil element", ErrUnsupportedKind)
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedKind, rv.Type())
}
