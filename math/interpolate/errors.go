package interpolate

import (
	"errors"
	"fmt"
)

// Construction errors are returned by NewRegularGrid and New; evaluation
// errors by the Eval family. All of them are matched with errors.Is, since
// they are usually wrapped with the offending dimension or shape.
var (
	// ErrDimensionMismatch indicates more axes than the value array has
	// dimensions.
	ErrDimensionMismatch = errors.New("interpolate: more axes than value dimensions")
	// ErrNonMonotonicAxis indicates an axis which is not strictly ascending.
	ErrNonMonotonicAxis = errors.New("interpolate: axis is not strictly ascending")
	// ErrMalformedAxis indicates an axis which is not a non-empty 1D sequence.
	ErrMalformedAxis = errors.New("interpolate: axis must be a non-empty 1D sequence")
	// ErrShapeMismatch indicates inconsistent lengths between an axis and the
	// value array, or a ragged/inconsistent array.
	ErrShapeMismatch = errors.New("interpolate: shape mismatch")
	// ErrIncompatibleFillValue indicates a fill value which cannot be stored
	// in a real-valued result.
	ErrIncompatibleFillValue = errors.New("interpolate: fill value incompatible with values")
	// ErrUnsupportedKind indicates array-like input whose elements are not
	// real numbers.
	ErrUnsupportedKind = errors.New("interpolate: unsupported element kind")
	// ErrQueryDimensionMismatch indicates query points whose coordinate count
	// differs from the grid's dimensionality.
	ErrQueryDimensionMismatch = errors.New("interpolate: query dimension mismatch")
	// ErrOutOfDomain indicates a query point outside the grid under the
	// ErrorOnOutOfBounds policy.
	ErrOutOfDomain = errors.New("interpolate: query point out of bounds")
)

// DomainError reports the first coordinate found outside the grid. It
// unwraps to ErrOutOfDomain.
type DomainError struct {
	Dim    int
	X      float64
	Lo, Hi float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf(
		"%s in dimension %d: %g is not in [%g, %g]",
		ErrOutOfDomain.Error(), e.Dim, e.X, e.Lo, e.Hi,
	)
}

func (e *DomainError) Unwrap() error { return ErrOutOfDomain }
