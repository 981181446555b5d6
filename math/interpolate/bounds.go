package interpolate

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// BoundsMode selects what happens to query points outside the grid.
type BoundsMode int

const (
	// ErrorOnOutOfBounds rejects the whole call with ErrOutOfDomain if any
	// coordinate lies outside its axis.
	ErrorOnOutOfBounds BoundsMode = iota
	// FillWithConstant overwrites the results of out-of-bounds points with
	// the policy's fill value.
	FillWithConstant
	// ExtrapolateLinear extends the boundary cells linearly.
	ExtrapolateLinear
)

var modeNames = []string{"Error", "Fill", "Extrapolate"}

func (m BoundsMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("BoundsMode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseBoundsMode converts one of "Error", "Fill" or "Extrapolate" (case
// insensitive) to a BoundsMode.
func ParseBoundsMode(s string) (BoundsMode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return BoundsMode(i), nil
		}
	}
	return 0, fmt.Errorf(
		"Unrecognized bounds policy '%s'. Accepted policies are %s.",
		s, strings.Join(modeNames, ", "),
	)
}

// BoundsPolicy is fixed when an interpolator is constructed. The zero value
// is the ErrorOnOutOfBounds policy.
type BoundsPolicy struct {
	Mode BoundsMode
	// FillValue is only used by FillWithConstant. It may hold any real
	// numeric kind; nil means NaN.
	FillValue interface{}
}

// BoundsError returns the policy which fails on out-of-bounds points.
func BoundsError() BoundsPolicy { return BoundsPolicy{Mode: ErrorOnOutOfBounds} }

// Fill returns the policy which replaces out-of-bounds results with value.
func Fill(value interface{}) BoundsPolicy {
	return BoundsPolicy{Mode: FillWithConstant, FillValue: value}
}

// Extrapolate returns the policy which linearly extrapolates out-of-bounds
// points from the nearest boundary cell.
func Extrapolate() BoundsPolicy { return BoundsPolicy{Mode: ExtrapolateLinear} }

func (p BoundsPolicy) String() string {
	if p.Mode == FillWithConstant {
		return fmt.Sprintf("Fill(%v)", p.FillValue)
	}
	return p.Mode.String()
}

// fill returns the fill value as a float64.
func (p BoundsPolicy) fill() (float64, error) {
	if p.Mode < ErrorOnOutOfBounds || p.Mode > ExtrapolateLinear {
		return 0, fmt.Errorf("interpolate: unknown bounds mode %d", int(p.Mode))
	} else if p.Mode != FillWithConstant {
		return math.NaN(), nil
	} else if p.FillValue == nil {
		return math.NaN(), nil
	}

	x, err := realValue(reflect.ValueOf(p.FillValue))
	if err != nil {
		return 0, fmt.Errorf("%w: %T", ErrIncompatibleFillValue, p.FillValue)
	}
	return x, nil
}
