package interpolate_test

import (
	"errors"
	"fmt"

	"github.com/phil-mansfield/regrid/math/interpolate"
)

func ExampleRegularGrid_Eval() {
	vals, _ := interpolate.NewArray([]float64{
		0, 1,
		1, 2,
	}, 2, 2)
	g, err := interpolate.NewRegularGrid(
		[][]float64{{0, 1}, {0, 1}}, vals, interpolate.BoundsError(),
	)
	if err != nil {
		panic(err)
	}

	xi, _ := interpolate.NewArray([]float64{
		0.5, 0.5,
		0.0, 1.0,
		1.0, 0.25,
	}, 3, 2)
	res, err := g.Eval(xi)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Shape, res.Data)
	// Output: [3] [1 1 1.25]
}

func ExampleNew() {
	g, err := interpolate.New(
		[]interface{}{[]int{0, 1, 2}}, []int{0, 10, 20},
		interpolate.Fill(-1),
	)
	if err != nil {
		panic(err)
	}

	res, _ := g.EvalPoints([]float64{0.5, 1.25, 3})
	fmt.Println(res.Data)
	// Output: [5 12.5 -1]
}

func ExampleDomainError() {
	g, _ := interpolate.New(
		[]interface{}{[]float64{0, 1}, []float64{10, 20, 30}},
		[][]float64{{1, 2, 3}, {4, 5, 6}},
		interpolate.BoundsError(),
	)

	_, err := g.EvalPoint(0.5, 31)
	var de *interpolate.DomainError
	if errors.As(err, &de) {
		fmt.Println(de.Dim, errors.Is(err, interpolate.ErrOutOfDomain))
	}
	fmt.Println(err)
	// Output:
	// 1 true
	// interpolate: query point out of bounds in dimension 1: 31 is not in [10, 30]
}
