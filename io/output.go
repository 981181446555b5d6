package io

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/phil-mansfield/regrid/math/interpolate"
)

// split returns the number of points in a batch of queries of the given
// dimension along with the number of result components per point.
func split(queries, result *interpolate.Array) (npts, dim, comps int, err error) {
	if queries.Rank() == 0 {
		return 0, 0, 0, fmt.Errorf("Query array must have at least one dimension.")
	}
	dim = queries.Shape[queries.Rank()-1]
	if dim == 0 || queries.Len()%dim != 0 {
		return 0, 0, 0, fmt.Errorf(
			"Query array of shape %v cannot hold points.", queries.Shape,
		)
	}
	npts = queries.Len() / dim
	if npts == 0 {
		return 0, dim, 0, nil
	} else if result.Len()%npts != 0 {
		return 0, 0, 0, fmt.Errorf(
			"%d results cannot be split between %d query points.",
			result.Len(), npts,
		)
	}
	return npts, dim, result.Len() / npts, nil
}

// WriteResults writes one row per query point: its coordinates followed by
// the components of its interpolated value. The first line is a comment
// naming the columns.
func WriteResults(w io.Writer, queries, result *interpolate.Array) error {
	npts, dim, comps, err := split(queries, result)
	if err != nil {
		return err
	}

	buf := bufio.NewWriter(w)
	fmt.Fprint(buf, "#")
	for d := 0; d < dim; d++ {
		fmt.Fprintf(buf, " x%d", d)
	}
	for j := 0; j < comps; j++ {
		fmt.Fprintf(buf, " v%d", j)
	}
	fmt.Fprintln(buf)

	for p := 0; p < npts; p++ {
		for d, x := range queries.Data[p*dim : (p+1)*dim] {
			if d > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(buf, "%.10g", x)
		}
		for _, v := range result.Data[p*comps : (p+1)*comps] {
			fmt.Fprintf(buf, " %.10g", v)
		}
		buf.WriteByte('\n')
	}

	return buf.Flush()
}

// WriteResultsFile is WriteResults to a newly created file.
func WriteResultsFile(fname string, queries, result *interpolate.Array) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := WriteResults(f, queries, result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
