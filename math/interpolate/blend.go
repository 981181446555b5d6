package interpolate

// blend adds the weighted values of all 2^N cell corners of every point in ws
// to out, a zeroed row-major (npts, tsize) block.
//
// Corners form the outer loop so that each pass over the batch does the same
// work; the weight of a corner is computed once per point and applied to all
// trailing elements.
func (g *RegularGrid) blend(ws *workspace, out []float64) {
	n, npts, ts := g.n, ws.npts, g.tsize
	for c, off := range g.corners {
		for p := 0; p < npts; p++ {
			w := 1.0
			for d := 0; d < n; d++ {
				t := ws.dist[d*npts+p]
				if highEdge(c, d, n) {
					w *= t
				} else {
					w *= 1 - t
				}
			}

			start := ws.base[p] + off
			src := g.vals[start : start+ts]
			dst := out[p*ts : (p+1)*ts]
			for k, v := range src {
				dst[k] += v * w
			}
		}
	}
}

// applyFill overwrites every out-of-bounds result in out with the fill value.
func (g *RegularGrid) applyFill(ws *workspace, out []float64) {
	ts := g.tsize
	for p, bad := range ws.oob {
		if !bad {
			continue
		}
		dst := out[p*ts : (p+1)*ts]
		for k := range dst {
			dst[k] = g.fill
		}
	}
}
