package nsgt

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// dualWindows computes the synthesis windows for the painless frame
// inverse. The frame operator diagonal is accumulated circularly over
// the padded axis: at every position under band k's support it gains
// m[k] * g[k]^2. Each dual window is the analysis window divided
// pointwise by the diagonal at its own support positions.
//
// A zero diagonal under any window's support means the windows leave a
// gap on the axis; the division is undefined and dualWindows fails with
// ErrIncompleteFrame rather than emit Inf or NaN.
func dualWindows(g [][]float64, wins []span, nn int, m []int) ([][]float64, error) {
	diag := make([]float64, nn)
	maxLen := 0
	for k := range g {
		if len(g[k]) > maxLen {
			maxLen = len(g[k])
		}
	}
	sq := make([]float64, maxLen)

	for k := range g {
		lg := len(g[k])
		vecmath.MulBlock(sq[:lg], g[k], g[k])
		weight := float64(m[k])
		l, r := wins[k].halves()
		for d := -l; d < r; d++ {
			diag[wins[k].at(d)] += weight * sq[imod(d, lg)]
		}
	}

	gd := make([][]float64, len(g))
	for k := range g {
		lg := len(g[k])
		out := make([]float64, lg)
		l, r := wins[k].halves()
		for d := -l; d < r; d++ {
			v := diag[wins[k].at(d)]
			if v == 0 {
				return nil, fmt.Errorf("%w: frame diagonal is zero at bin %d under band %d", ErrIncompleteFrame, wins[k].at(d), k)
			}
			j := imod(d, lg)
			out[j] = g[k][j] / v
		}
		gd[k] = out
	}
	return gd, nil
}
