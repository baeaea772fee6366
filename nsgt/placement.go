package nsgt

import "fmt"

// span places one window's support on the circular frequency axis of
// length mod. The window peak (storage index 0) sits at center; offsets
// count away from it, negative toward lower bins, wrapping modulo mod.
// For a window of length n the support covers offsets [-n/2, (n+1)/2).
type span struct {
	center int
	length int
	mod    int
}

// at returns the axis position of the given offset from the center.
func (s span) at(offset int) int {
	return imod(s.center+offset, s.mod)
}

// halves returns the support extent below and at-or-above the center:
// offsets run over [-l, r) with l+r == length.
func (s span) halves() (l, r int) {
	return s.length / 2, (s.length + 1) / 2
}

// placements computes each band's span on the padded frequency axis and
// the padded axis length nn. Band centers are taken relative to the
// first band's reference bin; the axis wraps so the topmost band's
// support folds back toward bin zero.
func placements(g [][]float64, rfbas []int, ls int) ([]span, int, error) {
	if len(g) != len(rfbas) {
		return nil, 0, fmt.Errorf("nsgt: %d windows for %d reference bins", len(g), len(rfbas))
	}

	first := rfbas[0]
	last := rfbas[len(rfbas)-1]
	nn := imod(-last, ls) + last - first
	if nn < ls {
		return nil, 0, fmt.Errorf("nsgt: padded axis length %d shorter than signal length %d", nn, ls)
	}

	spans := make([]span, len(g))
	for k := range g {
		lg := len(g[k])
		if lg <= 0 || lg > nn {
			return nil, 0, fmt.Errorf("nsgt: band %d window length %d outside (0, %d]", k, lg, nn)
		}
		spans[k] = span{center: imod(rfbas[k]-first, nn), length: lg, mod: nn}
	}
	return spans, nn, nil
}

// imod is the non-negative remainder of a modulo m.
func imod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
