package nsgt

import (
	"fmt"
	"math"
)

// windowSet holds the output of the window builder: one frequency-domain
// window per band on the doubled axis (DC band, the user bands, a filler
// band at Nyquist, then the mirrored negative-frequency bands), plus the
// per-band coefficient lengths and reference bins.
type windowSet struct {
	g         [][]float64 // windows, peak at storage index 0
	rfbas     []int       // reference bin per band
	m         []int       // coefficient length per band
	centersHz []float64   // band centers in Hz (after the top-band shift)
	freqs     []float64   // surviving scale frequencies
	qs        []float64   // their Q factors
	narrow    []float64   // frequencies whose Q exceeds what ls resolves
}

// buildWindows derives the per-band analysis windows for the given scale
// frequencies and Q factors at a sample rate and signal length ls.
//
// Bands at or below 0 Hz and at or beyond Nyquist are dropped. Each
// surviving band k gets a periodic Hann window whose length M[k] spans
// its neighbours' centers, so adjacent windows overlap and the band set
// covers the axis. The topmost user band is then recentered halfway
// between its lower neighbour and Nyquist; without this shift a scale
// ending well below Nyquist leaves a coverage gap that breaks the frame.
func buildWindows(freqs, qs []float64, sampleRate float64, ls, minWin int) (*windowSet, error) {
	if len(freqs) != len(qs) {
		return nil, fmt.Errorf("nsgt: %d frequencies for %d Q factors", len(freqs), len(qs))
	}

	nf := sampleRate / 2
	lo := 0
	for lo < len(freqs) && freqs[lo] <= 0 {
		lo++
	}
	hi := len(freqs)
	for hi > lo && freqs[hi-1] >= nf {
		hi--
	}
	f := freqs[lo:hi]
	q := qs[lo:hi]
	if len(f) == 0 {
		return nil, fmt.Errorf("nsgt: no bands between 0 Hz and Nyquist %g Hz", nf)
	}

	var narrow []float64
	for i := range f {
		if math.IsNaN(f[i]) || math.IsInf(f[i], 0) {
			return nil, fmt.Errorf("nsgt: band %d frequency is not finite: %g", i, f[i])
		}
		if i > 0 && f[i] <= f[i-1] {
			return nil, fmt.Errorf("nsgt: band frequencies must be strictly increasing: %g after %g", f[i], f[i-1])
		}
		if q[i] <= 0 || math.IsNaN(q[i]) || math.IsInf(q[i], 0) {
			return nil, fmt.Errorf("nsgt: band %d Q factor must be > 0: %g", i, q[i])
		}
		if q[i] >= f[i]*float64(ls)/(8*sampleRate) {
			narrow = append(narrow, f[i])
		}
	}

	// Frequency grid in bins on the doubled axis:
	// [0, f_1..f_b, nf, fs-f_b, ..., fs-f_1] * ls/fs.
	b := len(f)
	total := 2*b + 2
	fbas := make([]float64, total)
	for i, v := range f {
		fbas[1+i] = v
		fbas[total-1-i] = sampleRate - v
	}
	fbas[b+1] = nf
	binsPerHz := float64(ls) / sampleRate
	for i := range fbas {
		fbas[i] *= binsPerHz
	}

	m := make([]int, total)
	m[0] = round(2 * fbas[1])
	for k := 1; k <= 2*b; k++ {
		m[k] = round(fbas[k+1] - fbas[k-1])
	}
	m[total-1] = round(float64(ls) - fbas[total-2])

	g := make([][]float64, total)
	for k := range m {
		if m[k] <= 0 {
			return nil, fmt.Errorf("nsgt: band %d derives a non-positive window length %d (frequencies too dense for signal length %d)", k, m[k], ls)
		}
		if m[k] < minWin {
			m[k] = minWin
		}
		g[k] = hannWin(m[k])
	}

	// Recenter the top user band and its mirror.
	fbas[b] = (fbas[b-1] + fbas[b+1]) / 2
	fbas[b+2] = float64(ls) - fbas[b]

	rfbas := make([]int, total)
	centersHz := make([]float64, total)
	for i, v := range fbas {
		rfbas[i] = round(v)
		centersHz[i] = v / binsPerHz
	}

	return &windowSet{
		g:         g,
		rfbas:     rfbas,
		m:         m,
		centersHz: centersHz,
		freqs:     append([]float64(nil), f...),
		qs:        append([]float64(nil), q...),
		narrow:    narrow,
	}, nil
}

// hannWin returns a periodic Hann window of length n stored with its
// peak at index 0: w[j] = 0.5 + 0.5*cos(2*pi*j/n).
func hannWin(n int) []float64 {
	w := make([]float64, n)
	step := 2 * math.Pi / float64(n)
	for j := range w {
		w[j] = 0.5 + 0.5*math.Cos(step*float64(j))
	}
	return w
}

func round(x float64) int {
	return int(math.Round(x))
}
