package scale

import "math"

// A Scale describes the frequency grid of an analysis filterbank.
// Implementations must be immutable after construction.
type Scale interface {
	// Len returns the number of bands.
	Len() int
	// Values returns the center frequency in Hz and the Q factor of
	// every band, both of length Len(). The returned slices are fresh
	// copies owned by the caller.
	Values() (freqs, qs []float64)
}

// dbnd is the band-index step used for numerical Q differentiation.
const dbnd = 1e-8

// numericQ estimates the Q factor at a continuous band index by central
// differencing the frequency map: Q = F / (dF/dbnd * 2).
func numericQ(f func(float64) float64, bnd float64) float64 {
	return f(bnd) * dbnd / (f(bnd+dbnd) - f(bnd-dbnd))
}

// SuggestedLength returns the smallest signal length in samples that
// resolves every band of the scale at the given sample rate, rounded up
// to a multiple of 4. Shorter signals force the transform to clip the
// narrowest windows, degrading reconstruction accuracy.
func SuggestedLength(s Scale, sampleRate float64) int {
	freqs, qs := s.Values()
	need := 0.0
	for i := range freqs {
		if n := qs[i] * 8 * sampleRate / freqs[i]; n > need {
			need = n
		}
	}
	ls := int(math.Ceil(need))
	if r := ls % 4; r != 0 {
		ls += 4 - r
	}
	return ls
}

func validateRange(fmin, fmax float64) error {
	if fmin <= 0 || math.IsNaN(fmin) || math.IsInf(fmin, 0) {
		return errInvalidFMin(fmin)
	}
	if fmax <= fmin || math.IsNaN(fmax) || math.IsInf(fmax, 0) {
		return errInvalidFMax(fmax, fmin)
	}
	return nil
}

// values samples a continuous frequency/Q pair over n integer band indices.
func values(n int, f, q func(float64) float64) (freqs, qs []float64) {
	freqs = make([]float64, n)
	qs = make([]float64, n)
	for k := range freqs {
		freqs[k] = f(float64(k))
		qs[k] = q(float64(k))
	}
	return freqs, qs
}
