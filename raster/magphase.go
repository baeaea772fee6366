package raster

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// MagPhase decomposes one complex row into its magnitude and phase
// planes. All three slices must share one length.
func MagPhase(mag, phase []float64, src []complex128) error {
	if len(mag) != len(src) || len(phase) != len(src) {
		return fmt.Errorf("raster: plane lengths %d/%d do not match row length %d", len(mag), len(phase), len(src))
	}

	re := make([]float64, len(src))
	im := make([]float64, len(src))
	for i, v := range src {
		re[i] = real(v)
		im[i] = imag(v)
	}

	vecmath.Magnitude(mag, re, im)
	for i := range phase {
		phase[i] = math.Atan2(im[i], re[i])
	}
	return nil
}

// Complex recomposes one complex row from its magnitude and phase
// planes. All three slices must share one length.
func Complex(dst []complex128, mag, phase []float64) error {
	if len(mag) != len(dst) || len(phase) != len(dst) {
		return fmt.Errorf("raster: plane lengths %d/%d do not match row length %d", len(mag), len(phase), len(dst))
	}

	for i := range dst {
		s, c := math.Sincos(phase[i])
		dst[i] = complex(mag[i]*c, mag[i]*s)
	}
	return nil
}
