// Package nsgt implements the Non-Stationary Gabor Transform: a
// perfect-reconstruction time-frequency transform whose time resolution
// varies per frequency band, generalizing the Constant-Q Transform.
//
// A Transform is built once from a frequency scale (center frequencies
// and Q factors), a sample rate and a signal length. Construction derives
// a set of immutable arrays:
//
//   - one frequency-domain Hann window per band, sized by the band's
//     bandwidth and placed at its center bin
//   - a coefficient length M[k] per band (the band's time resolution)
//   - dual (synthesis) windows obtained by dividing each window by the
//     frame operator diagonal, the circular overlap-sum of all squared
//     windows weighted by M
//
// Forward windows the signal spectrum band by band and inverse-transforms
// each slice to a compact coefficient sequence; Inverse reverses the
// process through the dual windows and reconstructs the signal within
// floating-point tolerance, provided the frame diagonal stays positive
// (the "painless" condition). Windows that leave a gap on the frequency
// axis surface as ErrIncompleteFrame at construction.
//
// Coefficients are returned as a bundle in one of two forms: ragged (each
// band keeps its own length M[k]) or matrix (every band forced to one
// common length, see WithMatrixForm). Real-signal transforms process only
// the non-negative-frequency bands and restore Hermitian symmetry on
// inversion; WithComplex switches to full complex analysis.
package nsgt
