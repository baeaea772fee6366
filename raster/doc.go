// Package raster resamples ragged transform coefficients onto a fixed
// time grid and back. Bands of a non-stationary Gabor transform carry
// unequal coefficient counts; consumers that want one dense array per
// signal need a common frame count across bands.
//
// Interpolate decomposes each band into magnitude and phase planes and
// resamples both onto a chosen frame count, recording every band's
// original shape. Deinterpolate resamples back to the recorded shapes
// and recomposes complex coefficients. The round trip is lossy in value
// (resampling) but exact in shape.
//
// Phase is interpolated linearly in angle, not vector-averaged, so
// interpolated magnitudes never collapse at angle wraparound; near the
// +-pi boundary the interpolated angle itself may jump.
package raster
