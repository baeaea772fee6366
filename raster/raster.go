package raster

import (
	"fmt"

	"github.com/cwbudde/algo-nsgt/nsgt"
)

// Mode selects the time-axis resampling kernel.
type Mode int

const (
	// ModeNearest maps each target frame to the source frame at the
	// same relative position, rounded down.
	ModeNearest Mode = iota
	// ModeLinear interpolates linearly between the two nearest source
	// frames, half-sample aligned with clamped ends.
	ModeLinear
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNearest:
		return "nearest"
	case ModeLinear:
		return "linear"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Shape records one band's original layout before interpolation.
type Shape struct {
	Signals int
	Frames  int
}

// Grid holds coefficients resampled onto a common frame count:
// magnitude and phase planes laid out [band][signal][frame], plus the
// per-band shapes needed to undo the resampling. The planes are live;
// downstream processing may mutate them before Deinterpolate.
type Grid struct {
	mode   Mode
	form   nsgt.Form
	frames int
	mag    [][][]float64
	phase  [][][]float64
	shapes []Shape
}

// Interpolate resamples every band of the bundle onto the given frame
// count. Each band is decomposed into magnitude and phase and both
// planes are resampled independently along the time axis; the band's
// original shape is recorded for Deinterpolate.
func Interpolate(c *nsgt.Coefficients, frames int, mode Mode) (*Grid, error) {
	if c == nil {
		return nil, fmt.Errorf("raster: nil coefficient bundle")
	}
	if frames < 1 {
		return nil, fmt.Errorf("raster: frame count must be >= 1: %d", frames)
	}
	if mode != ModeNearest && mode != ModeLinear {
		return nil, fmt.Errorf("raster: unknown resampling mode %d", int(mode))
	}

	bands := c.Bands()
	g := &Grid{
		mode:   mode,
		form:   c.Form(),
		frames: frames,
		mag:    make([][][]float64, bands),
		phase:  make([][][]float64, bands),
		shapes: make([]Shape, bands),
	}

	var mag, phase []float64
	for k := 0; k < bands; k++ {
		rows := c.Band(k)
		n := c.BandLen(k)
		if n == 0 {
			return nil, fmt.Errorf("raster: band %d is empty", k)
		}
		g.shapes[k] = Shape{Signals: len(rows), Frames: n}

		if cap(mag) < n {
			mag = make([]float64, n)
			phase = make([]float64, n)
		}

		g.mag[k] = make([][]float64, len(rows))
		g.phase[k] = make([][]float64, len(rows))
		for s, row := range rows {
			if err := MagPhase(mag[:n], phase[:n], row); err != nil {
				return nil, err
			}
			g.mag[k][s] = make([]float64, frames)
			g.phase[k][s] = make([]float64, frames)
			resample(g.mag[k][s], mag[:n], mode)
			resample(g.phase[k][s], phase[:n], mode)
		}
	}
	return g, nil
}

// Deinterpolate resamples every band back to its recorded shape and
// recomposes complex coefficients. Values are approximate (resampling
// is lossy both ways); the shapes are exact.
func (g *Grid) Deinterpolate() (*nsgt.Coefficients, error) {
	bands := make([][][]complex128, len(g.shapes))

	var mag, phase []float64
	for k, shape := range g.shapes {
		rows := make([][]complex128, shape.Signals)
		if cap(mag) < shape.Frames {
			mag = make([]float64, shape.Frames)
			phase = make([]float64, shape.Frames)
		}
		for s := range rows {
			resample(mag[:shape.Frames], g.mag[k][s], g.mode)
			resample(phase[:shape.Frames], g.phase[k][s], g.mode)
			rows[s] = make([]complex128, shape.Frames)
			if err := Complex(rows[s], mag[:shape.Frames], phase[:shape.Frames]); err != nil {
				return nil, err
			}
		}
		bands[k] = rows
	}

	return nsgt.NewCoefficients(g.form, bands)
}

// Frames returns the common frame count of the grid.
func (g *Grid) Frames() int { return g.frames }

// Bands returns the band count.
func (g *Grid) Bands() int { return len(g.shapes) }

// Mode returns the resampling mode.
func (g *Grid) Mode() Mode { return g.mode }

// Form returns the form of the source bundle, restored on
// deinterpolation.
func (g *Grid) Form() nsgt.Form { return g.form }

// Shapes returns a copy of the recorded per-band shapes.
func (g *Grid) Shapes() []Shape {
	return append([]Shape(nil), g.shapes...)
}

// Mag returns band k's magnitude plane, one row per signal. The rows
// are live views into the grid.
func (g *Grid) Mag(k int) [][]float64 { return g.mag[k] }

// Phase returns band k's phase plane, one row per signal. The rows are
// live views into the grid.
func (g *Grid) Phase(k int) [][]float64 { return g.phase[k] }

// resample maps src onto dst along the time axis. Equal lengths copy
// verbatim, so a round trip at the native frame count is exact.
func resample(dst, src []float64, mode Mode) {
	if len(dst) == len(src) {
		copy(dst, src)
		return
	}

	switch mode {
	case ModeNearest:
		for i := range dst {
			dst[i] = src[i*len(src)/len(dst)]
		}
	case ModeLinear:
		ratio := float64(len(src)) / float64(len(dst))
		last := float64(len(src) - 1)
		for i := range dst {
			pos := (float64(i)+0.5)*ratio - 0.5
			switch {
			case pos <= 0:
				dst[i] = src[0]
			case pos >= last:
				dst[i] = src[len(src)-1]
			default:
				j := int(pos)
				f := pos - float64(j)
				dst[i] = src[j]*(1-f) + src[j+1]*f
			}
		}
	}
}
