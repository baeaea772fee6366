package scale

import "math"

// Bark is a bark-spaced scale: band centers are equidistant on the bark
// critical-band axis over [fmin, fmax], using the arcsinh form of the
// Hz/bark map. Known to the registry as "bark".
type Bark struct {
	bmin  float64
	bbnd  float64
	bands int
}

// NewBark creates a bark scale with the given number of bands.
func NewBark(fmin, fmax float64, bands int) (*Bark, error) {
	if err := validateRange(fmin, fmax); err != nil {
		return nil, err
	}
	if bands < 2 {
		return nil, errTooFewBands(bands, 2)
	}

	bmin := hzToBark(fmin)
	bmax := hzToBark(fmax)

	return &Bark{
		bmin:  bmin,
		bbnd:  (bmax - bmin) / float64(bands-1),
		bands: bands,
	}, nil
}

// Len returns the number of bands.
func (s *Bark) Len() int { return s.bands }

// F returns the center frequency in Hz at a continuous band index.
func (s *Bark) F(bnd float64) float64 { return barkToHz(s.bmin + bnd*s.bbnd) }

// Q returns the Q factor at a continuous band index, estimated from the
// local bandwidth of the bark grid.
func (s *Bark) Q(bnd float64) float64 { return numericQ(s.F, bnd) }

// Values returns the per-band center frequencies and Q factors.
func (s *Bark) Values() (freqs, qs []float64) { return values(s.bands, s.F, s.Q) }

func hzToBark(f float64) float64 {
	return 6 * math.Asinh(f/600)
}

func barkToHz(b float64) float64 {
	return 600 * math.Sinh(b/6)
}
