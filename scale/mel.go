package scale

import "math"

// Mel is a mel-spaced scale: band centers are equidistant in mels over
// [fmin, fmax], so low bands are nearly linear in Hz and high bands
// nearly logarithmic. Q factors follow the local slope of the mel map.
// Known to the registry as "mel".
type Mel struct {
	mmin  float64
	mbnd  float64
	bands int
}

// NewMel creates a mel scale with the given number of bands.
func NewMel(fmin, fmax float64, bands int) (*Mel, error) {
	if err := validateRange(fmin, fmax); err != nil {
		return nil, err
	}
	if bands < 2 {
		return nil, errTooFewBands(bands, 2)
	}

	mmin := hzToMel(fmin)
	mmax := hzToMel(fmax)

	return &Mel{
		mmin:  mmin,
		mbnd:  (mmax - mmin) / float64(bands-1),
		bands: bands,
	}, nil
}

// Len returns the number of bands.
func (s *Mel) Len() int { return s.bands }

// F returns the center frequency in Hz at a continuous band index.
func (s *Mel) F(bnd float64) float64 { return melToHz(s.mmin + bnd*s.mbnd) }

// Q returns the Q factor at a continuous band index, estimated from the
// local bandwidth of the mel grid.
func (s *Mel) Q(bnd float64) float64 { return numericQ(s.F, bnd) }

// Values returns the per-band center frequencies and Q factors.
func (s *Mel) Values() (freqs, qs []float64) { return values(s.bands, s.F, s.Q) }

func hzToMel(f float64) float64 {
	return 2595 * math.Log10(f/700+1)
}

func melToHz(m float64) float64 {
	return (math.Pow(10, m/2595) - 1) * 700
}
