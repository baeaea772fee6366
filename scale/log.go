package scale

import (
	"fmt"
	"math"
)

// Octave is a constant-Q scale with a fixed number of bins per octave.
// Band k sits at fmin * 2^(k/binsPerOctave); the band count is chosen so
// the grid covers [fmin, fmax].
type Octave struct {
	fmin  float64
	bands int
	pow2n float64
	q     float64
}

// NewOctave creates an octave scale over [fmin, fmax] with the given
// number of bins per octave.
func NewOctave(fmin, fmax float64, binsPerOctave int) (*Octave, error) {
	if err := validateRange(fmin, fmax); err != nil {
		return nil, err
	}
	if binsPerOctave < 1 {
		return nil, fmt.Errorf("scale: bins per octave must be >= 1: %d", binsPerOctave)
	}

	// Log of the ratio, not the difference of logs: exact for power-of-two
	// ratios, so the ceil cannot round a whole octave count up.
	octaves := math.Log2(fmax / fmin)
	bands := int(math.Ceil(octaves*float64(binsPerOctave))) + 1
	pow2n := math.Pow(2, 1/float64(binsPerOctave))

	return &Octave{
		fmin:  fmin,
		bands: bands,
		pow2n: pow2n,
		q:     constQ(pow2n),
	}, nil
}

// Len returns the number of bands.
func (s *Octave) Len() int { return s.bands }

// F returns the center frequency in Hz at a continuous band index.
func (s *Octave) F(bnd float64) float64 { return s.fmin * math.Pow(s.pow2n, bnd) }

// Q returns the Q factor, constant across bands.
func (s *Octave) Q(bnd float64) float64 { return s.q }

// Values returns the per-band center frequencies and Q factors.
func (s *Octave) Values() (freqs, qs []float64) { return values(s.bands, s.F, s.Q) }

// Log is a constant-Q scale with an explicit total band count spread
// geometrically over [fmin, fmax]. Known to the registry as "cqlog".
type Log struct {
	fmin  float64
	bands int
	pow2n float64
	q     float64
}

// NewLog creates a logarithmic scale with the given number of bands.
func NewLog(fmin, fmax float64, bands int) (*Log, error) {
	if err := validateRange(fmin, fmax); err != nil {
		return nil, err
	}
	if bands < 2 {
		return nil, errTooFewBands(bands, 2)
	}

	odiv := math.Log2(fmax/fmin) / float64(bands-1)
	pow2n := math.Pow(2, odiv)

	return &Log{
		fmin:  fmin,
		bands: bands,
		pow2n: pow2n,
		q:     constQ(pow2n),
	}, nil
}

// Len returns the number of bands.
func (s *Log) Len() int { return s.bands }

// F returns the center frequency in Hz at a continuous band index.
func (s *Log) F(bnd float64) float64 { return s.fmin * math.Pow(s.pow2n, bnd) }

// Q returns the Q factor, constant across bands.
func (s *Log) Q(bnd float64) float64 { return s.q }

// Values returns the per-band center frequencies and Q factors.
func (s *Log) Values() (freqs, qs []float64) { return values(s.bands, s.F, s.Q) }

// VQLog is a variable-Q scale: band centers follow the Log grid, but each
// band's bandwidth gains a constant offset gamma in Hz, which lowers Q at
// low frequencies and counters the vanishing time resolution of a pure
// constant-Q grid there. Known to the registry as "vqlog".
type VQLog struct {
	log   Log
	gamma float64
}

// NewVQLog creates a variable-Q logarithmic scale. gamma is the bandwidth
// offset in Hz; zero reduces it to NewLog.
func NewVQLog(fmin, fmax float64, bands int, gamma float64) (*VQLog, error) {
	if gamma < 0 || math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return nil, fmt.Errorf("scale: gamma must be >= 0: %g", gamma)
	}
	log, err := NewLog(fmin, fmax, bands)
	if err != nil {
		return nil, err
	}
	return &VQLog{log: *log, gamma: gamma}, nil
}

// Len returns the number of bands.
func (s *VQLog) Len() int { return s.log.bands }

// F returns the center frequency in Hz at a continuous band index.
func (s *VQLog) F(bnd float64) float64 { return s.log.F(bnd) }

// Q returns the Q factor at a continuous band index. The underlying
// constant-Q bandwidth F/q is widened by gamma: Q = F / (F/q + gamma).
func (s *VQLog) Q(bnd float64) float64 {
	f := s.log.F(bnd)
	return f / (f/s.log.q + s.gamma)
}

// Gamma returns the bandwidth offset in Hz.
func (s *VQLog) Gamma() float64 { return s.gamma }

// Values returns the per-band center frequencies and Q factors.
func (s *VQLog) Values() (freqs, qs []float64) { return values(s.log.bands, s.F, s.Q) }

// constQ is the Q factor shared by all bands of a geometric grid with
// ratio pow2n between adjacent centers.
func constQ(pow2n float64) float64 {
	return math.Sqrt(pow2n) / (pow2n - 1) / 2
}
