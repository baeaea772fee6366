package nsgt

import (
	"fmt"

	"github.com/cwbudde/algo-nsgt/internal/fft"
)

// A Scale yields the frequency grid of the analysis filterbank: one
// center frequency and one Q factor per band. The scale package provides
// implementations; any type with the same behavior works.
type Scale interface {
	// Len returns the number of bands.
	Len() int
	// Values returns the center frequency in Hz and the Q factor of
	// every band, both of length Len().
	Values() (freqs, qs []float64)
}

const defaultMinWindow = 4

type config struct {
	real         bool
	matrixform   bool
	reducedform  int
	multichannel bool
	minWin       int
}

func defaultConfig() config {
	return config{real: true, minWin: defaultMinWindow}
}

// Option configures a Transform.
type Option func(*config)

// WithComplex switches to full complex analysis: the input is a complex
// signal, all bands (negative frequencies included) produce coefficients
// and the inverse returns a complex signal. The default analyzes real
// signals over the non-negative-frequency bands only.
func WithComplex() Option {
	return func(c *config) { c.real = false }
}

// WithMatrixForm forces every band to one common coefficient length (the
// maximum across the active bands), so the forward output forms a single
// uniform matrix per signal instead of a ragged list.
func WithMatrixForm() Option {
	return func(c *config) { c.matrixform = true }
}

// WithReducedForm trims n boundary bands from each end of the
// non-negative-frequency band slice in real-signal mode. n must be 0, 1
// or 2: 1 drops the DC and Nyquist bands, 2 additionally drops their
// neighbours. Complex-analysis transforms ignore the setting.
func WithReducedForm(n int) Option {
	return func(c *config) { c.reducedform = n }
}

// WithMultichannel allows the batch calls (ForwardBatch, InverseBatch
// and the complex variants) to carry more than one signal per call.
func WithMultichannel() Option {
	return func(c *config) { c.multichannel = true }
}

// WithMinWindow sets the minimum window length in bins; derived window
// lengths below it are raised to it. Defaults to 4.
func WithMinWindow(n int) Option {
	return func(c *config) { c.minWin = n }
}

// Transform is a non-stationary Gabor transform over one fixed
// configuration: a scale, a sample rate and a signal length. All derived
// state (windows, placements, dual windows, FFT plans) is computed once
// by New and immutable afterwards, so a Transform is safe for concurrent
// use by multiple goroutines.
type Transform struct {
	fs float64
	ls int

	real         bool
	matrixform   bool
	reducedform  int
	multichannel bool

	freqs     []float64 // surviving scale frequencies
	qs        []float64
	centersHz []float64 // per built band
	narrow    []float64

	g    [][]float64 // analysis windows, peak at storage index 0
	gd   [][]float64 // dual windows, same layout
	m    []int       // effective coefficient length per band
	wins []span
	nn   int

	lo, hi int // active band slice [lo, hi)
	ncoefs int

	sigPlan  *fft.Plan         // complex signals, length nn
	realPlan *fft.RealPlan     // real signals, length nn
	bandPlan map[int]*fft.Plan // per distinct coefficient length
}

// New builds a transform for signals of the given length in samples at
// the given sample rate, with band windows derived from the scale.
//
// Construction validates the configuration, derives the analysis and
// dual windows and caches the FFT plans; it fails with
// ErrIncompleteFrame if the windows leave a gap on the frequency axis.
func New(scl Scale, sampleRate float64, signalLength int, opts ...Option) (*Transform, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if scl == nil {
		return nil, fmt.Errorf("nsgt: scale must not be nil")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("nsgt: sample rate must be > 0: %g", sampleRate)
	}
	if signalLength <= 0 {
		return nil, fmt.Errorf("nsgt: signal length must be > 0: %d", signalLength)
	}
	if cfg.reducedform < 0 || cfg.reducedform > 2 {
		return nil, fmt.Errorf("nsgt: reducedform must be 0, 1 or 2: %d", cfg.reducedform)
	}
	if cfg.minWin < 1 {
		return nil, fmt.Errorf("nsgt: minimum window length must be >= 1: %d", cfg.minWin)
	}

	freqs, qs := scl.Values()
	if len(freqs) == 0 || len(freqs) != len(qs) {
		return nil, fmt.Errorf("nsgt: scale yields %d frequencies and %d Q factors", len(freqs), len(qs))
	}

	ws, err := buildWindows(freqs, qs, sampleRate, signalLength, cfg.minWin)
	if err != nil {
		return nil, err
	}

	t := &Transform{
		fs:           sampleRate,
		ls:           signalLength,
		real:         cfg.real,
		matrixform:   cfg.matrixform,
		reducedform:  cfg.reducedform,
		multichannel: cfg.multichannel,
		freqs:        ws.freqs,
		qs:           ws.qs,
		centersHz:    ws.centersHz,
		narrow:       ws.narrow,
		g:            ws.g,
		m:            ws.m,
	}

	total := len(ws.g)
	if t.real {
		t.lo = cfg.reducedform
		t.hi = total/2 + 1 - cfg.reducedform
	} else {
		t.lo = 0
		t.hi = total
	}
	if t.hi <= t.lo {
		return nil, fmt.Errorf("nsgt: reducedform %d leaves no active bands of %d", cfg.reducedform, total)
	}

	// Per-band coefficient count over the active slice, before any
	// matrix-form override: max over ceil(len(g)/M)*M.
	for k := t.lo; k < t.hi; k++ {
		lg := len(t.g[k])
		mk := t.m[k]
		if n := ((lg + mk - 1) / mk) * mk; n > t.ncoefs {
			t.ncoefs = n
		}
	}

	if t.matrixform {
		common := 0
		for k := t.lo; k < t.hi; k++ {
			if t.m[k] > common {
				common = t.m[k]
			}
		}
		for k := range t.m {
			t.m[k] = common
		}
	}

	t.wins, t.nn, err = placements(t.g, ws.rfbas, signalLength)
	if err != nil {
		return nil, err
	}

	t.gd, err = dualWindows(t.g, t.wins, t.nn, t.m)
	if err != nil {
		return nil, err
	}

	if t.real {
		t.realPlan, err = fft.NewRealPlan(t.nn)
	} else {
		t.sigPlan, err = fft.NewPlan(t.nn)
	}
	if err != nil {
		return nil, fmt.Errorf("nsgt: failed to create signal FFT plan: %w", err)
	}

	t.bandPlan = make(map[int]*fft.Plan)
	for k := t.lo; k < t.hi; k++ {
		mk := t.m[k]
		if _, ok := t.bandPlan[mk]; ok {
			continue
		}
		plan, err := fft.NewPlan(mk)
		if err != nil {
			return nil, fmt.Errorf("nsgt: failed to create band FFT plan: %w", err)
		}
		t.bandPlan[mk] = plan
	}

	return t, nil
}

// SampleRate returns the sample rate in Hz.
func (t *Transform) SampleRate() float64 { return t.fs }

// SignalLength returns the signal length in samples the transform was
// built for.
func (t *Transform) SignalLength() int { return t.ls }

// PaddedLength returns the padded frequency-axis length nn.
func (t *Transform) PaddedLength() int { return t.nn }

// Real reports whether the transform analyzes real signals.
func (t *Transform) Real() bool { return t.real }

// MatrixForm reports whether forward output uses FormMatrix.
func (t *Transform) MatrixForm() bool { return t.matrixform }

// ReducedForm returns the number of boundary bands trimmed from each end
// of the real-signal band slice.
func (t *Transform) ReducedForm() int { return t.reducedform }

// Multichannel reports whether batch calls accept multiple signals.
func (t *Transform) Multichannel() bool { return t.multichannel }

// Bands returns the total number of built bands, mirrored
// negative-frequency bands included.
func (t *Transform) Bands() int { return len(t.g) }

// FBinsActual returns the number of active bands: the bands the forward
// transform produces coefficients for.
func (t *Transform) FBinsActual() int { return t.hi - t.lo }

// ActiveRange returns the active band slice [lo, hi) within Bands().
func (t *Transform) ActiveRange() (lo, hi int) { return t.lo, t.hi }

// Ncoefs returns the largest coefficient count any active band produces.
// In matrix form every band produces exactly Ncoefs coefficients.
func (t *Transform) Ncoefs() int { return t.ncoefs }

// CoefFactor returns Ncoefs divided by the signal length: the per-band
// coefficient rate of the transform.
func (t *Transform) CoefFactor() float64 { return float64(t.ncoefs) / float64(t.ls) }

// Frequencies returns the center frequency in Hz of every built band.
func (t *Transform) Frequencies() []float64 {
	return append([]float64(nil), t.centersHz...)
}

// WindowLengths returns the effective coefficient length M of every
// built band.
func (t *Transform) WindowLengths() []int {
	return append([]int(nil), t.m...)
}

// NarrowBands returns the scale frequencies in Hz whose Q factor exceeds
// what the signal length can resolve. Their windows are clipped to the
// minimum length, which degrades reconstruction accuracy; a longer
// signal removes the clipping (see scale.SuggestedLength).
func (t *Transform) NarrowBands() []float64 {
	return append([]float64(nil), t.narrow...)
}
