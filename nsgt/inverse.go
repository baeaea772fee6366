package nsgt

import (
	"fmt"
	"math/cmplx"
	"sync"
)

// Inverse reconstructs one real signal of length SignalLength from a
// bundle holding exactly one signal. The bundle must come from this
// transform's Forward (or share its configuration).
func (t *Transform) Inverse(c *Coefficients) ([]float64, error) {
	if !t.real {
		return nil, errWantComplex()
	}
	if err := t.checkBundle(c); err != nil {
		return nil, err
	}
	if c.Signals() != 1 {
		return nil, fmt.Errorf("%w: bundle holds %d signals, Inverse takes one (use InverseBatch)", ErrShapeMismatch, c.Signals())
	}

	return t.inverseReal(c, 0), nil
}

// InverseBatch reconstructs every signal in the bundle. Bundles holding
// more than one signal require the multichannel flag. Signals are
// processed concurrently, each into its own accumulation buffer.
func (t *Transform) InverseBatch(c *Coefficients) ([][]float64, error) {
	if !t.real {
		return nil, errWantComplex()
	}
	if err := t.checkBundle(c); err != nil {
		return nil, err
	}
	if c.Signals() > 1 && !t.multichannel {
		return nil, errBatchSize(c.Signals())
	}

	out := make([][]float64, c.Signals())
	var wg sync.WaitGroup
	for s := range out {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			out[s] = t.inverseReal(c, s)
		}(s)
	}
	wg.Wait()
	return out, nil
}

// InverseComplex reconstructs one complex signal from a bundle holding
// exactly one signal. The transform must have been built with
// WithComplex.
func (t *Transform) InverseComplex(c *Coefficients) ([]complex128, error) {
	if t.real {
		return nil, errWantReal()
	}
	if err := t.checkBundle(c); err != nil {
		return nil, err
	}
	if c.Signals() != 1 {
		return nil, fmt.Errorf("%w: bundle holds %d signals, InverseComplex takes one (use InverseComplexBatch)", ErrShapeMismatch, c.Signals())
	}

	return t.inverseComplex(c, 0), nil
}

// InverseComplexBatch reconstructs every complex signal in the bundle.
// Bundles holding more than one signal require the multichannel flag.
func (t *Transform) InverseComplexBatch(c *Coefficients) ([][]complex128, error) {
	if t.real {
		return nil, errWantReal()
	}
	if err := t.checkBundle(c); err != nil {
		return nil, err
	}
	if c.Signals() > 1 && !t.multichannel {
		return nil, errBatchSize(c.Signals())
	}

	out := make([][]complex128, c.Signals())
	var wg sync.WaitGroup
	for s := range out {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			out[s] = t.inverseComplex(c, s)
		}(s)
	}
	wg.Wait()
	return out, nil
}

// checkBundle validates a coefficient bundle against the transform
// configuration: matching form, band count and per-band lengths.
func (t *Transform) checkBundle(c *Coefficients) error {
	if c == nil {
		return fmt.Errorf("%w: nil coefficient bundle", ErrShapeMismatch)
	}
	wantForm := FormRagged
	if t.matrixform {
		wantForm = FormMatrix
	}
	if c.form != wantForm {
		return fmt.Errorf("%w: bundle form %s, transform uses %s", ErrShapeMismatch, c.form, wantForm)
	}
	if c.Bands() != t.hi-t.lo {
		return fmt.Errorf("%w: bundle holds %d bands, transform has %d active", ErrShapeMismatch, c.Bands(), t.hi-t.lo)
	}
	if c.Signals() == 0 {
		return fmt.Errorf("%w: bundle holds no signals", ErrShapeMismatch)
	}
	for i := 0; i < c.Bands(); i++ {
		if got, want := c.BandLen(i), t.m[t.lo+i]; got != want {
			return fmt.Errorf("%w: band %d length %d, want %d", ErrShapeMismatch, i, got, want)
		}
	}
	return nil
}

// inverseReal synthesizes bundle signal slot s into a real signal. The
// accumulated spectrum is Hermitian by construction (each band plus its
// mirrored counterpart), so only the non-negative half feeds the
// half-spectrum inverse.
func (t *Transform) inverseReal(c *Coefficients, s int) []float64 {
	fr := t.synthesize(c, s)

	padded := make([]float64, t.nn)
	_ = t.realPlan.Inverse(padded, fr[:t.realPlan.HalfLen()])

	return padded[:t.ls]
}

// inverseComplex synthesizes bundle signal slot s into a complex signal.
func (t *Transform) inverseComplex(c *Coefficients, s int) []complex128 {
	fr := t.synthesize(c, s)
	_ = t.sigPlan.Inverse(fr, fr)

	out := make([]complex128, t.ls)
	copy(out, fr)
	return out
}

// synthesize accumulates all active bands of signal slot s into a fresh
// spectrum buffer of length nn. Per band: forward-transform the
// coefficient sequence (recovering the windowed spectrum), multiply by
// the dual window and the band's length weight, scatter-add under the
// band's span. Real transforms additionally accumulate each band's
// Hermitian mirror so the negative-frequency half of the frame is
// restored from the non-negative coefficients.
func (t *Transform) synthesize(c *Coefficients, s int) []complex128 {
	fr := make([]complex128, t.nn)
	total := len(t.g)

	var buf []complex128
	for i := 0; i < t.hi-t.lo; i++ {
		k := t.lo + i
		mk := t.m[k]

		if cap(buf) < mk {
			buf = make([]complex128, mk)
		}
		fc := buf[:mk]
		_ = t.bandPlan[mk].Forward(fc, c.bands[i][s])

		t.accumulate(fr, fc, k, false)
		if t.real {
			if km := total - k; k != 0 && km != k {
				t.accumulate(fr, fc, km, true)
			}
		}
	}
	return fr
}

// accumulate scatter-adds one band's contribution into fr. With mirror
// set, fc is read time-reversed and conjugated: the Hermitian
// counterpart of the source band's windowed spectrum, laid under the
// mirror band's own span and dual window.
func (t *Transform) accumulate(fr, fc []complex128, k int, mirror bool) {
	gd := t.gd[k]
	lg := len(gd)
	mk := len(fc)
	win := t.wins[k]
	weight := complex(float64(t.m[k]), 0)

	ext := lg
	if mk < ext {
		ext = mk
	}
	l, r := ext/2, (ext+1)/2
	for d := -l; d < r; d++ {
		v := fc[imod(d, mk)]
		if mirror {
			v = cmplx.Conj(fc[imod(-d, mk)])
		}
		fr[win.at(d)] += v * complex(gd[imod(d, lg)], 0) * weight
	}
}
