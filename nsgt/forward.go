package nsgt

import (
	"math/cmplx"
	"sync"
)

// Forward transforms one real signal of length SignalLength into a
// coefficient bundle holding one signal. The transform must analyze real
// signals (the default); use ForwardComplex on WithComplex transforms.
func (t *Transform) Forward(signal []float64) (*Coefficients, error) {
	if !t.real {
		return nil, errWantComplex()
	}
	if len(signal) != t.ls {
		return nil, errSignalLength(len(signal), t.ls)
	}

	c := t.newBundle(1)
	t.forwardReal(c, 0, signal)
	return c, nil
}

// ForwardBatch transforms a batch of real signals, one bundle signal per
// input. Batches larger than one require the multichannel flag. Signals
// are processed concurrently.
func (t *Transform) ForwardBatch(signals [][]float64) (*Coefficients, error) {
	if !t.real {
		return nil, errWantComplex()
	}
	if len(signals) == 0 {
		return nil, errEmptyBatch()
	}
	if len(signals) > 1 && !t.multichannel {
		return nil, errBatchSize(len(signals))
	}
	for _, s := range signals {
		if len(s) != t.ls {
			return nil, errSignalLength(len(s), t.ls)
		}
	}

	c := t.newBundle(len(signals))
	var wg sync.WaitGroup
	for s := range signals {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			t.forwardReal(c, s, signals[s])
		}(s)
	}
	wg.Wait()
	return c, nil
}

// ForwardComplex transforms one complex signal. The transform must have
// been built with WithComplex.
func (t *Transform) ForwardComplex(signal []complex128) (*Coefficients, error) {
	if t.real {
		return nil, errWantReal()
	}
	if len(signal) != t.ls {
		return nil, errSignalLength(len(signal), t.ls)
	}

	c := t.newBundle(1)
	t.forwardComplex(c, 0, signal)
	return c, nil
}

// ForwardComplexBatch transforms a batch of complex signals. Batches
// larger than one require the multichannel flag.
func (t *Transform) ForwardComplexBatch(signals [][]complex128) (*Coefficients, error) {
	if t.real {
		return nil, errWantReal()
	}
	if len(signals) == 0 {
		return nil, errEmptyBatch()
	}
	if len(signals) > 1 && !t.multichannel {
		return nil, errBatchSize(len(signals))
	}
	for _, s := range signals {
		if len(s) != t.ls {
			return nil, errSignalLength(len(s), t.ls)
		}
	}

	c := t.newBundle(len(signals))
	var wg sync.WaitGroup
	for s := range signals {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			t.forwardComplex(c, s, signals[s])
		}(s)
	}
	wg.Wait()
	return c, nil
}

// forwardReal analyzes one real signal into bundle signal slot s.
// The signal spectrum is taken over the half-spectrum plan and expanded
// to the full circular axis, since band supports wrap into negative bins.
func (t *Transform) forwardReal(c *Coefficients, s int, signal []float64) {
	padded := make([]float64, t.nn)
	copy(padded, signal)

	half := make([]complex128, t.realPlan.HalfLen())
	// Length-checked buffers; the plan cannot fail here.
	_ = t.realPlan.Forward(half, padded)

	ft := make([]complex128, t.nn)
	copy(ft, half)
	for i := 1; i < t.nn-t.nn/2; i++ {
		ft[t.nn-i] = cmplx.Conj(half[i])
	}

	t.analyze(c, s, ft)
}

// forwardComplex analyzes one complex signal into bundle signal slot s.
func (t *Transform) forwardComplex(c *Coefficients, s int, signal []complex128) {
	ft := make([]complex128, t.nn)
	copy(ft, signal)
	_ = t.sigPlan.Forward(ft, ft)

	t.analyze(c, s, ft)
}

// analyze windows the full spectrum ft band by band and fills the
// bundle's rows for signal s. Per band: gather the spectrum under the
// band's span, multiply by the analysis window, lay the result out in
// FFT order in a length-M buffer (cropping symmetrically around the
// center when M is smaller than the window) and inverse-transform to the
// band's coefficient sequence.
func (t *Transform) analyze(c *Coefficients, s int, ft []complex128) {
	var buf []complex128
	for i := 0; i < t.hi-t.lo; i++ {
		k := t.lo + i
		g := t.g[k]
		lg := len(g)
		mk := t.m[k]
		win := t.wins[k]

		if cap(buf) < mk {
			buf = make([]complex128, mk)
		}
		tmp := buf[:mk]
		for j := range tmp {
			tmp[j] = 0
		}

		ext := lg
		if mk < ext {
			ext = mk
		}
		l, r := ext/2, (ext+1)/2
		for d := -l; d < r; d++ {
			tmp[imod(d, mk)] = ft[win.at(d)] * complex(g[imod(d, lg)], 0)
		}

		_ = t.bandPlan[mk].Inverse(c.bands[i][s], tmp)
	}
}
