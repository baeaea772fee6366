package nsgt

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-nsgt/internal/testutil"
)

// periodicSines sums unit sines at the given bins of a length-ls frame,
// scaled to peak 1. Integer bins keep the content exactly periodic, so
// no energy leaks into bands a reduced transform trims.
func periodicSines(ls int, bins ...int) []float64 {
	out := make([]float64, ls)
	peak := 0.0
	for _, b := range bins {
		for i := range out {
			out[i] += math.Sin(2*math.Pi*float64(b)*float64(i)/float64(ls) + float64(b))
		}
	}
	for _, v := range out {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	for i := range out {
		out[i] /= peak
	}
	return out
}

func requireRoundTrip(t *testing.T, tr *Transform, sig []float64, tol float64) []float64 {
	t.Helper()
	c, err := tr.Forward(sig)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	rec, err := tr.Inverse(c)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	testutil.RequireFinite(t, rec)
	relErr, err := testutil.RelativeError(rec, sig)
	if err != nil {
		t.Fatalf("RelativeError: %v", err)
	}
	if relErr > tol {
		t.Fatalf("round-trip relative error %.3e, want <= %.0e", relErr, tol)
	}
	return rec
}

func TestRoundTripRealRagged(t *testing.T) {
	tr, err := NewCQ(100, 3000, 6, 8000, 2000)
	if err != nil {
		t.Fatalf("NewCQ: %v", err)
	}

	sig := testutil.DeterministicNoise(1, 1.0, 2000)
	requireRoundTrip(t, tr, sig, 1e-10)
}

func TestRoundTripRealMatrix(t *testing.T) {
	tr, err := NewCQ(100, 3000, 6, 8000, 2000, WithMatrixForm())
	if err != nil {
		t.Fatalf("NewCQ: %v", err)
	}

	sig := testutil.DeterministicNoise(1, 1.0, 2000)
	c, err := tr.Forward(sig)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if c.Form() != FormMatrix {
		t.Fatalf("Form = %v, want matrix", c.Form())
	}
	for k := 0; k < c.Bands(); k++ {
		if c.BandLen(k) != tr.Ncoefs() {
			t.Fatalf("band %d length %d, want Ncoefs %d", k, c.BandLen(k), tr.Ncoefs())
		}
	}

	rec, err := tr.Inverse(c)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	relErr, err := testutil.RelativeError(rec, sig)
	if err != nil {
		t.Fatalf("RelativeError: %v", err)
	}
	if relErr > 1e-10 {
		t.Fatalf("round-trip relative error %.3e", relErr)
	}
}

func TestRaggedMatrixEquivalence(t *testing.T) {
	ragged, err := NewCQ(100, 3000, 6, 8000, 2000)
	if err != nil {
		t.Fatalf("NewCQ: %v", err)
	}
	matrix, err := NewCQ(100, 3000, 6, 8000, 2000, WithMatrixForm())
	if err != nil {
		t.Fatalf("NewCQ matrix: %v", err)
	}

	sig := testutil.DeterministicNoise(7, 1.0, 2000)
	r1 := requireRoundTrip(t, ragged, sig, 1e-10)
	r2 := requireRoundTrip(t, matrix, sig, 1e-10)

	relErr, err := testutil.RelativeError(r2, r1)
	if err != nil {
		t.Fatalf("RelativeError: %v", err)
	}
	if relErr > 1e-10 {
		t.Fatalf("ragged and matrix reconstructions differ by %.3e", relErr)
	}
}

func TestRoundTripComplex(t *testing.T) {
	tr, err := NewCQ(100, 3000, 6, 8000, 2000, WithComplex())
	if err != nil {
		t.Fatalf("NewCQ: %v", err)
	}

	sig := testutil.DeterministicComplexNoise(3, 1.0, 2000)
	c, err := tr.ForwardComplex(sig)
	if err != nil {
		t.Fatalf("ForwardComplex: %v", err)
	}
	if got, want := c.Bands(), tr.Bands(); got != want {
		t.Fatalf("complex forward yields %d bands, want all %d", got, want)
	}

	rec, err := tr.InverseComplex(c)
	if err != nil {
		t.Fatalf("InverseComplex: %v", err)
	}
	testutil.RequireFiniteComplex(t, rec)
	relErr, err := testutil.RelativeErrorComplex(rec, sig)
	if err != nil {
		t.Fatalf("RelativeErrorComplex: %v", err)
	}
	if relErr > 1e-10 {
		t.Fatalf("round-trip relative error %.3e", relErr)
	}
}

func TestRoundTripReducedForm(t *testing.T) {
	// Reduced transforms discard the DC and Nyquist bands, so the test
	// signal must not carry energy there: exactly periodic sines well
	// inside the band range reconstruct to machine precision.
	sig := periodicSines(2000, 50, 125, 250, 500)

	for rf := 0; rf <= 2; rf++ {
		tr, err := NewCQ(100, 3000, 6, 8000, 2000, WithReducedForm(rf))
		if err != nil {
			t.Fatalf("NewCQ(reducedform=%d): %v", rf, err)
		}
		requireRoundTrip(t, tr, sig, 1e-9)
	}
}

func TestRoundTripBatch(t *testing.T) {
	tr, err := NewCQ(100, 3000, 6, 8000, 2000, WithMultichannel())
	if err != nil {
		t.Fatalf("NewCQ: %v", err)
	}

	signals := [][]float64{
		testutil.DeterministicNoise(1, 1.0, 2000),
		testutil.DeterministicNoise(2, 0.5, 2000),
		testutil.DeterministicSine(440, 8000, 1.0, 2000),
	}
	c, err := tr.ForwardBatch(signals)
	if err != nil {
		t.Fatalf("ForwardBatch: %v", err)
	}
	if c.Signals() != 3 {
		t.Fatalf("Signals = %d, want 3", c.Signals())
	}

	recs, err := tr.InverseBatch(c)
	if err != nil {
		t.Fatalf("InverseBatch: %v", err)
	}
	for s := range recs {
		relErr, err := testutil.RelativeError(recs[s], signals[s])
		if err != nil {
			t.Fatalf("RelativeError: %v", err)
		}
		if relErr > 1e-10 {
			t.Fatalf("signal %d round-trip relative error %.3e", s, relErr)
		}
	}

	// Batch result matches the single-signal path exactly.
	single, err := tr.Forward(signals[0])
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	for k := 0; k < c.Bands(); k++ {
		diff, err := testutil.MaxAbsDiffComplex(c.Band(k)[0], single.Band(k)[0])
		if err != nil {
			t.Fatalf("MaxAbsDiffComplex: %v", err)
		}
		if diff != 0 {
			t.Fatalf("band %d: batch and single paths differ by %g", k, diff)
		}
	}
}

func TestBatchRequiresMultichannel(t *testing.T) {
	tr, err := NewCQ(100, 3000, 6, 8000, 2000)
	if err != nil {
		t.Fatalf("NewCQ: %v", err)
	}

	signals := [][]float64{make([]float64, 2000), make([]float64, 2000)}
	if _, err := tr.ForwardBatch(signals); err == nil {
		t.Fatal("expected error for multi-signal batch without WithMultichannel")
	}
	if _, err := tr.ForwardBatch([][]float64{make([]float64, 2000)}); err != nil {
		t.Fatalf("single-signal batch: %v", err)
	}
}

func TestRoundTripScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("full-rate scenario")
	}

	// 12 bins per octave over the piano range at 44.1 kHz, one second,
	// reduced by one band at each end.
	tr, err := NewCQ(32.7, 16744, 12, 44100, 44100, WithReducedForm(1))
	if err != nil {
		t.Fatalf("NewCQ: %v", err)
	}

	sig := periodicSines(44100, 100, 441, 1000, 5000, 12000)
	c, err := tr.Forward(sig)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if got, want := c.Bands(), tr.FBinsActual(); got != want {
		t.Fatalf("forward yields %d bands, want FBinsActual %d", got, want)
	}

	rec, err := tr.Inverse(c)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	relErr, err := testutil.RelativeError(rec, sig)
	if err != nil {
		t.Fatalf("RelativeError: %v", err)
	}
	if relErr > 1e-4 {
		t.Fatalf("scenario relative error %.3e, want <= 1e-4", relErr)
	}
}
