package scale

import (
	"math"
	"testing"
)

func requireIncreasing(t *testing.T, freqs []float64) {
	t.Helper()
	for i := 1; i < len(freqs); i++ {
		if freqs[i] <= freqs[i-1] {
			t.Fatalf("frequencies not strictly increasing at %d: %g after %g", i, freqs[i], freqs[i-1])
		}
	}
}

func requirePositive(t *testing.T, qs []float64) {
	t.Helper()
	for i, q := range qs {
		if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
			t.Fatalf("Q[%d] = %g, want finite positive", i, q)
		}
	}
}

func TestOctaveScale(t *testing.T) {
	s, err := NewOctave(100, 3200, 6)
	if err != nil {
		t.Fatalf("NewOctave: %v", err)
	}

	// 5 octaves at 6 bins each, inclusive of both ends.
	if got, want := s.Len(), 31; got != want {
		t.Fatalf("Len = %d, want %d", got, want)
	}

	freqs, qs := s.Values()
	requireIncreasing(t, freqs)
	requirePositive(t, qs)

	if math.Abs(freqs[0]-100) > 1e-9 {
		t.Fatalf("first band = %g, want 100", freqs[0])
	}
	if math.Abs(freqs[6]-200) > 1e-9 {
		t.Fatalf("band 6 = %g, want one octave up", freqs[6])
	}
	for i := 1; i < len(qs); i++ {
		if qs[i] != qs[0] {
			t.Fatalf("Q varies on a constant-Q scale: %g vs %g", qs[i], qs[0])
		}
	}
}

func TestOctaveBandCountAtExactOctaves(t *testing.T) {
	// When fmax/fmin is a power of two the octave count must come out
	// exact; subtracting logs instead of taking the log of the ratio
	// rounds it up and grows an extra band past fmax.
	tests := []struct {
		fmin, fmax float64
		bpo        int
		want       int
	}{
		{100, 3200, 6, 31}, // 5 octaves
		{100, 200, 1, 2},   // 1 octave
		{55, 880, 12, 49},  // 4 octaves
		{20, 20480, 3, 31}, // 10 octaves
	}
	for _, tc := range tests {
		s, err := NewOctave(tc.fmin, tc.fmax, tc.bpo)
		if err != nil {
			t.Fatalf("NewOctave(%g, %g, %d): %v", tc.fmin, tc.fmax, tc.bpo, err)
		}
		if s.Len() != tc.want {
			t.Fatalf("NewOctave(%g, %g, %d).Len() = %d, want %d", tc.fmin, tc.fmax, tc.bpo, s.Len(), tc.want)
		}
		freqs, _ := s.Values()
		if top := freqs[len(freqs)-1]; top > tc.fmax*(1+1e-9) {
			t.Fatalf("top band %g overshoots fmax %g", top, tc.fmax)
		}
	}
}

func TestLogScale(t *testing.T) {
	s, err := NewLog(100, 3200, 31)
	if err != nil {
		t.Fatalf("NewLog: %v", err)
	}
	if s.Len() != 31 {
		t.Fatalf("Len = %d, want 31", s.Len())
	}

	freqs, qs := s.Values()
	requireIncreasing(t, freqs)
	requirePositive(t, qs)

	// Endpoints are hit exactly; with 31 bands over 5 octaves this
	// matches the octave grid.
	if math.Abs(freqs[0]-100) > 1e-9 || math.Abs(freqs[30]-3200) > 1e-9 {
		t.Fatalf("endpoints = %g, %g, want 100, 3200", freqs[0], freqs[30])
	}
	for i := 1; i < len(qs); i++ {
		if qs[i] != qs[0] {
			t.Fatalf("Q varies on a constant-Q scale")
		}
	}
}

func TestVQLogLowersLowFrequencyQ(t *testing.T) {
	log, err := NewLog(50, 12800, 48)
	if err != nil {
		t.Fatalf("NewLog: %v", err)
	}
	vq, err := NewVQLog(50, 12800, 48, 25)
	if err != nil {
		t.Fatalf("NewVQLog: %v", err)
	}

	_, lq := log.Values()
	vf, vq48 := vq.Values()
	requireIncreasing(t, vf)
	requirePositive(t, vq48)

	if vq48[0] >= lq[0] {
		t.Fatalf("vqlog Q %g at %g Hz not below cqlog Q %g", vq48[0], vf[0], lq[0])
	}
	// The offset washes out at high frequencies.
	if ratio := vq48[47] / lq[47]; ratio < 0.98 {
		t.Fatalf("vqlog/cqlog Q ratio at top band = %g, want close to 1", ratio)
	}

	// gamma 0 degenerates to the log scale.
	vq0, err := NewVQLog(50, 12800, 48, 0)
	if err != nil {
		t.Fatalf("NewVQLog(gamma=0): %v", err)
	}
	_, q0 := vq0.Values()
	for i := range q0 {
		if math.Abs(q0[i]-lq[i]) > 1e-12 {
			t.Fatalf("gamma 0 band %d Q = %g, want %g", i, q0[i], lq[i])
		}
	}
}

func TestMelScale(t *testing.T) {
	s, err := NewMel(100, 8000, 40)
	if err != nil {
		t.Fatalf("NewMel: %v", err)
	}
	if s.Len() != 40 {
		t.Fatalf("Len = %d, want 40", s.Len())
	}

	freqs, qs := s.Values()
	requireIncreasing(t, freqs)
	requirePositive(t, qs)

	if math.Abs(freqs[0]-100) > 1e-6 || math.Abs(freqs[39]-8000) > 1e-6 {
		t.Fatalf("endpoints = %g, %g, want 100, 8000", freqs[0], freqs[39])
	}
	// Mel spacing is denser at low frequencies, so Q grows with band.
	if qs[39] <= qs[0] {
		t.Fatalf("mel Q not increasing: %g .. %g", qs[0], qs[39])
	}
}

func TestBarkScale(t *testing.T) {
	s, err := NewBark(100, 8000, 40)
	if err != nil {
		t.Fatalf("NewBark: %v", err)
	}

	freqs, qs := s.Values()
	requireIncreasing(t, freqs)
	requirePositive(t, qs)

	if math.Abs(freqs[0]-100) > 1e-6 || math.Abs(freqs[39]-8000) > 1e-6 {
		t.Fatalf("endpoints = %g, %g, want 100, 8000", freqs[0], freqs[39])
	}
}

func TestScaleValidation(t *testing.T) {
	tests := []struct {
		name string
		call func() error
	}{
		{"octave zero fmin", func() error { _, err := NewOctave(0, 3200, 6); return err }},
		{"octave fmax below fmin", func() error { _, err := NewOctave(3200, 100, 6); return err }},
		{"octave zero bins", func() error { _, err := NewOctave(100, 3200, 0); return err }},
		{"log one band", func() error { _, err := NewLog(100, 3200, 1); return err }},
		{"vqlog negative gamma", func() error { _, err := NewVQLog(100, 3200, 12, -1); return err }},
		{"mel one band", func() error { _, err := NewMel(100, 3200, 1); return err }},
		{"bark NaN fmin", func() error { _, err := NewBark(math.NaN(), 3200, 12); return err }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.call() == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSuggestedLength(t *testing.T) {
	s, err := NewOctave(32.7, 3000, 12)
	if err != nil {
		t.Fatalf("NewOctave: %v", err)
	}

	ls := SuggestedLength(s, 8000)
	if ls <= 0 || ls%4 != 0 {
		t.Fatalf("SuggestedLength = %d, want positive multiple of 4", ls)
	}

	// The returned length resolves every band.
	freqs, qs := s.Values()
	for i := range freqs {
		if qs[i] >= freqs[i]*float64(ls)/(8*8000) {
			t.Fatalf("band %g Hz still under-resolved at length %d", freqs[i], ls)
		}
	}
}

func TestValuesAreCopies(t *testing.T) {
	s, err := NewOctave(100, 3200, 6)
	if err != nil {
		t.Fatalf("NewOctave: %v", err)
	}

	f1, _ := s.Values()
	f1[0] = -1
	f2, _ := s.Values()
	if f2[0] == -1 {
		t.Fatal("Values must return fresh copies")
	}
}
