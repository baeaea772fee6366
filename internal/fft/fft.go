// Package fft provides cached discrete Fourier transform plans with one
// fixed normalization convention across backends: Forward is unnormalized
// and Inverse scales by 1/n, so Inverse(Forward(x)) == x.
//
// Power-of-two lengths run on algo-fft plans; all other lengths fall back
// to gonum's fourier package, which accepts arbitrary sizes.
package fft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Plan caches transform state for complex FFTs of one fixed length.
// A Plan is safe for concurrent use only if calls do not share buffers;
// the zero value is not usable, construct with NewPlan.
type Plan struct {
	n    int
	fast *algofft.Plan[complex128] // power-of-two lengths
	any  *fourier.CmplxFFT         // all remaining lengths
}

// NewPlan creates a plan for complex transforms of length n.
func NewPlan(n int) (*Plan, error) {
	if n <= 0 {
		return nil, fmt.Errorf("fft: plan length must be > 0: %d", n)
	}

	if isPowerOfTwo(n) {
		p, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("fft: failed to create plan: %w", err)
		}
		return &Plan{n: n, fast: p}, nil
	}

	return &Plan{n: n, any: fourier.NewCmplxFFT(n)}, nil
}

// Len returns the transform length.
func (p *Plan) Len() int {
	return p.n
}

// Forward computes the unnormalized DFT of src into dst.
// dst and src must both have the plan length; they may be the same slice.
func (p *Plan) Forward(dst, src []complex128) error {
	if err := p.checkLen(len(dst), len(src)); err != nil {
		return err
	}

	if p.fast != nil {
		if err := p.fast.Forward(dst, src); err != nil {
			return fmt.Errorf("fft: forward transform failed: %w", err)
		}
		return nil
	}

	p.any.Coefficients(dst, src)
	return nil
}

// Inverse computes the inverse DFT of src into dst, scaled by 1/n.
// dst and src must both have the plan length; they may be the same slice.
func (p *Plan) Inverse(dst, src []complex128) error {
	if err := p.checkLen(len(dst), len(src)); err != nil {
		return err
	}

	if p.fast != nil {
		// algo-fft inverse plans already include the 1/n factor.
		if err := p.fast.Inverse(dst, src); err != nil {
			return fmt.Errorf("fft: inverse transform failed: %w", err)
		}
		return nil
	}

	p.any.Sequence(dst, src)
	scale := complex(1/float64(p.n), 0)
	for i := range dst {
		dst[i] *= scale
	}
	return nil
}

func (p *Plan) checkLen(dst, src int) error {
	if src != p.n {
		return fmt.Errorf("fft: source length %d does not match plan length %d", src, p.n)
	}
	if dst != p.n {
		return fmt.Errorf("fft: destination length %d does not match plan length %d", dst, p.n)
	}
	return nil
}

// RealPlan caches transform state for real-input FFTs of one fixed length.
// The frequency side is the non-negative half spectrum of n/2+1 bins; the
// remaining bins are implied by Hermitian symmetry.
type RealPlan struct {
	n int
	t *fourier.FFT
}

// NewRealPlan creates a plan for real transforms of length n.
func NewRealPlan(n int) (*RealPlan, error) {
	if n <= 0 {
		return nil, fmt.Errorf("fft: plan length must be > 0: %d", n)
	}
	return &RealPlan{n: n, t: fourier.NewFFT(n)}, nil
}

// Len returns the sequence length.
func (p *RealPlan) Len() int {
	return p.n
}

// HalfLen returns the half-spectrum length, n/2+1.
func (p *RealPlan) HalfLen() int {
	return p.n/2 + 1
}

// Forward computes the unnormalized half spectrum of src into dst.
// len(src) must be Len() and len(dst) must be HalfLen().
func (p *RealPlan) Forward(dst []complex128, src []float64) error {
	if len(src) != p.n {
		return fmt.Errorf("fft: source length %d does not match plan length %d", len(src), p.n)
	}
	if len(dst) != p.HalfLen() {
		return fmt.Errorf("fft: destination length %d does not match half-spectrum length %d", len(dst), p.HalfLen())
	}

	p.t.Coefficients(dst, src)
	return nil
}

// Inverse recovers the real sequence from the half spectrum src into dst,
// scaled by 1/n. len(src) must be HalfLen() and len(dst) must be Len().
func (p *RealPlan) Inverse(dst []float64, src []complex128) error {
	if len(src) != p.HalfLen() {
		return fmt.Errorf("fft: source length %d does not match half-spectrum length %d", len(src), p.HalfLen())
	}
	if len(dst) != p.n {
		return fmt.Errorf("fft: destination length %d does not match plan length %d", len(dst), p.n)
	}

	p.t.Sequence(dst, src)
	scale := 1 / float64(p.n)
	for i := range dst {
		dst[i] *= scale
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
