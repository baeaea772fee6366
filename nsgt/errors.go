package nsgt

import (
	"errors"
	"fmt"
)

// Errors returned by transform construction and calls.
var (
	// ErrIncompleteFrame reports a window configuration whose frame
	// operator diagonal reaches zero somewhere on the frequency axis.
	// The dual windows are undefined there and the transform cannot be
	// inverted; the configuration must change (more bands, wider
	// windows, or a longer signal).
	ErrIncompleteFrame = errors.New("nsgt: incomplete frame")

	// ErrShapeMismatch reports call input whose dimensions do not match
	// the transform configuration.
	ErrShapeMismatch = errors.New("nsgt: shape mismatch")
)

func errSignalLength(got, want int) error {
	return fmt.Errorf("%w: signal length %d, want %d", ErrShapeMismatch, got, want)
}

func errBatchSize(got int) error {
	return fmt.Errorf("%w: %d signals on a single-channel transform (use WithMultichannel)", ErrShapeMismatch, got)
}

func errEmptyBatch() error {
	return fmt.Errorf("%w: empty batch", ErrShapeMismatch)
}

func errWantReal() error {
	return fmt.Errorf("nsgt: transform analyzes real signals (built without WithComplex)")
}

func errWantComplex() error {
	return fmt.Errorf("nsgt: transform analyzes complex signals (built with WithComplex)")
}
