package nsgt

import (
	"fmt"

	"github.com/cwbudde/algo-nsgt/scale"
)

// NewCQ builds a constant-Q transform: an octave scale over
// [fmin, fmax] with the given number of bins per octave, passed to New
// with the remaining options unchanged.
func NewCQ(fmin, fmax float64, binsPerOctave int, sampleRate float64, signalLength int, opts ...Option) (*Transform, error) {
	scl, err := scale.NewOctave(fmin, fmax, binsPerOctave)
	if err != nil {
		return nil, fmt.Errorf("nsgt: constant-Q scale: %w", err)
	}
	return New(scl, sampleRate, signalLength, opts...)
}
