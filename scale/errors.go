package scale

import (
	"errors"
	"fmt"
)

// ErrUnknownScale reports a scale family name with no registered
// constructor.
var ErrUnknownScale = errors.New("scale: unsupported frequency scale")

func errInvalidFMin(fmin float64) error {
	return fmt.Errorf("scale: minimum frequency must be > 0: %g", fmin)
}

func errInvalidFMax(fmax, fmin float64) error {
	return fmt.Errorf("scale: maximum frequency must be > minimum %g: %g", fmin, fmax)
}

func errTooFewBands(bands, minBands int) error {
	return fmt.Errorf("scale: band count must be >= %d: %d", minBands, bands)
}
