package nsgt

import "fmt"

// Form tags the layout of a coefficient bundle.
type Form int

const (
	// FormRagged keeps each band at its own coefficient length M[k].
	FormRagged Form = iota
	// FormMatrix forces every band to one common coefficient length.
	FormMatrix
)

// String returns the form name.
func (f Form) String() string {
	switch f {
	case FormRagged:
		return "ragged"
	case FormMatrix:
		return "matrix"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// Coefficients is the forward transform's output for one or more
// signals: complex coefficient sequences laid out [band][signal][time].
// In FormRagged the time length varies per band; in FormMatrix it is the
// same for every band. Band returns live rows, so downstream processing
// may modify coefficients in place before inversion.
type Coefficients struct {
	form  Form
	bands [][][]complex128
}

// NewCoefficients assembles a bundle from per-band data laid out
// [band][signal][time]. Every band must carry the same number of
// signals, rows within a band must share one length, and FormMatrix
// additionally requires one length across all bands.
func NewCoefficients(form Form, bands [][][]complex128) (*Coefficients, error) {
	if form != FormRagged && form != FormMatrix {
		return nil, fmt.Errorf("nsgt: unknown coefficient form %d", int(form))
	}
	if len(bands) == 0 {
		return nil, fmt.Errorf("%w: no bands", ErrShapeMismatch)
	}

	signals := len(bands[0])
	common := -1
	for k, band := range bands {
		if len(band) != signals {
			return nil, fmt.Errorf("%w: band %d holds %d signals, band 0 holds %d", ErrShapeMismatch, k, len(band), signals)
		}
		if signals == 0 {
			return nil, fmt.Errorf("%w: band %d holds no signals", ErrShapeMismatch, k)
		}
		n := len(band[0])
		for s, row := range band {
			if len(row) != n {
				return nil, fmt.Errorf("%w: band %d signal %d length %d, want %d", ErrShapeMismatch, k, s, len(row), n)
			}
		}
		if form == FormMatrix {
			if common == -1 {
				common = n
			} else if n != common {
				return nil, fmt.Errorf("%w: matrix form band %d length %d, want %d", ErrShapeMismatch, k, n, common)
			}
		}
	}

	return &Coefficients{form: form, bands: bands}, nil
}

// Form returns the bundle layout tag.
func (c *Coefficients) Form() Form { return c.form }

// Bands returns the number of bands.
func (c *Coefficients) Bands() int { return len(c.bands) }

// Signals returns the number of signals per band.
func (c *Coefficients) Signals() int {
	if len(c.bands) == 0 {
		return 0
	}
	return len(c.bands[0])
}

// Band returns band k's rows, one per signal. The rows are live views
// into the bundle, not copies.
func (c *Coefficients) Band(k int) [][]complex128 { return c.bands[k] }

// BandLen returns band k's coefficient length.
func (c *Coefficients) BandLen(k int) int {
	if len(c.bands[k]) == 0 {
		return 0
	}
	return len(c.bands[k][0])
}

// newBundle allocates a zeroed bundle shaped for the transform's active
// bands and the given signal count.
func (t *Transform) newBundle(signals int) *Coefficients {
	form := FormRagged
	if t.matrixform {
		form = FormMatrix
	}
	bands := make([][][]complex128, t.hi-t.lo)
	for i := range bands {
		mk := t.m[t.lo+i]
		rows := make([][]complex128, signals)
		for s := range rows {
			rows[s] = make([]complex128, mk)
		}
		bands[i] = rows
	}
	return &Coefficients{form: form, bands: bands}
}
