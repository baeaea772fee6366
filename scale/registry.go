package scale

import (
	"fmt"
	"sort"
)

// defaultGamma is the vqlog bandwidth offset in Hz used when WithGamma
// is not given.
const defaultGamma = 25.0

type params struct {
	gamma    float64
	gammaSet bool
}

// Option configures New.
type Option func(*params)

// WithGamma sets the bandwidth offset in Hz for the "vqlog" family.
// Using it with any other family is a configuration error.
func WithGamma(hz float64) Option {
	return func(p *params) {
		p.gamma = hz
		p.gammaSet = true
	}
}

type builder func(fmin, fmax float64, bands int, p params) (Scale, error)

var families = map[string]builder{
	"cqlog": func(fmin, fmax float64, bands int, _ params) (Scale, error) {
		return NewLog(fmin, fmax, bands)
	},
	"vqlog": func(fmin, fmax float64, bands int, p params) (Scale, error) {
		return NewVQLog(fmin, fmax, bands, p.gamma)
	},
	"mel": func(fmin, fmax float64, bands int, _ params) (Scale, error) {
		return NewMel(fmin, fmax, bands)
	},
	"bark": func(fmin, fmax float64, bands int, _ params) (Scale, error) {
		return NewBark(fmin, fmax, bands)
	},
}

// New constructs a scale by family name. Supported families are "cqlog",
// "vqlog", "mel" and "bark"; see Families. Unknown names are rejected
// with an error wrapping ErrUnknownScale.
func New(family string, fmin, fmax float64, bands int, opts ...Option) (Scale, error) {
	p := params{gamma: defaultGamma}
	for _, o := range opts {
		o(&p)
	}

	build, ok := families[family]
	if !ok {
		// "oct" named the octave scale in older releases.
		if family == "oct" {
			return nil, fmt.Errorf("%w %q (use %q instead of %q)", ErrUnknownScale, family, "cqlog", "oct")
		}
		return nil, fmt.Errorf("%w %q", ErrUnknownScale, family)
	}

	if p.gammaSet && family != "vqlog" {
		return nil, fmt.Errorf("scale: gamma applies to family %q only, not %q", "vqlog", family)
	}

	return build(fmin, fmax, bands, p)
}

// Families returns the supported family names, sorted.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
