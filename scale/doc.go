// Package scale provides frequency-scale generators for non-stationary
// Gabor filterbanks. A scale maps band indices to center frequencies and
// Q factors, which the transform consumes to size and place its windows.
//
// Implemented families:
//
//   - Octave: constant-Q, a fixed number of bins per octave
//   - Log: constant-Q over an explicit total band count ("cqlog")
//   - VQLog: log grid with a bandwidth offset in Hz that lowers Q at
//     low frequencies ("vqlog")
//   - Mel: mel-spaced bands with Q following the local mel slope ("mel")
//   - Bark: bark-spaced bands ("bark")
//
// New resolves the quoted family names; Octave has no registry name and
// is built through NewOctave (or nsgt.NewCQ) directly.
package scale
