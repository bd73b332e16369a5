// Package hann generates Hann window coefficients and their sums of squares
// for spectral analysis framing.
//
// Windows for a fixed set of common FFT lengths (256, 512, 1024, 2048, 4096)
// are precomputed once per process and served from a read-only table; all
// other lengths are computed on demand. Coefficients follow the symmetric
// form w[n] = 0.5 - 0.5*cos(2*pi*n/(N-1)), evaluated with float64
// intermediates and stored as float32.
package hann
