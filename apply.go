package hann

import (
	"github.com/cwbudde/algo-vecmath"
)

// Float64 returns the window coefficients widened to float64 for use with
// float64 sample pipelines.
func Float64(window []float32) []float64 {
	out := make([]float64, len(window))
	for i, v := range window {
		out[i] = float64(v)
	}

	return out
}

// Apply multiplies buf in-place by the Hann window of matching length.
func Apply(buf []float64) error {
	w, err := Window(len(buf))
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, Float64(w))

	return nil
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples []float64, coeffs []float32) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, Float64(coeffs))

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples []float64, coeffs []float32) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, Float64(coeffs))

	return nil
}
