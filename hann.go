package hann

import "math"

// Window returns the Hann window of the given length.
//
// Lengths present in the default precomputed table are served as an
// independent copy of the cached coefficients; every other valid length is
// computed directly. Lengths up to MaxLength are accepted.
func Window(length int) ([]float32, error) {
	return DefaultTable().Window(length)
}

// SumSquares returns the sum of squared window coefficients.
//
// A window whose length matches a precomputed length is assumed to hold the
// reference Hann coefficients for that length and is answered from the table
// without inspecting its contents. Callers holding scaled or otherwise
// modified coefficients of such a length must sum them themselves. Any other
// input, including an empty window, is summed in one pass with a float64
// accumulator.
func SumSquares(window []float32) float64 {
	return DefaultTable().SumSquares(window)
}

// compute fills a fresh coefficient slice for a validated length. The window
// is symmetric, so only the first half is evaluated and the rest mirrored.
func compute(length int) []float32 {
	half := (length + length%2) / 2
	scale := 2 * math.Pi / float64(length-1)

	w := make([]float32, length)
	for i := 0; i < half; i++ {
		c := float32(0.5 - 0.5*math.Cos(scale*float64(i)))
		w[i] = c
		w[length-1-i] = c
	}

	return w
}

func sumSquares(w []float32) float64 {
	sum := 0.0
	for _, v := range w {
		sum += float64(v) * float64(v)
	}

	return sum
}
