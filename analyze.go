package hann

import (
	"math"

	algofft "github.com/cwbudde/algo-fft"
)

// Analysis holds numerically computed properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// SumSquares is the sum of squared coefficients.
	SumSquares float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
}

// Analyze computes spectral properties of the given window coefficients.
// An empty window yields the zero Analysis.
func Analyze(window []float32) Analysis {
	n := len(window)
	if n == 0 {
		return Analysis{}
	}

	sum := 0.0
	for _, c := range window {
		sum += float64(c)
	}

	a := Analysis{
		SumSquares:        SumSquares(window),
		HighestSidelobedB: math.Inf(-1),
	}

	if sum == 0 {
		return a
	}

	a.CoherentGain = sum / float64(n)
	a.ENBW = float64(n) * a.SumSquares / (sum * sum)
	a.HighestSidelobedB = highestSidelobe(window)

	return a
}

// highestSidelobe measures the peak power past the first spectral null,
// in dB relative to DC, on an 8x zero-padded forward FFT.
func highestSidelobe(window []float32) float64 {
	fftSize := nextPow2(8 * len(window))

	in := make([]complex128, fftSize)
	for i, c := range window {
		in[i] = complex(float64(c), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return math.Inf(-1)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return math.Inf(-1)
	}

	mag := make([]float64, fftSize/2+1)
	for i := range mag {
		re, im := real(out[i]), imag(out[i])
		mag[i] = re*re + im*im
	}

	dcRef := mag[0]
	if dcRef == 0 {
		return math.Inf(-1)
	}

	// Walk down the main lobe to the first null, then take the peak beyond it.
	i := 1
	for i+1 < len(mag) && mag[i+1] <= mag[i] {
		i++
	}

	peak := 0.0
	for ; i < len(mag); i++ {
		if mag[i] > peak {
			peak = mag[i]
		}
	}

	if peak == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(peak/dcRef)
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
