package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns FFT magnitudes for the non-negative frequency bins.
// NaN samples count as zero.
func PowerSpectrum(values []float64) []float64 {
	clean := make([]float64, len(values))
	for i, v := range values {
		if !math.IsNaN(v) {
			clean[i] = v
		}
	}
	spec := fft.FFTReal(clean)
	ps := make([]float64, len(spec)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// DominantFrequency returns the strongest non-zero spatial frequency in
// cycles per unit length for samples spread evenly across span.
func DominantFrequency(values []float64, span float64) float64 {
	n := len(values)
	if n < 4 || span <= 0 {
		return 0
	}
	ps := PowerSpectrum(values)

	maxPower, maxIdx := 0.0, 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower, maxIdx = ps[i], i
		}
	}
	dx := span / float64(n-1)
	return float64(maxIdx) / (float64(n) * dx)
}
