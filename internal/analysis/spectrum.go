package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the FFT magnitude spectrum of data, zero-padded to
// the next power of two. The result covers frequency bins [0, n/2]; bin 0
// is the mean (DC) component and the last bin is the Nyquist frequency,
// where a period-2 orbit shows its spectral line.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	coeffs := fft.FFTReal(padded)

	ps := make([]float64, n/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// DominantFrequency returns the index of the strongest non-DC bin of a
// power spectrum, or 0 if the spectrum has no such bin.
func DominantFrequency(ps []float64) int {
	maxIdx := 0
	maxPower := 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	return maxIdx
}
