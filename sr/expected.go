package sr

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-anomaly/series"
)

// ExpectedValues reconstructs a denoised expected-value series.
//
// Values at the given anomalous indices are first replaced by local
// linear interpolation over clean neighbors. The cleaned series of
// length L is transformed, every bin i with 3L/8 < i < 5L/8 is zeroed,
// and the inverse transform is the expected series. Keeping both the
// low-index and high-index portions of the spectrum preserves the
// conjugate-symmetric halves of the real signal's low-frequency content;
// the comparison is done in exact integer arithmetic (8i vs 3L and 5L)
// so that short series truncate the band the same way on both ends.
func ExpectedValues(values []float64, anomalies []int) ([]float64, error) {
	n := len(values)
	if n == 0 {
		return nil, nil
	}

	clean := series.Interpolate(values, anomalies)
	freq, err := forward(clean)
	if err != nil {
		return nil, err
	}

	for i := range freq {
		if 8*i > 3*n && 8*i < 5*n {
			freq[i] = 0
		}
	}

	wave, err := inverse(freq)
	if err != nil {
		return nil, err
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range wave {
		re[i] = real(c)
		im[i] = imag(c)
	}
	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)

	// The reconstruction of a real signal is real up to rounding; carry
	// the sign of the real part so negative expected values survive the
	// magnitude convention.
	for i := range out {
		out[i] = math.Copysign(out[i], re[i])
	}
	return out, nil
}
