package sr

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-anomaly/filter"
)

// eps is the magnitude floor below which spectrum bins are treated as
// degenerate: clamped for division, forced to 0 in log space, and zeroed
// during rescaling.
const eps = 1e-8

// Transform computes the spectral residual saliency magnitude for each
// point of values.
//
// The log-magnitude spectrum is smoothed with a trailing moving average
// of size magWindow; the residual (log magnitude minus its smoothed
// version) rescales the complex spectrum, and the inverse transform's
// magnitude is the time-domain saliency map. Near-zero magnitude bins are
// clamped, not errors. The output has the same length as the input;
// callers working on an extended series truncate it back themselves.
func Transform(values []float64, magWindow int) ([]float64, error) {
	if magWindow < 1 {
		return nil, fmt.Errorf("sr: magWindow must be >= 1: %d", magWindow)
	}
	n := len(values)
	if n == 0 {
		return nil, nil
	}

	freq, err := forward(values)
	if err != nil {
		return nil, err
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range freq {
		re[i] = real(c)
		im[i] = imag(c)
	}

	mag := make([]float64, n)
	vecmath.Magnitude(mag, re, im)

	degenerate := make([]bool, n)
	logMag := make([]float64, n)
	for i, m := range mag {
		if m <= eps {
			mag[i] = eps
			degenerate[i] = true
			// log of the clamped floor is forced to 0, not ln(eps).
			continue
		}
		logMag[i] = math.Log(m)
	}

	smoothed, err := filter.Average(logMag, magWindow)
	if err != nil {
		return nil, err
	}

	// Rescale each bin by saliency/magnitude; degenerate bins carry no
	// usable phase and are zeroed outright.
	for i := range freq {
		if degenerate[i] {
			freq[i] = 0
			continue
		}
		s := math.Exp(logMag[i]-smoothed[i]) / mag[i]
		freq[i] = complex(re[i]*s, im[i]*s)
	}

	wave, err := inverse(freq)
	if err != nil {
		return nil, err
	}

	for i, c := range wave {
		re[i] = real(c)
		im[i] = imag(c)
	}
	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)
	return out, nil
}
