// Package filter provides the smoothing filters consumed by the
// spectral-residual pipeline: a trailing cumulative moving average and a
// sliding median.
package filter

import (
	"fmt"
	"sort"
)

// Average computes a trailing moving average over the given window.
//
// Element i is the mean of values[max(0, i-window+1) .. i]: the prefix
// (i < window-1) averages over the i+1 values available so far, and the
// window is clamped to the series length. The output has the same length
// as the input.
func Average(values []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("filter: average window must be >= 1: %d", window)
	}
	n := len(values)
	if n == 0 {
		return nil, nil
	}
	if window > n {
		window = n
	}

	out := make([]float64, n)
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
			out[i] = sum / float64(window)
		} else {
			out[i] = sum / float64(i+1)
		}
	}
	return out, nil
}

// Median computes a sliding median over the given window.
//
// The window is forced odd (window/2*2 + 1). Interior elements take the
// median of the centered window. With extendEnds the first and last
// window/2 elements take the median of the truncated one-sided windows;
// otherwise they keep their input values. Inputs shorter than the window
// are returned unchanged.
func Median(values []float64, window int, extendEnds bool) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("filter: median window must be >= 1: %d", window)
	}
	n := len(values)
	if n == 0 {
		return nil, nil
	}

	w := window/2*2 + 1
	out := make([]float64, n)
	copy(out, values)
	if n < w {
		return out, nil
	}

	half := w / 2
	scratch := make([]float64, 0, w)
	for i := half; i < n-half; i++ {
		out[i] = medianOf(values[i-half:i+half+1], scratch)
	}
	if extendEnds {
		for i := range half {
			out[i] = medianOf(values[:i+half+1], scratch)
			out[n-1-i] = medianOf(values[n-1-i-half:], scratch)
		}
	}
	return out, nil
}

// medianOf returns the median of window, using scratch as sort space.
// Even-length windows average the two middle values.
func medianOf(window, scratch []float64) float64 {
	s := append(scratch[:0], window...)
	sort.Float64s(s)
	m := len(s) / 2
	if len(s)%2 == 1 {
		return s[m]
	}
	return (s[m-1] + s[m]) / 2
}
