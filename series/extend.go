// Package series provides the series-preparation helpers used around the
// spectral-residual transform: tail extension to suppress Fourier boundary
// artifacts, and local interpolation to remove anomalous samples.
package series

import (
	"errors"
	"fmt"
)

// Default extension parameters.
const (
	DefaultExtendNum = 5
	DefaultLookAhead = 5
)

// ErrTooShort is returned when a prediction is requested over fewer than
// two values.
var ErrTooShort = errors.New("series: prediction requires at least 2 values")

// PredictNext extrapolates one value past the end of values by summing the
// per-step slopes between the last value and each earlier value:
//
//	g_i = (values[n-1] - values[i]) / (n-1-i)
//	next = values[1] + sum(g_i)
func PredictNext(values []float64) (float64, error) {
	n := len(values)
	if n < 2 {
		return 0, ErrTooShort
	}

	last := values[n-1]
	sum := 0.0
	for i := range n - 1 {
		sum += (last - values[i]) / float64(n-1-i)
	}
	return values[1] + sum, nil
}

// Extend appends extendNum copies of a predicted next value to values.
//
// The prediction is computed from the last lookAhead+2 values excluding
// the final element. The returned slice is a copy; the first len(values)
// elements are the input unchanged. The appended tail exists only to
// stabilize the discrete Fourier transform against the sharp
// discontinuity at the series boundary and is discarded after the
// transform.
func Extend(values []float64, extendNum, lookAhead int) ([]float64, error) {
	if lookAhead < 1 {
		return nil, fmt.Errorf("series: lookAhead must be at least 1: %d", lookAhead)
	}
	if extendNum < 0 {
		return nil, fmt.Errorf("series: extendNum must be >= 0: %d", extendNum)
	}

	start := len(values) - lookAhead - 2
	if start < 0 {
		start = 0
	}
	end := len(values) - 1
	if end < start {
		end = start
	}

	next, err := PredictNext(values[start:end])
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(values)+extendNum)
	out = append(out, values...)
	for range extendNum {
		out = append(out, next)
	}
	return out, nil
}
