// Package boundary computes per-point dispersion units, margin widths and
// rescaled anomaly scores for the margin detection mode.
//
// A unit estimates the local scale of the series around each point. A
// margin converts a unit and a sensitivity in [0, 100] into a symmetric
// width around the expected value: sensitivity 0 yields the widest margin
// and sensitivity 100 collapses it to zero. The rescaled score inverts
// that relationship, mapping the distance between a value and its
// expected value onto [0, 1].
package boundary

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-anomaly/filter"
)

const (
	// maxTrendWindow caps the median-filter window used for the trend
	// estimate on long series.
	maxTrendWindow = 512

	// minUnit keeps units strictly positive so margins and rescaled
	// scores stay well defined on flat or zero-valued series.
	minUnit = 1e-5

	// maxMarginFactor is the margin width in units at sensitivity 0.
	maxMarginFactor = 10.0
)

// Units returns one dispersion estimate per point.
//
// The estimate blends the absolute sliding-median trend of the series
// with the mean trend over non-anomalous points, floored at a small
// positive minimum. Flagged points contribute their own trend but are
// excluded from the mean, so isolated spikes do not inflate the baseline.
func Units(values []float64, isAnomaly []bool) ([]float64, error) {
	if len(values) != len(isAnomaly) {
		return nil, fmt.Errorf("boundary: values/isAnomaly length mismatch: %d != %d", len(values), len(isAnomaly))
	}
	n := len(values)
	if n == 0 {
		return nil, nil
	}

	window := n/3 + 2
	if window > maxTrendWindow+1 {
		window = maxTrendWindow + 1
	}
	trends, err := filter.Median(values, window, true)
	if err != nil {
		return nil, err
	}
	for i, t := range trends {
		trends[i] = math.Abs(t)
	}

	sum := 0.0
	count := 0
	for i, t := range trends {
		if !isAnomaly[i] {
			sum += t
			count++
		}
	}

	units := make([]float64, n)
	for i, t := range trends {
		u := t
		if count > 0 {
			u = (t + sum/float64(count)) / 2
		}
		if u < minUnit {
			u = minUnit
		}
		units[i] = u
	}
	return units, nil
}

// Margin converts a unit and a sensitivity into a symmetric margin width.
//
// The width decays strictly monotonically with sensitivity and is exactly
// zero at sensitivity 100. Sensitivities outside [0, 100] are clamped.
func Margin(unit, sensitivity float64) float64 {
	if unit < 0 {
		unit = 0
	}
	if sensitivity < 0 {
		sensitivity = 0
	}
	if sensitivity > 100 {
		sensitivity = 100
	}
	return unit * marginFactor(sensitivity)
}

// marginFactor is the margin width in units for a given sensitivity:
// exp(a*(1-s/100)) - 1 with a chosen so that factor(0) == maxMarginFactor.
func marginFactor(sensitivity float64) float64 {
	a := math.Log1p(maxMarginFactor)
	return math.Expm1(a * (1 - sensitivity/100))
}

// Scores returns rescaled anomaly scores consistent with the margin
// semantics.
//
// Non-anomalous points score 0. An anomalous point scores the normalized
// sensitivity level at which its distance from the expected value first
// escapes the margin: 0 when the distance is zero, 1 when it exceeds the
// widest margin.
func Scores(values, expected, units []float64, isAnomaly []bool) ([]float64, error) {
	n := len(values)
	if len(expected) != n || len(units) != n || len(isAnomaly) != n {
		return nil, fmt.Errorf("boundary: input length mismatch: values=%d expected=%d units=%d isAnomaly=%d",
			n, len(expected), len(units), len(isAnomaly))
	}

	scores := make([]float64, n)
	for i := range values {
		if !isAnomaly[i] {
			continue
		}
		unit := units[i]
		if unit < minUnit {
			unit = minUnit
		}
		distance := math.Abs(values[i] - expected[i])
		score := math.Log1p(distance/unit) / math.Log1p(maxMarginFactor)
		if score > 1 {
			score = 1
		}
		scores[i] = score
	}
	return scores, nil
}
