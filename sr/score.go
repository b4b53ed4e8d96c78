package sr

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-anomaly/filter"
)

// scoreNorm is the fixed normalization divisor applied to the raw
// relative deviation. It is a constant of the algorithm, not a tunable.
const scoreNorm = 10.0

// Scores converts saliency magnitudes into anomaly scores in [0, 1].
//
// The baseline for each point is the trailing moving average of the
// magnitudes over scoreWindow, clamped away from zero; the raw score is
// the relative deviation |mag - baseline| / baseline, divided by a fixed
// normalization constant and clamped to [0, 1].
func Scores(mags []float64, scoreWindow int) ([]float64, error) {
	if scoreWindow < 1 {
		return nil, fmt.Errorf("sr: scoreWindow must be >= 1: %d", scoreWindow)
	}

	baseline, err := filter.Average(mags, scoreWindow)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(mags))
	for i, m := range mags {
		b := baseline[i]
		if b <= eps {
			b = eps
		}
		s := math.Abs(m-b) / b / scoreNorm
		if s > 1 {
			s = 1
		}
		scores[i] = s
	}
	return scores, nil
}
