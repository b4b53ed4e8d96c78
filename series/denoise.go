package series

// minFitPoints is the minimum number of clean neighbors used for the
// local linear fit before the search window stops growing.
const minFitPoints = 4

// Interpolate returns a copy of values with each index in anomalies
// replaced by a local least-squares linear fit over nearby non-anomalous
// points.
//
// For each anomalous index the search window grows symmetrically until at
// least four clean points are found or the whole series is covered.
// Indices outside the series are ignored; an index whose window yields
// fewer than two clean points keeps its original value.
func Interpolate(values []float64, anomalies []int) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	if len(anomalies) == 0 {
		return out
	}

	n := len(values)
	anomalous := make(map[int]bool, len(anomalies))
	for _, idx := range anomalies {
		if idx >= 0 && idx < n {
			anomalous[idx] = true
		}
	}

	for idx := range anomalous {
		step := 1
		xs, ys := cleanNeighbors(values, anomalous, idx, step)
		for len(xs) < minFitPoints && (idx-step > 0 || idx+step < n-1) {
			step += 2
			xs, ys = cleanNeighbors(values, anomalous, idx, step)
		}
		if len(xs) > 1 {
			out[idx] = fitAt(xs, ys, float64(idx))
		}
	}
	return out
}

// cleanNeighbors collects the non-anomalous points within step of idx.
func cleanNeighbors(values []float64, anomalous map[int]bool, idx, step int) (xs, ys []float64) {
	start := max(idx-step, 0)
	end := min(idx+step, len(values)-1)
	for i := start; i <= end; i++ {
		if anomalous[i] {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, values[i])
	}
	return xs, ys
}

// fitAt evaluates the least-squares line through (xs, ys) at x.
func fitAt(xs, ys []float64, x float64) float64 {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return sumY / n
	}
	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n
	return slope*x + intercept
}
