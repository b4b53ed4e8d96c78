// Package sr detects anomalies in a univariate, regularly-sampled time
// series using the Spectral Residual method.
//
// The series is transformed into the frequency domain, the log-magnitude
// spectrum is compared against its locally smoothed version, and the
// unexplained ("salient") energy is reconstructed in the time domain as a
// per-point saliency map. Saliency is converted into bounded anomaly
// scores by comparison against a trailing local average.
//
// A [Detector] runs the full pipeline once per instance and caches the
// resulting [Report]:
//
//	d, err := sr.New(points, sr.Config{
//		Threshold:   sr.DefaultThreshold,
//		MagWindow:   sr.DefaultMagWindow,
//		ScoreWindow: sr.DefaultScoreWindow,
//	})
//	if err != nil { ... }
//	report, err := d.Detect()
//
// In [ModeAnomalyAndMargin] the detector additionally reconstructs an
// expected value for each point via band-limited inverse-FFT
// reconstruction and derives a confidence band around it; a point then
// stays anomalous only if its score passes the threshold and its value
// lies within the band, so the band can only narrow the anomaly set.
//
// The pipeline is purely numeric and deterministic. FFT validity assumes
// uniform sample spacing; irregular series are the caller's problem.
package sr
