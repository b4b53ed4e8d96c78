package sr

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-anomaly/boundary"
	"github.com/cwbudde/algo-anomaly/series"
)

// Default detection parameters.
const (
	DefaultThreshold   = 0.3
	DefaultMagWindow   = 3
	DefaultScoreWindow = 40
	DefaultSensitivity = 99
)

// ErrEmptySeries is returned by [New] for an empty input series.
var ErrEmptySeries = errors.New("sr: series must not be empty")

// Config holds detection parameters. All fields are validated by [New].
type Config struct {
	// Threshold flags a candidate anomaly when score >= Threshold.
	// Conventionally in [0, 1].
	Threshold float64
	// MagWindow is the moving-average window over the log-magnitude
	// spectrum. Must be positive.
	MagWindow int
	// ScoreWindow is the moving-average window over the saliency
	// magnitudes. Must be positive.
	ScoreWindow int
	// Sensitivity controls the margin width in [ModeAnomalyAndMargin],
	// on a 0-100 scale: 0 is the widest margin, 100 collapses it.
	Sensitivity float64
	// Mode selects whether expected values and confidence bands are
	// computed.
	Mode Mode
}

// Detector runs spectral residual detection over a fixed series.
//
// A detector computes its report at most once: the first call to
// [Detector.Detect] runs the pipeline and every later call returns the
// identical cached result. First access is serialized internally, so a
// detector is safe for concurrent use.
type Detector struct {
	points []Point
	values []float64
	cfg    Config

	once   sync.Once
	report *Report
	err    error
}

// New creates a detector over the given series and configuration.
//
// The series must be non-empty with finite values, chronologically
// ordered and uniformly sampled; both window sizes must be positive and
// threshold and sensitivity must be finite numbers.
func New(points []Point, cfg Config) (*Detector, error) {
	if len(points) == 0 {
		return nil, ErrEmptySeries
	}
	if cfg.MagWindow < 1 {
		return nil, fmt.Errorf("sr: magWindow must be >= 1: %d", cfg.MagWindow)
	}
	if cfg.ScoreWindow < 1 {
		return nil, fmt.Errorf("sr: scoreWindow must be >= 1: %d", cfg.ScoreWindow)
	}
	if math.IsNaN(cfg.Threshold) || math.IsInf(cfg.Threshold, 0) {
		return nil, fmt.Errorf("sr: threshold must be finite: %f", cfg.Threshold)
	}
	if math.IsNaN(cfg.Sensitivity) || math.IsInf(cfg.Sensitivity, 0) {
		return nil, fmt.Errorf("sr: sensitivity must be finite: %f", cfg.Sensitivity)
	}
	if cfg.Mode != ModeAnomalyOnly && cfg.Mode != ModeAnomalyAndMargin {
		return nil, fmt.Errorf("sr: unknown detect mode: %d", cfg.Mode)
	}

	d := &Detector{
		points: make([]Point, len(points)),
		values: make([]float64, len(points)),
		cfg:    cfg,
	}
	copy(d.points, points)
	for i, p := range points {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return nil, fmt.Errorf("sr: series value at index %d must be finite: %f", i, p.Value)
		}
		d.values[i] = p.Value
	}
	return d, nil
}

// Detect returns the anomaly report for the detector's series.
//
// The report is computed on the first call and cached; subsequent calls
// return the same report (or the same error) without recomputation.
// Callers must not mutate the returned report.
func (d *Detector) Detect() (*Report, error) {
	d.once.Do(func() {
		d.report, d.err = d.detect()
	})
	return d.report, d.err
}

func (d *Detector) detect() (*Report, error) {
	n := len(d.values)

	extended, err := series.Extend(d.values, series.DefaultExtendNum, series.DefaultLookAhead)
	if err != nil {
		return nil, err
	}

	mags, err := Transform(extended, d.cfg.MagWindow)
	if err != nil {
		return nil, err
	}
	// The extension tail only stabilized the transform.
	mags = mags[:n]

	scores, err := Scores(mags, d.cfg.ScoreWindow)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Mode:    d.cfg.Mode,
		Records: make([]Record, n),
	}
	for i := range report.Records {
		report.Records[i] = Record{
			ID:        i,
			Timestamp: d.points[i].Timestamp,
			Value:     d.points[i].Value,
			Mag:       mags[i],
			Score:     scores[i],
			IsAnomaly: scores[i] >= d.cfg.Threshold,
		}
	}

	if d.cfg.Mode == ModeAnomalyOnly {
		return report, nil
	}
	if err := d.applyMargins(report); err != nil {
		return nil, err
	}
	return report, nil
}

// applyMargins fills in expected values and confidence bands, replaces
// the raw scores with boundary-consistent ones, and narrows the anomaly
// flags to values contained in their band.
func (d *Detector) applyMargins(report *Report) error {
	flags := make([]bool, len(report.Records))
	var anomalies []int
	for i, rec := range report.Records {
		flags[i] = rec.IsAnomaly
		if rec.IsAnomaly {
			anomalies = append(anomalies, i)
		}
	}

	expected, err := ExpectedValues(d.values, anomalies)
	if err != nil {
		return err
	}

	units, err := boundary.Units(d.values, flags)
	if err != nil {
		return err
	}

	scores, err := boundary.Scores(d.values, expected, units, flags)
	if err != nil {
		return err
	}

	for i := range report.Records {
		rec := &report.Records[i]
		margin := boundary.Margin(units[i], d.cfg.Sensitivity)
		rec.Score = scores[i]
		rec.Band = &Band{
			Expected: expected[i],
			Lower:    expected[i] - margin,
			Upper:    expected[i] + margin,
		}
		rec.IsAnomaly = rec.IsAnomaly &&
			rec.Value >= rec.Band.Lower && rec.Value <= rec.Band.Upper
	}
	return nil
}
