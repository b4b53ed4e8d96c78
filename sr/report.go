package sr

import "time"

// Mode selects which columns a detection produces.
type Mode int

// Detection modes.
const (
	// ModeAnomalyOnly produces saliency, score and anomaly flag.
	ModeAnomalyOnly Mode = iota
	// ModeAnomalyAndMargin additionally produces the expected value and
	// the confidence band around it.
	ModeAnomalyAndMargin
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeAnomalyOnly:
		return "anomaly-only"
	case ModeAnomalyAndMargin:
		return "anomaly-and-margin"
	default:
		return "unknown"
	}
}

// Point is one sample of the input series.
type Point struct {
	Timestamp time.Time
	Value     float64
}

// Band is the margin-mode result extension: the reconstructed expected
// value and the symmetric confidence band around it.
// Lower <= Expected <= Upper always holds.
type Band struct {
	Expected float64
	Lower    float64
	Upper    float64
}

// Record is the detection result for one input point. ID is the dense
// 0-based input-order index. Band is nil in [ModeAnomalyOnly] and non-nil
// in [ModeAnomalyAndMargin].
type Record struct {
	ID        int
	Timestamp time.Time
	Value     float64
	Mag       float64 // spectral residual saliency magnitude
	Score     float64 // anomaly score in [0, 1]
	IsAnomaly bool
	Band      *Band
}

// Report is the ordered detection result, one record per input point in
// input order.
type Report struct {
	Mode    Mode
	Records []Record
}

// Anomalies returns the indices of all records flagged as anomalous, in
// input order.
func (r *Report) Anomalies() []int {
	var out []int
	for _, rec := range r.Records {
		if rec.IsAnomaly {
			out = append(out, rec.ID)
		}
	}
	return out
}
