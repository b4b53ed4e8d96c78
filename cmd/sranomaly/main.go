// Command sranomaly runs spectral residual anomaly detection over a CSV
// time series.
//
// Usage:
//
//	sranomaly [flags] [file.csv]
//
// The input is timestamp,value rows (RFC 3339 or Unix seconds); a header
// row is skipped automatically. Without a file argument it reads stdin.
//
// Examples:
//
//	sranomaly series.csv
//	sranomaly -threshold 0.25 series.csv
//	sranomaly -margin -sensitivity 90 series.csv
//	sranomaly -anomalies-only series.csv < series.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-anomaly/sr"
)

func main() {
	threshold := flag.Float64("threshold", sr.DefaultThreshold, "anomaly score threshold")
	magWindow := flag.Int("mag-window", sr.DefaultMagWindow, "moving-average window over the log-magnitude spectrum")
	scoreWindow := flag.Int("score-window", sr.DefaultScoreWindow, "moving-average window over saliency magnitudes")
	sensitivity := flag.Float64("sensitivity", sr.DefaultSensitivity, "margin sensitivity (0-100)")
	margin := flag.Bool("margin", false, "compute expected values and confidence bands")
	anomaliesOnly := flag.Bool("anomalies-only", false, "print only anomalous records")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sranomaly [flags] [file.csv]\n\n")
		fmt.Fprintf(os.Stderr, "Detects anomalies in a timestamp,value CSV series using the spectral residual method.\n")
		fmt.Fprintf(os.Stderr, "Reads stdin when no file is given.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		in = f
	}

	points, err := readSeries(in)
	if err != nil {
		fatal(err)
	}

	mode := sr.ModeAnomalyOnly
	if *margin {
		mode = sr.ModeAnomalyAndMargin
	}

	d, err := sr.New(points, sr.Config{
		Threshold:   *threshold,
		MagWindow:   *magWindow,
		ScoreWindow: *scoreWindow,
		Sensitivity: *sensitivity,
		Mode:        mode,
	})
	if err != nil {
		fatal(err)
	}

	report, err := d.Detect()
	if err != nil {
		fatal(err)
	}

	printReport(os.Stdout, report, *anomaliesOnly)
}

// readSeries parses timestamp,value rows. Timestamps may be RFC 3339 or
// Unix seconds; a first row that parses as neither is treated as a header.
func readSeries(r io.Reader) ([]sr.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var points []sr.Point
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		ts, tsErr := parseTimestamp(rec[0])
		value, valErr := strconv.ParseFloat(rec[1], 64)
		if tsErr != nil || valErr != nil {
			if line == 1 {
				continue // header
			}
			return nil, fmt.Errorf("line %d: cannot parse %q,%q", line, rec[0], rec[1])
		}
		points = append(points, sr.Point{Timestamp: ts, Value: value})
	}
	return points, nil
}

func parseTimestamp(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(secs, 0).UTC(), nil
}

func printReport(w io.Writer, report *sr.Report, anomaliesOnly bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	withBand := report.Mode == sr.ModeAnomalyAndMargin

	if withBand {
		fmt.Fprintln(tw, "ID\tTIMESTAMP\tVALUE\tSCORE\tANOMALY\tEXPECTED\tLOWER\tUPPER")
	} else {
		fmt.Fprintln(tw, "ID\tTIMESTAMP\tVALUE\tSCORE\tANOMALY")
	}

	for _, rec := range report.Records {
		if anomaliesOnly && !rec.IsAnomaly {
			continue
		}
		if withBand {
			fmt.Fprintf(tw, "%d\t%s\t%g\t%.4f\t%t\t%.4f\t%.4f\t%.4f\n",
				rec.ID, rec.Timestamp.Format(time.RFC3339), rec.Value,
				rec.Score, rec.IsAnomaly,
				rec.Band.Expected, rec.Band.Lower, rec.Band.Upper)
		} else {
			fmt.Fprintf(tw, "%d\t%s\t%g\t%.4f\t%t\n",
				rec.ID, rec.Timestamp.Format(time.RFC3339), rec.Value,
				rec.Score, rec.IsAnomaly)
		}
	}
	tw.Flush()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "sranomaly: %v\n", err)
	os.Exit(1)
}
