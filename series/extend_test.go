package series

import (
	"errors"
	"math"
	"testing"
)

func TestPredictNextExactArithmetic(t *testing.T) {
	// slopes: (3-1)/2 + (3-2)/1 = 2, result = values[1] + 2 = 4.
	got, err := PredictNext([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("PredictNext returned error: %v", err)
	}
	if got != 4 {
		t.Errorf("PredictNext([1 2 3]) = %v, want exactly 4", got)
	}
}

func TestPredictNextLinearTrend(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}
	got, err := PredictNext(values)
	if err != nil {
		t.Fatalf("PredictNext returned error: %v", err)
	}
	// Every slope is 10, so the prediction is values[1] + 4*10.
	if got != 60 {
		t.Errorf("PredictNext = %v, want 60", got)
	}
}

func TestPredictNextTooShort(t *testing.T) {
	for _, values := range [][]float64{nil, {}, {1}} {
		if _, err := PredictNext(values); !errors.Is(err, ErrTooShort) {
			t.Errorf("PredictNext(%v): got %v, want ErrTooShort", values, err)
		}
	}
}

func TestExtend(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	got, err := Extend(values, DefaultExtendNum, DefaultLookAhead)
	if err != nil {
		t.Fatalf("Extend returned error: %v", err)
	}

	if len(got) != len(values)+DefaultExtendNum {
		t.Fatalf("extended length = %d, want %d", len(got), len(values)+DefaultExtendNum)
	}
	for i, v := range values {
		if got[i] != v {
			t.Errorf("prefix changed at index %d: got %v, want %v", i, got[i], v)
		}
	}

	// The prediction window is the last lookAhead+2 values excluding the
	// final element: [4 5 6 7 8 9], every slope 1, prediction 5 + 5 = 10.
	for i := len(values); i < len(got); i++ {
		if got[i] != 10 {
			t.Errorf("tail at index %d: got %v, want 10", i, got[i])
		}
	}
}

func TestExtendZeroCopies(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	got, err := Extend(values, 0, 1)
	if err != nil {
		t.Fatalf("Extend returned error: %v", err)
	}
	if len(got) != len(values) {
		t.Errorf("length = %d, want %d", len(got), len(values))
	}
}

func TestExtendInvalidArgs(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	if _, err := Extend(values, 5, 0); err == nil {
		t.Error("expected error for lookAhead 0")
	}
	if _, err := Extend(values, -1, 5); err == nil {
		t.Error("expected error for negative extendNum")
	}
}

func TestExtendShortSeries(t *testing.T) {
	// A single-element series leaves no history to predict from.
	if _, err := Extend([]float64{1}, 5, 5); !errors.Is(err, ErrTooShort) {
		t.Errorf("got %v, want ErrTooShort", err)
	}
}

func TestInterpolateReplacesAnomalies(t *testing.T) {
	values := []float64{1, 2, 100, 4, 5}
	got := Interpolate(values, []int{2})

	// Clean neighbors (0,1) (1,2) (3,4) (4,5) lie on y = x + 1.
	if math.Abs(got[2]-3) > 1e-9 {
		t.Errorf("interpolated value = %v, want 3", got[2])
	}
	for _, i := range []int{0, 1, 3, 4} {
		if got[i] != values[i] {
			t.Errorf("clean value changed at index %d: got %v, want %v", i, got[i], values[i])
		}
	}
}

func TestInterpolateGrowsWindow(t *testing.T) {
	// Neighboring anomalies force the fit window to grow past them.
	values := []float64{0, 1, 2, 50, 60, 5, 6, 7}
	got := Interpolate(values, []int{3, 4})

	if math.Abs(got[3]-3) > 1e-9 {
		t.Errorf("index 3: got %v, want 3", got[3])
	}
	if math.Abs(got[4]-4) > 1e-9 {
		t.Errorf("index 4: got %v, want 4", got[4])
	}
}

func TestInterpolateNoAnomalies(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5}
	got := Interpolate(values, nil)
	for i := range values {
		if got[i] != values[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], values[i])
		}
	}
	got[0] = -1
	if values[0] == -1 {
		t.Error("Interpolate returned the input slice instead of a copy")
	}
}

func TestInterpolateOutOfRangeIndexIgnored(t *testing.T) {
	values := []float64{1, 2, 3}
	got := Interpolate(values, []int{-1, 7})
	for i := range values {
		if got[i] != values[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], values[i])
		}
	}
}
