package boundary

import (
	"math"
	"testing"
)

func TestUnitsPositiveAndAligned(t *testing.T) {
	values := []float64{1, 1, 1, 1, 100, 1, 1, 1, 1, 1}
	flags := make([]bool, len(values))
	flags[4] = true

	units, err := Units(values, flags)
	if err != nil {
		t.Fatalf("Units returned error: %v", err)
	}
	if len(units) != len(values) {
		t.Fatalf("units length = %d, want %d", len(units), len(values))
	}
	for i, u := range units {
		if u < minUnit {
			t.Errorf("unit %d = %v, want >= %v", i, u, minUnit)
		}
	}
}

func TestUnitsFlatSeriesFloored(t *testing.T) {
	values := make([]float64, 8)
	flags := make([]bool, 8)

	units, err := Units(values, flags)
	if err != nil {
		t.Fatalf("Units returned error: %v", err)
	}
	for i, u := range units {
		if u != minUnit {
			t.Errorf("unit %d = %v, want floor %v", i, u, minUnit)
		}
	}
}

func TestUnitsLengthMismatch(t *testing.T) {
	if _, err := Units([]float64{1, 2}, []bool{true}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}

func TestUnitsEmpty(t *testing.T) {
	units, err := Units(nil, nil)
	if err != nil {
		t.Fatalf("Units returned error: %v", err)
	}
	if units != nil {
		t.Errorf("expected nil units, got %v", units)
	}
}

func TestMarginMonotoneDecreasing(t *testing.T) {
	prev := math.Inf(1)
	for s := 0.0; s <= 100; s++ {
		m := Margin(1, s)
		if m < 0 {
			t.Fatalf("Margin(1, %v) = %v, want >= 0", s, m)
		}
		if m >= prev {
			t.Fatalf("Margin(1, %v) = %v, not strictly below Margin at %v (%v)", s, m, s-1, prev)
		}
		prev = m
	}
}

func TestMarginBoundaryValues(t *testing.T) {
	if got := Margin(1, 100); got != 0 {
		t.Errorf("Margin(1, 100) = %v, want 0", got)
	}
	if got := Margin(0, 50); got != 0 {
		t.Errorf("Margin(0, 50) = %v, want 0", got)
	}
	if got := Margin(2, 0); math.Abs(got-2*maxMarginFactor) > 1e-9 {
		t.Errorf("Margin(2, 0) = %v, want %v", got, 2*maxMarginFactor)
	}
	// Out-of-range sensitivities clamp.
	if got := Margin(1, -10); got != Margin(1, 0) {
		t.Errorf("Margin(1, -10) = %v, want Margin(1, 0) = %v", got, Margin(1, 0))
	}
	if got := Margin(1, 200); got != 0 {
		t.Errorf("Margin(1, 200) = %v, want 0", got)
	}
}

func TestMarginScalesWithUnit(t *testing.T) {
	a := Margin(1, 50)
	b := Margin(3, 50)
	if math.Abs(b-3*a) > 1e-9 {
		t.Errorf("Margin(3, 50) = %v, want 3 * Margin(1, 50) = %v", b, 3*a)
	}
}

func TestScores(t *testing.T) {
	values := []float64{10, 10.5, 30, 10}
	expected := []float64{10, 10, 10, 10}
	units := []float64{1, 1, 1, 1}
	flags := []bool{false, true, true, true}

	scores, err := Scores(values, expected, units, flags)
	if err != nil {
		t.Fatalf("Scores returned error: %v", err)
	}

	if scores[0] != 0 {
		t.Errorf("non-anomalous point scored %v, want 0", scores[0])
	}
	if scores[3] != 0 {
		t.Errorf("zero-distance point scored %v, want 0", scores[3])
	}
	if scores[1] <= 0 || scores[1] >= 1 {
		t.Errorf("small deviation score = %v, want in (0, 1)", scores[1])
	}
	if scores[2] != 1 {
		// Distance 20 exceeds the widest margin (unit * maxMarginFactor).
		t.Errorf("large deviation score = %v, want clamped to 1", scores[2])
	}
	if scores[1] >= scores[2] {
		t.Errorf("scores not monotone in distance: %v >= %v", scores[1], scores[2])
	}
}

func TestScoresLengthMismatch(t *testing.T) {
	if _, err := Scores([]float64{1}, []float64{1, 2}, []float64{1}, []bool{true}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}
