package gesture

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestParseFlat(t *testing.T) {
	values := make([]float32, NumLandmarks*3)
	for i := range NumLandmarks {
		values[i*3] = float32(i) * 10
		values[i*3+1] = 224
		values[i*3+2] = -5
	}
	l, err := ParseFlat(values, 224)
	if err != nil {
		t.Fatalf("ParseFlat() error = %v", err)
	}
	if !l.Complete() {
		t.Fatalf("len = %d, want %d", len(l), NumLandmarks)
	}
	if got := l[IndexTip]; !approx(got.X, 80.0/224) || got.Y != 1 {
		t.Errorf("IndexTip = %+v", got)
	}
}

func TestParseFlat_Invalid(t *testing.T) {
	if _, err := ParseFlat(make([]float32, 10), 224); err == nil {
		t.Error("expected error for short output")
	}
	if _, err := ParseFlat(make([]float32, NumLandmarks*3), 0); err == nil {
		t.Error("expected error for zero size")
	}
}
