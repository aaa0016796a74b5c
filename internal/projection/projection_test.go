package projection

import (
	"math"
	"testing"
)

func TestCalculate_ReferenceValues(t *testing.T) {
	r := Calculate(0.5, 100000, 5.20, 250000)
	if math.Abs(r.FutureValue-260000.00) > 1e-9 {
		t.Errorf("future value: expected 260000.00, got %v", r.FutureValue)
	}
	if math.Abs(r.AbsoluteDelta-10000.00) > 1e-9 {
		t.Errorf("absolute delta: expected 10000.00, got %v", r.AbsoluteDelta)
	}
	if math.Abs(r.PercentDelta-4.00) > 1e-9 {
		t.Errorf("percent delta: expected 4.00, got %v", r.PercentDelta)
	}
}

func TestCalculate_Depreciation(t *testing.T) {
	r := Calculate(1, 50000, 5.0, 500000)
	if r.AbsoluteDelta != -250000 {
		t.Errorf("expected -250000, got %v", r.AbsoluteDelta)
	}
	if r.PercentDelta != -50 {
		t.Errorf("expected -50, got %v", r.PercentDelta)
	}
}

func TestCalculate_ZeroPresentValue(t *testing.T) {
	r := Calculate(0.5, 100000, 5.20, 0)
	if math.IsInf(r.PercentDelta, 0) || math.IsNaN(r.PercentDelta) {
		t.Fatalf("percent delta must stay finite, got %v", r.PercentDelta)
	}
	if r.PercentDelta != 0 {
		t.Errorf("expected 0 percent delta for zero present value, got %v", r.PercentDelta)
	}
	if r.FutureValue != 260000 {
		t.Errorf("future value unaffected by present value, got %v", r.FutureValue)
	}
}

func TestInput_Complete(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want bool
	}{
		{"all set", Input{"0.5", "100000", "250000"}, true},
		{"missing quantity", Input{"", "100000", "250000"}, false},
		{"missing future price", Input{"0.5", "", "250000"}, false},
		{"missing present value", Input{"0.5", "100000", ""}, false},
		{"non-numeric", Input{"abc", "100000", "250000"}, false},
		{"zero present value", Input{"0.5", "100000", "0"}, true},
	}
	for _, tt := range tests {
		if got := tt.in.Complete(); got != tt.want {
			t.Errorf("%s: Complete() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestInput_ParseValues(t *testing.T) {
	q, f, p, ok := Input{"0.5", "100000", "250000"}.Parse()
	if !ok {
		t.Fatal("expected ok")
	}
	if q != 0.5 || f != 100000 || p != 250000 {
		t.Errorf("unexpected values: %v %v %v", q, f, p)
	}
}
