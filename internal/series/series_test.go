package series

import (
	"testing"
	"time"

	"BitMonitor/internal/model"
)

func makeCandles(n int) []model.Candle {
	base := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]model.Candle, n)
	for i := range candles {
		candles[i] = model.Candle{
			OpenTime: base.Add(time.Duration(i) * time.Minute),
			Close:    96700.123 + float64(i),
		}
	}
	return candles
}

func TestFromCandles_LengthMatchesInput(t *testing.T) {
	for _, n := range []int{0, 1, 5, 100} {
		points := FromCandles(makeCandles(n), "02/01 15:04")
		if len(points) != n {
			t.Errorf("n=%d: expected %d points, got %d", n, n, len(points))
		}
	}
}

func TestFromCandles_EmptyInputYieldsEmptyOutput(t *testing.T) {
	points := FromCandles(nil, "02/01 15:04")
	if points == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(points) != 0 {
		t.Errorf("expected 0 points, got %d", len(points))
	}
}

func TestFromCandles_RoundsToTwoDecimals(t *testing.T) {
	candles := []model.Candle{{
		OpenTime: time.Date(2025, time.April, 1, 9, 30, 0, 0, time.UTC),
		Close:    96700.126,
	}}
	points := FromCandles(candles, "02/01 15:04")
	if points[0].Value != 96700.13 {
		t.Errorf("expected 96700.13, got %v", points[0].Value)
	}
	if points[0].Label != "01/04 09:30" {
		t.Errorf("unexpected label %q", points[0].Label)
	}
}

func TestFromCandles_PreservesOrder(t *testing.T) {
	points := FromCandles(makeCandles(10), "15:04")
	for i := 1; i < len(points); i++ {
		if points[i].Value <= points[i-1].Value {
			t.Fatalf("order not preserved at index %d", i)
		}
	}
}

func TestConvert_LabelAlignment(t *testing.T) {
	source := FromCandles(makeCandles(20), "02/01 15:04")
	converted := Convert(source, 5.20)
	if len(converted) != len(source) {
		t.Fatalf("length mismatch: %d vs %d", len(converted), len(source))
	}
	for i := range source {
		if converted[i].Label != source[i].Label {
			t.Errorf("index %d: label %q != %q", i, converted[i].Label, source[i].Label)
		}
	}
}

func TestConvert_AppliesRate(t *testing.T) {
	source := []model.SeriesPoint{{Label: "x", Value: 100000}}
	converted := Convert(source, 5.20)
	if converted[0].Value != 520000 {
		t.Errorf("expected 520000, got %v", converted[0].Value)
	}
}

func TestConvert_Empty(t *testing.T) {
	if got := Convert(nil, 5.20); len(got) != 0 {
		t.Errorf("expected empty output, got %d points", len(got))
	}
}

func TestAverage(t *testing.T) {
	points := []model.SeriesPoint{
		{Value: 10}, {Value: 20}, {Value: 30},
	}
	if got := Average(points); got != 20 {
		t.Errorf("expected 20, got %v", got)
	}
	if got := Average(nil); got != 0 {
		t.Errorf("expected 0 for empty series, got %v", got)
	}
}
