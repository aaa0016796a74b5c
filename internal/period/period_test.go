package period

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	for _, p := range All {
		got, err := Parse(string(p))
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", p, err)
		}
		if got != p {
			t.Errorf("Parse(%q) = %q", p, got)
		}
	}
	if _, err := Parse("2W"); err == nil {
		t.Error("expected error for unknown token")
	}
}

func TestDays_FixedPeriods(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		period Period
		want   int
	}{
		{OneDay, 1},
		{FiveDays, 5},
		{OneMonth, 30},
		{SixMonths, 180},
		{OneYear, 365},
	}
	for _, tt := range tests {
		if got := tt.period.Days(now); got != tt.want {
			t.Errorf("%s: expected %d days, got %d", tt.period, tt.want, got)
		}
	}
}

func TestDays_YearToDate(t *testing.T) {
	// Noon on Jan 10 is 9.5 days into the year, rounded up to 10.
	now := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)
	if got := YearToDate.Days(now); got != 10 {
		t.Errorf("expected 10 days, got %d", got)
	}
}

func TestDays_YearToDateNonDecreasing(t *testing.T) {
	// Advancing the clock within a single year never shrinks the window.
	start := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	prev := 0
	for d := 0; d < 360; d += 7 {
		now := start.AddDate(0, 0, d)
		got := YearToDate.Days(now)
		if got < prev {
			t.Fatalf("YTD days decreased: %d -> %d at %s", prev, got, now)
		}
		if got <= 0 {
			t.Fatalf("YTD days must be positive, got %d at %s", got, now)
		}
		prev = got
	}
}

func TestInterval(t *testing.T) {
	if OneDay.Interval() != "1m" {
		t.Errorf("1D should sample intraday, got %s", OneDay.Interval())
	}
	for _, p := range []Period{FiveDays, OneMonth, SixMonths, YearToDate, OneYear} {
		if p.Interval() != "1d" {
			t.Errorf("%s should sample daily, got %s", p, p.Interval())
		}
	}
}

func TestLabelLayout(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC)
	if got := ts.Format(OneDay.LabelLayout()); got != "07/03 14:30" {
		t.Errorf("intraday label: got %q", got)
	}
	if got := ts.Format(OneYear.LabelLayout()); got != "07/03/25" {
		t.Errorf("daily label: got %q", got)
	}
}
