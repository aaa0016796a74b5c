// Package period maps the chart's time-range selector onto a concrete
// lookback window: a day count, a kline sampling interval, and the label
// layout used for the series points.
package period

import (
	"fmt"
	"math"
	"time"
)

// Period is one of the fixed range tokens offered by the dashboard.
type Period string

const (
	OneDay      Period = "1D"
	FiveDays    Period = "5D"
	OneMonth    Period = "1M"
	SixMonths   Period = "6M"
	YearToDate  Period = "YTD"
	OneYear     Period = "1A"
)

// All lists the valid tokens in display order.
var All = []Period{OneDay, FiveDays, OneMonth, SixMonths, YearToDate, OneYear}

// Parse validates a raw token.
func Parse(s string) (Period, error) {
	for _, p := range All {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Days returns the lookback day count for the period, evaluated at now.
// YTD counts the days elapsed since January 1 of now's year and is never
// cached, so the result drifts across a day boundary mid-session.
func (p Period) Days(now time.Time) int {
	switch p {
	case OneDay:
		return 1
	case FiveDays:
		return 5
	case OneMonth:
		return 30
	case SixMonths:
		return 180
	case YearToDate:
		startOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return int(math.Ceil(now.Sub(startOfYear).Hours() / 24))
	case OneYear:
		return 365
	default:
		return 1
	}
}

// Interval returns the kline sampling interval: fine-grained intraday
// sampling for the shortest period, daily bars otherwise.
func (p Period) Interval() string {
	if p == OneDay {
		return "1m"
	}
	return "1d"
}

// LabelLayout returns the time.Format layout for series point labels.
// Intraday charts label by day and time of day; all others by date.
func (p Period) LabelLayout() string {
	if p == OneDay {
		return "02/01 15:04"
	}
	return "02/01/06"
}
