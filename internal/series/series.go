// Package series turns raw exchange candles into the labeled numeric
// series the charts consume.
package series

import (
	"math"

	"BitMonitor/internal/model"
)

// FromCandles maps candles onto labeled points one-to-one, preserving
// order. Values are the candle close prices rounded to two decimals.
// Empty input yields an empty (non-nil) series.
func FromCandles(candles []model.Candle, labelLayout string) []model.SeriesPoint {
	points := make([]model.SeriesPoint, len(candles))
	for i, c := range candles {
		points[i] = model.SeriesPoint{
			Label: c.OpenTime.Format(labelLayout),
			Value: round2(c.Close),
		}
	}
	return points
}

// Convert derives a parallel series in a second currency by multiplying
// every value by the spot rate. Labels and ordering are preserved.
func Convert(points []model.SeriesPoint, rate float64) []model.SeriesPoint {
	converted := make([]model.SeriesPoint, len(points))
	for i, p := range points {
		converted[i] = model.SeriesPoint{
			Label: p.Label,
			Value: round2(p.Value * rate),
		}
	}
	return converted
}

// Average returns the mean value of the series, or 0 for an empty one.
func Average(points []model.SeriesPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range points {
		sum += p.Value
	}
	return sum / float64(len(points))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
