package market

import (
	"context"
	"time"

	"BitMonitor/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price     float64
	ChangePct float64
	Candles   []model.Candle
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) Ticker24h(_ context.Context, _ string) (model.Ticker, error) {
	return model.Ticker{LastPrice: m.Price, PriceChangePercent: m.ChangePct}, nil
}

func (m *MockFetcher) Klines(_ context.Context, _, interval string, start, end time.Time) ([]model.Candle, error) {
	if m.Candles != nil {
		return m.Candles, nil
	}
	step := 24 * time.Hour
	if interval == "1m" {
		step = time.Minute
	}
	var candles []model.Candle
	for t := start; t.Before(end); t = t.Add(step) {
		candles = append(candles, model.Candle{OpenTime: t, Close: m.Price})
	}
	return candles, nil
}

// MockRateSource returns a fixed spot rate.
type MockRateSource struct {
	Rate      float64
	PctChange float64
}

func (m *MockRateSource) SpotRate(_ context.Context, _ string) (model.FXQuote, error) {
	return model.FXQuote{Bid: m.Rate, PctChange: m.PctChange}, nil
}

// MockSentimentSource returns fixed readings.
type MockSentimentSource struct {
	Readings []model.SentimentReading
}

func (m *MockSentimentSource) History(_ context.Context, limit int) ([]model.SentimentReading, error) {
	if limit > len(m.Readings) {
		limit = len(m.Readings)
	}
	return m.Readings[:limit], nil
}
