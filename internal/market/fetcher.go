package market

import (
	"context"
	"time"

	"BitMonitor/internal/model"
)

// Fetcher defines the interface for fetching exchange market data.
type Fetcher interface {
	Ticker24h(ctx context.Context, symbol string) (model.Ticker, error)
	Klines(ctx context.Context, symbol, interval string, start, end time.Time) ([]model.Candle, error)
	Name() string
}

// RateSource provides spot currency conversion quotes.
type RateSource interface {
	SpotRate(ctx context.Context, pair string) (model.FXQuote, error)
}

// SentimentSource provides the fear/greed index history, newest first.
type SentimentSource interface {
	History(ctx context.Context, limit int) ([]model.SentimentReading, error)
}
