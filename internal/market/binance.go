package market

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"BitMonitor/internal/fetch"
	"BitMonitor/internal/model"
)

// BinanceFetcher implements Fetcher against the Binance public REST API.
type BinanceFetcher struct {
	BaseURL string
	Client  *fetch.Client
}

// NewBinanceFetcher creates a fetcher for the given API base URL.
func NewBinanceFetcher(baseURL string, client *fetch.Client) *BinanceFetcher {
	return &BinanceFetcher{BaseURL: baseURL, Client: client}
}

func (f *BinanceFetcher) Name() string { return "binance" }

// binanceTicker is the 24h ticker response shape. Prices arrive as strings.
type binanceTicker struct {
	LastPrice          string `json:"lastPrice"`
	PriceChangePercent string `json:"priceChangePercent"`
}

// Ticker24h fetches the 24h ticker for a symbol.
func (f *BinanceFetcher) Ticker24h(ctx context.Context, symbol string) (model.Ticker, error) {
	endpoint := fmt.Sprintf("%s/api/v3/ticker/24hr?symbol=%s", f.BaseURL, url.QueryEscape(symbol))

	var raw binanceTicker
	if err := f.Client.GetJSON(ctx, endpoint, &raw); err != nil {
		return model.Ticker{}, fmt.Errorf("fetch ticker: %w", err)
	}
	last, err := strconv.ParseFloat(raw.LastPrice, 64)
	if err != nil {
		return model.Ticker{}, fmt.Errorf("parse lastPrice %q: %w", raw.LastPrice, err)
	}
	change, err := strconv.ParseFloat(raw.PriceChangePercent, 64)
	if err != nil {
		return model.Ticker{}, fmt.Errorf("parse priceChangePercent %q: %w", raw.PriceChangePercent, err)
	}
	return model.Ticker{LastPrice: last, PriceChangePercent: change}, nil
}

// Klines fetches candles for the window. Binance returns an array of
// arrays: [openTime, open, high, low, close, volume, ...] with numeric
// fields encoded as strings.
func (f *BinanceFetcher) Klines(ctx context.Context, symbol, interval string, start, end time.Time) ([]model.Candle, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("interval", interval)
	params.Set("startTime", strconv.FormatInt(start.UnixMilli(), 10))
	params.Set("endTime", strconv.FormatInt(end.UnixMilli(), 10))
	endpoint := fmt.Sprintf("%s/api/v3/klines?%s", f.BaseURL, params.Encode())

	var rows [][]interface{}
	if err := f.Client.GetJSON(ctx, endpoint, &rows); err != nil {
		return nil, fmt.Errorf("fetch klines: %w", err)
	}

	candles := make([]model.Candle, 0, len(rows))
	for _, row := range rows {
		if len(row) < 6 {
			continue
		}
		openMillis, ok := row[0].(float64)
		if !ok {
			continue
		}
		candles = append(candles, model.Candle{
			OpenTime: time.UnixMilli(int64(openMillis)),
			Open:     parsePrice(row[1]),
			High:     parsePrice(row[2]),
			Low:      parsePrice(row[3]),
			Close:    parsePrice(row[4]),
			Volume:   parsePrice(row[5]),
		})
	}
	return candles, nil
}

func parsePrice(v interface{}) float64 {
	switch n := v.(type) {
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	case float64:
		return n
	default:
		return 0
	}
}
