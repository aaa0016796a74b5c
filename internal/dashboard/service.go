// Package dashboard owns the refresh pipeline: it polls the upstream
// sources, keeps the latest quote snapshot, serves the chart series and
// drives the projection calculator.
package dashboard

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"BitMonitor/internal/market"
	"BitMonitor/internal/model"
	"BitMonitor/internal/period"
	"BitMonitor/internal/poller"
	"BitMonitor/internal/projection"
	"BitMonitor/internal/series"
)

// Broadcaster receives each fresh quote snapshot. Usually the ws hub.
type Broadcaster interface {
	BroadcastQuotes(quotes []model.Quote)
}

// ChartData is the two-currency series for one period.
type ChartData struct {
	Period     string              `json:"period"`
	USD        []model.SeriesPoint `json:"usd"`
	BRL        []model.SeriesPoint `json:"brl"`
	AverageUSD float64             `json:"average_usd"`
	AverageBRL float64             `json:"average_brl"`
}

// Service orchestrates fetching and holds the displayed state.
//
// The displayed quote slice is replaced wholesale on every successful
// cycle, never merged. Cycles overlap when a fetch outlives the polling
// interval; whichever cycle completes last wins.
type Service struct {
	fetcher   market.Fetcher
	rates     market.RateSource
	sentiment market.SentimentSource
	symbol    string
	pair      string
	hub       Broadcaster

	mu     sync.RWMutex
	quotes []model.Quote

	projMu    sync.Mutex
	projInput projection.Input
	projRes   *projection.Result

	quotePoller *poller.Poller
	projPoller  *poller.Poller
	baseCtx     context.Context
}

// NewService wires the fetch pipeline. hub may be nil.
func NewService(fetcher market.Fetcher, rates market.RateSource, sentiment market.SentimentSource,
	symbol, pair string, interval time.Duration, hub Broadcaster) *Service {
	s := &Service{
		fetcher:   fetcher,
		rates:     rates,
		sentiment: sentiment,
		symbol:    symbol,
		pair:      pair,
		hub:       hub,
		baseCtx:   context.Background(),
	}
	s.quotePoller = poller.New(interval, s.refreshCycle)
	s.projPoller = poller.New(interval, s.projectionCycle)
	return s
}

// Start activates the quote poller. The first cycle runs immediately.
func (s *Service) Start(ctx context.Context) {
	s.baseCtx = ctx
	s.quotePoller.Start(ctx)
	log.Printf("[INFO] quote poller started (source: %s)", s.fetcher.Name())
}

// Stop cancels both pollers.
func (s *Service) Stop() {
	s.quotePoller.Stop()
	s.projPoller.Stop()
	log.Println("[INFO] dashboard pollers stopped")
}

func (s *Service) refreshCycle(ctx context.Context) {
	if err := s.RefreshQuotes(ctx); err != nil {
		log.Printf("[ERROR] quote refresh: %v", err)
	}
}

// RefreshQuotes fetches the ticker and the spot rate and replaces the
// displayed quotes.
func (s *Service) RefreshQuotes(ctx context.Context) error {
	ticker, err := s.fetcher.Ticker24h(ctx, s.symbol)
	if err != nil {
		return fmt.Errorf("fetch %s ticker: %w", s.symbol, err)
	}
	fx, err := s.rates.SpotRate(ctx, s.pair)
	if err != nil {
		return fmt.Errorf("fetch %s rate: %w", s.pair, err)
	}
	if ctx.Err() != nil {
		// owner torn down while we were in flight; drop the result
		return ctx.Err()
	}

	now := time.Now()
	btcUSD := ticker.LastPrice
	quotes := []model.Quote{
		{
			Asset:     "Dólar",
			Value:     fx.Bid,
			ChangePct: fx.PctChange,
			UpdatedAt: now,
		},
		{
			Asset:     "Bitcoin",
			Value:     btcUSD * fx.Bid,
			ValueUSD:  &btcUSD,
			ChangePct: ticker.PriceChangePercent,
			UpdatedAt: now,
		},
	}

	s.mu.Lock()
	s.quotes = quotes
	s.mu.Unlock()

	if s.hub != nil {
		s.hub.BroadcastQuotes(quotes)
	}
	return nil
}

// Quotes returns the latest snapshot, empty until the first cycle lands.
func (s *Service) Quotes() []model.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Quote, len(s.quotes))
	copy(out, s.quotes)
	return out
}

// Chart builds the two-currency series for a period. The lookback window
// and sampling interval are derived at call time.
func (s *Service) Chart(ctx context.Context, p period.Period) (*ChartData, error) {
	now := time.Now()
	days := p.Days(now)
	start := now.AddDate(0, 0, -days)

	candles, err := s.fetcher.Klines(ctx, s.symbol, p.Interval(), start, now)
	if err != nil {
		return nil, fmt.Errorf("fetch klines: %w", err)
	}
	usd := series.FromCandles(candles, p.LabelLayout())

	fx, err := s.rates.SpotRate(ctx, s.pair)
	if err != nil {
		return nil, fmt.Errorf("fetch %s rate: %w", s.pair, err)
	}
	brl := series.Convert(usd, fx.Bid)

	return &ChartData{
		Period:     string(p),
		USD:        usd,
		BRL:        brl,
		AverageUSD: series.Average(usd),
		AverageBRL: series.Average(brl),
	}, nil
}

// Sentiment returns the fear/greed history, newest first.
func (s *Service) Sentiment(ctx context.Context, limit int) ([]model.SentimentReading, error) {
	return s.sentiment.History(ctx, limit)
}

// Snapshot builds a history record from the current state, folding in
// the latest sentiment value when available.
func (s *Service) Snapshot(ctx context.Context) (*model.QuoteSnapshot, error) {
	quotes := s.Quotes()
	var btc *model.Quote
	for i := range quotes {
		if quotes[i].Asset == "Bitcoin" {
			btc = &quotes[i]
		}
	}
	if btc == nil {
		return nil, fmt.Errorf("no quote available yet")
	}

	snap := &model.QuoteSnapshot{
		Asset:     btc.Asset,
		Value:     btc.Value,
		ChangePct: btc.ChangePct,
		TakenAt:   time.Now().UTC(),
	}
	if btc.ValueUSD != nil {
		snap.ValueUSD = *btc.ValueUSD
	}
	if readings, err := s.sentiment.History(ctx, 1); err == nil && len(readings) > 0 {
		snap.Sentiment = readings[0].Value
	}
	return snap, nil
}
