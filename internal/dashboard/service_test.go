package dashboard

import (
	"context"
	"testing"
	"time"

	"BitMonitor/internal/market"
	"BitMonitor/internal/model"
	"BitMonitor/internal/period"
	"BitMonitor/internal/projection"
)

func newTestService() *Service {
	return NewService(
		&market.MockFetcher{Price: 100000, ChangePct: 2.61},
		&market.MockRateSource{Rate: 5.20, PctChange: -0.14},
		&market.MockSentimentSource{Readings: []model.SentimentReading{{Value: 72, Classification: "Greed"}}},
		"BTCUSDT", "USD-BRL", time.Hour, nil,
	)
}

func TestRefreshQuotes(t *testing.T) {
	s := newTestService()
	if len(s.Quotes()) != 0 {
		t.Fatal("expected no quotes before first refresh")
	}
	if err := s.RefreshQuotes(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	quotes := s.Quotes()
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
	if quotes[0].Asset != "Dólar" || quotes[0].Value != 5.20 {
		t.Errorf("unexpected fx quote: %+v", quotes[0])
	}
	btc := quotes[1]
	if btc.Asset != "Bitcoin" {
		t.Fatalf("unexpected asset %q", btc.Asset)
	}
	if btc.Value != 520000 {
		t.Errorf("expected converted value 520000, got %v", btc.Value)
	}
	if btc.ValueUSD == nil || *btc.ValueUSD != 100000 {
		t.Errorf("expected USD value 100000, got %v", btc.ValueUSD)
	}
	if btc.ChangePct != 2.61 {
		t.Errorf("expected change 2.61, got %v", btc.ChangePct)
	}
}

func TestRefreshQuotes_ReplacedWholesale(t *testing.T) {
	s := newTestService()
	if err := s.RefreshQuotes(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	first := s.Quotes()

	s.fetcher.(*market.MockFetcher).Price = 110000
	if err := s.RefreshQuotes(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	second := s.Quotes()

	if second[1].Value != 110000*5.20 {
		t.Errorf("snapshot not replaced: %v", second[1].Value)
	}
	if first[1].Value != 520000 {
		t.Error("earlier snapshot must stay immutable")
	}
}

func TestRefreshQuotes_TornDownContext(t *testing.T) {
	s := newTestService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.RefreshQuotes(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if len(s.Quotes()) != 0 {
		t.Error("cancelled cycle must not write the snapshot")
	}
}

func TestChart(t *testing.T) {
	s := newTestService()
	data, err := s.Chart(context.Background(), period.FiveDays)
	if err != nil {
		t.Fatalf("chart: %v", err)
	}
	if len(data.USD) == 0 {
		t.Fatal("expected chart points")
	}
	if len(data.USD) != len(data.BRL) {
		t.Fatalf("series length mismatch: %d vs %d", len(data.USD), len(data.BRL))
	}
	for i := range data.USD {
		if data.USD[i].Label != data.BRL[i].Label {
			t.Fatalf("label mismatch at %d", i)
		}
		if data.BRL[i].Value != data.USD[i].Value*5.20 {
			t.Fatalf("conversion mismatch at %d", i)
		}
	}
	if data.AverageUSD != 100000 {
		t.Errorf("expected average 100000, got %v", data.AverageUSD)
	}
}

func TestProjectionLifecycle(t *testing.T) {
	s := newTestService()
	s.Start(context.Background())
	defer s.Stop()

	if _, ok := s.Projection(); ok {
		t.Fatal("no result expected before inputs are set")
	}

	// incomplete inputs: no result, poller inactive
	_, ok := s.SetProjection(projection.Input{Quantity: "0.5"})
	if ok {
		t.Fatal("incomplete inputs must not produce a result")
	}
	if s.projPoller.Running() {
		t.Fatal("poller must not activate on incomplete inputs")
	}

	// wait for the immediate quote cycle so a rate is available
	deadline := time.Now().Add(time.Second)
	for len(s.Quotes()) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("quote poller did not run")
		}
		time.Sleep(time.Millisecond)
	}

	res, ok := s.SetProjection(projection.Input{
		Quantity: "0.5", FuturePrice: "100000", PresentValue: "250000",
	})
	if !ok {
		t.Fatal("expected a result for complete inputs")
	}
	if res.FutureValue != 260000 {
		t.Errorf("future value: expected 260000, got %v", res.FutureValue)
	}
	if res.AbsoluteDelta != 10000 {
		t.Errorf("absolute delta: expected 10000, got %v", res.AbsoluteDelta)
	}
	if res.PercentDelta != 4 {
		t.Errorf("percent delta: expected 4, got %v", res.PercentDelta)
	}
	if !s.projPoller.Running() {
		t.Fatal("poller must activate once inputs are complete")
	}

	// clearing one field deactivates and drops the result
	_, ok = s.SetProjection(projection.Input{
		Quantity: "0.5", FuturePrice: "", PresentValue: "250000",
	})
	if ok {
		t.Fatal("result must be absent after clearing a field")
	}
	if s.projPoller.Running() {
		t.Fatal("poller must deactivate when an input is cleared")
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestService()
	if _, err := s.Snapshot(context.Background()); err == nil {
		t.Fatal("expected error before first refresh")
	}
	if err := s.RefreshQuotes(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	snap, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Asset != "Bitcoin" || snap.ValueUSD != 100000 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if snap.Sentiment != 72 {
		t.Errorf("expected sentiment 72, got %d", snap.Sentiment)
	}
}
