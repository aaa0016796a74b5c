package market

import (
	"context"
	"fmt"
	"strconv"

	"BitMonitor/internal/fetch"
	"BitMonitor/internal/model"
)

// FearGreed implements SentimentSource against the alternative.me index.
type FearGreed struct {
	BaseURL string
	Client  *fetch.Client
}

// NewFearGreed creates a sentiment index source.
func NewFearGreed(baseURL string, client *fetch.Client) *FearGreed {
	return &FearGreed{BaseURL: baseURL, Client: client}
}

// fngEntry is one upstream history entry; value and timestamp are strings.
type fngEntry struct {
	Value           string `json:"value"`
	Classification  string `json:"value_classification"`
	Timestamp       string `json:"timestamp"`
	TimeUntilUpdate string `json:"time_until_update"`
}

// History fetches the most recent readings, newest first.
func (f *FearGreed) History(ctx context.Context, limit int) ([]model.SentimentReading, error) {
	endpoint := fmt.Sprintf("%s/fng/?limit=%d", f.BaseURL, limit)

	var raw struct {
		Data []fngEntry `json:"data"`
	}
	if err := f.Client.GetJSON(ctx, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("fetch sentiment index: %w", err)
	}
	if len(raw.Data) == 0 {
		return nil, fmt.Errorf("sentiment index: no data returned")
	}

	readings := make([]model.SentimentReading, 0, len(raw.Data))
	for _, e := range raw.Data {
		value, err := strconv.Atoi(e.Value)
		if err != nil {
			continue
		}
		ts, _ := strconv.ParseInt(e.Timestamp, 10, 64)
		until, _ := strconv.ParseInt(e.TimeUntilUpdate, 10, 64)
		readings = append(readings, model.SentimentReading{
			Value:           value,
			Classification:  e.Classification,
			Timestamp:       ts,
			TimeUntilUpdate: until,
		})
	}
	return readings, nil
}
