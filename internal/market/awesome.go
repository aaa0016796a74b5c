package market

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"BitMonitor/internal/fetch"
	"BitMonitor/internal/model"
)

// AwesomeFX implements RateSource against the AwesomeAPI currency quotes.
type AwesomeFX struct {
	BaseURL string
	Client  *fetch.Client
}

// NewAwesomeFX creates an FX quote source.
func NewAwesomeFX(baseURL string, client *fetch.Client) *AwesomeFX {
	return &AwesomeFX{BaseURL: baseURL, Client: client}
}

// awesomeQuote is one pair entry. The response is keyed by the pair name
// without the dash ("USD-BRL" -> "USDBRL"); numeric fields are strings.
type awesomeQuote struct {
	Bid       string `json:"bid"`
	PctChange string `json:"pctChange"`
}

// SpotRate fetches the current quote for a pair such as "USD-BRL".
func (f *AwesomeFX) SpotRate(ctx context.Context, pair string) (model.FXQuote, error) {
	endpoint := fmt.Sprintf("%s/json/last/%s", f.BaseURL, pair)

	var raw map[string]awesomeQuote
	if err := f.Client.GetJSON(ctx, endpoint, &raw); err != nil {
		return model.FXQuote{}, fmt.Errorf("fetch fx quote: %w", err)
	}

	key := strings.ReplaceAll(pair, "-", "")
	quote, ok := raw[key]
	if !ok {
		return model.FXQuote{}, fmt.Errorf("fx quote for %s not found in response", pair)
	}
	bid, err := strconv.ParseFloat(quote.Bid, 64)
	if err != nil {
		return model.FXQuote{}, fmt.Errorf("parse bid %q: %w", quote.Bid, err)
	}
	pct, err := strconv.ParseFloat(quote.PctChange, 64)
	if err != nil {
		return model.FXQuote{}, fmt.Errorf("parse pctChange %q: %w", quote.PctChange, err)
	}
	return model.FXQuote{Bid: bid, PctChange: pct}, nil
}
