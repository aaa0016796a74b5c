package model

import "time"

// Quote is a single displayed asset quote. Quotes are immutable; each
// refresh cycle produces a fresh slice that replaces the previous one
// wholesale.
type Quote struct {
	Asset     string    `json:"asset"`
	Value     float64   `json:"value"`
	ValueUSD  *float64  `json:"value_usd,omitempty"`
	ChangePct float64   `json:"change_pct"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Candle is one fixed-interval OHLC bar from an exchange.
type Candle struct {
	OpenTime time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	Volume   float64
}

// SeriesPoint is one labeled value in a chart series.
type SeriesPoint struct {
	Label string  `json:"time"`
	Value float64 `json:"value"`
}

// Ticker is a 24h exchange ticker snapshot.
type Ticker struct {
	LastPrice          float64
	PriceChangePercent float64
}

// FXQuote is a spot currency quote.
type FXQuote struct {
	Bid       float64
	PctChange float64
}
