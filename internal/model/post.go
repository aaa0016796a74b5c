package model

import "time"

// Post is one diary entry. Field names follow the stored record shape.
type Post struct {
	ID        string    `json:"id"`
	Text      string    `json:"texto"`
	Image     string    `json:"imagem,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// QuoteSnapshot is one recorded quote observation for the history table.
type QuoteSnapshot struct {
	Asset     string    `json:"asset"`
	Value     float64   `json:"value"`
	ValueUSD  float64   `json:"value_usd,omitempty"`
	ChangePct float64   `json:"change_pct"`
	Sentiment int       `json:"sentiment,omitempty"`
	TakenAt   time.Time `json:"taken_at"`
}
