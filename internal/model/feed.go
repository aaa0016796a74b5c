package model

// Article is a news item from the news feed.
type Article struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      Source `json:"source"`
	PublishedAt string `json:"publishedAt"`
	Description string `json:"description"`
	ImageURL    string `json:"urlToImage,omitempty"`
}

// Source names the outlet an article came from.
type Source struct {
	Name string `json:"name"`
}

// Event is one calendar entry.
type Event struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	URL         string `json:"url"`
}

// Place is a crypto-accepting merchant shown on the map.
type Place struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	City        string  `json:"cidade"`
	Description string  `json:"descricao"`
}

// ETFQuote is one row of the spot-ETF table.
type ETFQuote struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
	Volume float64 `json:"volume"`
	AUM    float64 `json:"aum"`
}
