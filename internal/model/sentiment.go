package model

// SentimentReading is one entry of the fear/greed index history.
// Value is a 0-100 scalar; Timestamp is unix seconds as reported upstream.
type SentimentReading struct {
	Value           int    `json:"value"`
	Classification  string `json:"value_classification"`
	Timestamp       int64  `json:"timestamp"`
	TimeUntilUpdate int64  `json:"time_until_update,omitempty"`
}
