package feeds

import (
	"math/rand"
	"sync"

	"BitMonitor/internal/model"
)

// etfListings names the tracked US spot Bitcoin ETFs.
var etfListings = []struct {
	Symbol string
	Name   string
}{
	{"IBIT", "BlackRock Bitcoin ETF"},
	{"FBTC", "Fidelity Wise Origin Bitcoin Fund"},
	{"ARKB", "ARK 21Shares Bitcoin ETF"},
	{"BITB", "Bitwise Bitcoin ETF"},
}

// ETFTable produces simulated quotes for the ETF table. No real ETF feed
// is wired; values are regenerated on each refresh, matching the
// dashboard's placeholder behavior.
type ETFTable struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewETFTable creates a table with the given random seed.
func NewETFTable(seed int64) *ETFTable {
	return &ETFTable{rng: rand.New(rand.NewSource(seed))}
}

// Quotes returns one simulated quote per listing.
func (t *ETFTable) Quotes() []model.ETFQuote {
	t.mu.Lock()
	defer t.mu.Unlock()

	quotes := make([]model.ETFQuote, 0, len(etfListings))
	for _, l := range etfListings {
		quotes = append(quotes, model.ETFQuote{
			Symbol: l.Symbol,
			Name:   l.Name,
			Price:  t.rng.Float64()*50000 + 40000,
			Change: t.rng.Float64()*4 - 2,
			Volume: t.rng.Float64() * 1000000,
			AUM:    t.rng.Float64() * 2000000000,
		})
	}
	return quotes
}
