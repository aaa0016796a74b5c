package feeds

import (
	"context"
	"log"
	"sort"

	"BitMonitor/internal/fetch"
	"BitMonitor/internal/model"
)

// fallbackEvents is served whenever the remote calendar is unreachable.
var fallbackEvents = []model.Event{
	{ID: 1, Name: "Bitcoin Pizza Day 2025", Description: "Comemoração anual da primeira compra com Bitcoin.", Date: "2025-05-22", URL: "https://bitcoinpizzaday.com"},
	{ID: 2, Name: "Ethereum Devcon 2025", Description: "Conferência global de desenvolvedores Ethereum.", Date: "2025-10-15", URL: "https://devcon.org"},
	{ID: 3, Name: "Halving do Bitcoin 2028", Description: "Evento que reduz a recompensa dos mineradores pela metade.", Date: "2028-04-20", URL: "https://www.bitcoinblockhalf.com/"},
	{ID: 4, Name: "Binance Blockchain Week 2025", Description: "Evento global sobre blockchain promovido pela Binance.", Date: "2025-06-10", URL: "https://www.binance.com/en/events/binance-blockchain-week"},
	{ID: 5, Name: "Cardano Summit 2025", Description: "Encontro anual da comunidade Cardano.", Date: "2025-09-20", URL: "https://summit.cardano.org/"},
	{ID: 6, Name: "Solana Breakpoint 2025", Description: "Conferência internacional da comunidade Solana.", Date: "2025-11-05", URL: "https://breakpoint.solana.com/"},
	{ID: 7, Name: "Web3 Brasil Conference 2025", Description: "Maior evento de Web3 e cripto do Brasil.", Date: "2025-08-15", URL: "https://web3brasil.com/"},
	{ID: 8, Name: "NFT Rio 2025", Description: "Evento dedicado ao universo dos NFTs no Brasil.", Date: "2025-07-12", URL: "https://nftrio.io/"},
	{ID: 9, Name: "Consensus by CoinDesk 2025", Description: "Um dos maiores eventos de cripto e blockchain do mundo.", Date: "2025-05-29", URL: "https://consensus.coindesk.com/"},
	{ID: 10, Name: "ETHGlobal Hackathon 2025", Description: "Maratona de desenvolvimento focada em Ethereum e Web3.", Date: "2025-09-01", URL: "https://ethglobal.com/"},
}

// EventsClient serves the crypto event calendar. When a remote URL is
// configured it is tried first; any failure falls back to the fixed
// local list.
type EventsClient struct {
	URL    string
	Client *fetch.Client
}

// NewEventsClient creates an events client. url may be empty.
func NewEventsClient(url string, client *fetch.Client) *EventsClient {
	return &EventsClient{URL: url, Client: client}
}

// Upcoming returns the event list sorted by date ascending.
func (e *EventsClient) Upcoming(ctx context.Context) []model.Event {
	events := fallbackEvents
	if e.URL != "" {
		var raw struct {
			Events []model.Event `json:"events"`
		}
		if err := e.Client.GetJSON(ctx, e.URL, &raw); err != nil {
			log.Printf("[WARN] remote events unavailable, using fallback list: %v", err)
		} else if len(raw.Events) > 0 {
			events = raw.Events
		}
	}

	sorted := make([]model.Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })
	return sorted
}
