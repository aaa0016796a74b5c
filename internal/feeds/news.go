// Package feeds holds the content collaborators: the news client, the
// event calendar, the merchant map places and the ETF table.
package feeds

import (
	"context"
	"fmt"
	"net/url"

	"BitMonitor/internal/fetch"
	"BitMonitor/internal/model"
)

// NewsClient fetches articles from the GNews search API.
type NewsClient struct {
	BaseURL string
	APIKey  string
	Query   string
	Lang    string
	Client  *fetch.Client
}

// NewNewsClient creates a news client.
func NewNewsClient(baseURL, apiKey, query, lang string, client *fetch.Client) *NewsClient {
	return &NewsClient{BaseURL: baseURL, APIKey: apiKey, Query: query, Lang: lang, Client: client}
}

// gnewsArticle is the upstream article shape.
type gnewsArticle struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Image       string `json:"image"`
	PublishedAt string `json:"publishedAt"`
	Source      *struct {
		Name string `json:"name"`
	} `json:"source"`
}

// Latest fetches the current article list. A missing source name is
// replaced with a placeholder; other optional fields pass through empty.
func (n *NewsClient) Latest(ctx context.Context) ([]model.Article, error) {
	params := url.Values{}
	params.Set("q", n.Query)
	params.Set("lang", n.Lang)
	params.Set("token", n.APIKey)
	endpoint := fmt.Sprintf("%s/api/v4/search?%s", n.BaseURL, params.Encode())

	var raw struct {
		Articles []gnewsArticle `json:"articles"`
	}
	if err := n.Client.GetJSON(ctx, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}

	articles := make([]model.Article, 0, len(raw.Articles))
	for _, a := range raw.Articles {
		sourceName := "GNews"
		if a.Source != nil && a.Source.Name != "" {
			sourceName = a.Source.Name
		}
		articles = append(articles, model.Article{
			Title:       a.Title,
			URL:         a.URL,
			Source:      model.Source{Name: sourceName},
			PublishedAt: a.PublishedAt,
			Description: a.Description,
			ImageURL:    a.Image,
		})
	}
	return articles, nil
}
