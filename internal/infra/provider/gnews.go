package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"news-proxy/internal/config"
	"news-proxy/internal/domain/entity"
)

// GNewsEndpoint is the GNews v4 search URL.
const GNewsEndpoint = "https://gnews.io/api/v4/search"

// GNews searches https://gnews.io.
type GNews struct {
	client *client
}

// NewGNews creates the GNews adapter.
func NewGNews(endpoint, apiKey string, httpClient *http.Client) *GNews {
	return &GNews{client: newClient(config.ProviderGNews, endpoint, apiKey, httpClient)}
}

// Name implements Provider.
func (p *GNews) Name() string { return config.ProviderGNews }

type gnewsResponse struct {
	TotalArticles int `json:"totalArticles"`
	Articles      []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Image       string `json:"image"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Search implements Provider.
func (p *GNews) Search(ctx context.Context, q Query) ([]entity.RawArticle, error) {
	params := url.Values{}
	params.Set("apikey", p.client.credential)
	params.Set("q", q.Term)
	params.Set("lang", q.Language)
	params.Set("country", q.Country)
	params.Set("max", strconv.Itoa(q.Limit))
	params.Set("sortby", "relevance")

	var resp gnewsResponse
	if err := p.client.getJSON(ctx, params, &resp); err != nil {
		return nil, err
	}

	out := make([]entity.RawArticle, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		out = append(out, entity.RawArticle{
			Title:       plainText(a.Title),
			Description: plainText(a.Description),
			URL:         a.URL,
			Image:       a.Image,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}
	return out, nil
}
