package provider

import (
	"context"
	"net/http"
	"net/url"

	"news-proxy/internal/config"
	"news-proxy/internal/domain/entity"
)

// SerpAPIEndpoint is the SerpApi search URL.
const SerpAPIEndpoint = "https://serpapi.com/search.json"

// SerpAPI searches Google News through https://serpapi.com.
// The google_news engine has no result count parameter; results are
// truncated to Query.Limit after decoding.
type SerpAPI struct {
	client *client
}

// NewSerpAPI creates the SerpApi adapter.
func NewSerpAPI(endpoint, apiKey string, httpClient *http.Client) *SerpAPI {
	return &SerpAPI{client: newClient(config.ProviderSerpAPI, endpoint, apiKey, httpClient)}
}

// Name implements Provider.
func (p *SerpAPI) Name() string { return config.ProviderSerpAPI }

type serpAPINewsResult struct {
	Title          string `json:"title"`
	Snippet        string `json:"snippet"`
	Link           string `json:"link"`
	Thumbnail      string `json:"thumbnail"`
	ThumbnailSmall string `json:"thumbnail_small"`
	Date           string `json:"date"`
	ISODate        string `json:"iso_date"`
	Source         struct {
		Name string `json:"name"`
	} `json:"source"`
	// Story clusters carry their lead story here instead of at the top level.
	Highlight *serpAPINewsResult `json:"highlight"`
}

type serpAPIResponse struct {
	NewsResults []serpAPINewsResult `json:"news_results"`
}

// Search implements Provider.
func (p *SerpAPI) Search(ctx context.Context, q Query) ([]entity.RawArticle, error) {
	params := url.Values{}
	params.Set("engine", "google_news")
	params.Set("api_key", p.client.credential)
	params.Set("q", q.Term)
	params.Set("hl", q.Language)
	params.Set("gl", q.Country)

	var resp serpAPIResponse
	if err := p.client.getJSON(ctx, params, &resp); err != nil {
		return nil, err
	}

	results := resp.NewsResults
	if q.Limit > 0 && len(results) > q.Limit {
		results = results[:q.Limit]
	}

	out := make([]entity.RawArticle, 0, len(results))
	for _, r := range results {
		if r.Title == "" && r.Highlight != nil {
			r = *r.Highlight
		}
		out = append(out, entity.RawArticle{
			Title:       plainText(r.Title),
			Description: plainText(r.Snippet),
			URL:         r.Link,
			Image:       firstNonEmpty(r.Thumbnail, r.ThumbnailSmall),
			Source:      r.Source.Name,
			PublishedAt: firstNonEmpty(r.ISODate, r.Date),
		})
	}
	return out, nil
}
