package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"news-proxy/internal/config"
	"news-proxy/internal/domain/entity"
)

// MediastackEndpoint is the mediastack live news URL. The free plan only
// serves plain HTTP.
const MediastackEndpoint = "http://api.mediastack.com/v1/news"

// Mediastack searches https://mediastack.com.
type Mediastack struct {
	client *client
}

// NewMediastack creates the mediastack adapter.
func NewMediastack(endpoint, accessKey string, httpClient *http.Client) *Mediastack {
	return &Mediastack{client: newClient(config.ProviderMediastack, endpoint, accessKey, httpClient)}
}

// Name implements Provider.
func (p *Mediastack) Name() string { return config.ProviderMediastack }

type mediastackResponse struct {
	Data []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Image       string `json:"image"`
		Source      string `json:"source"`
		PublishedAt string `json:"published_at"`
	} `json:"data"`
}

// Search implements Provider.
func (p *Mediastack) Search(ctx context.Context, q Query) ([]entity.RawArticle, error) {
	params := url.Values{}
	params.Set("access_key", p.client.credential)
	params.Set("keywords", q.Term)
	params.Set("languages", q.Language)
	params.Set("countries", q.Country)
	params.Set("limit", strconv.Itoa(q.Limit))
	params.Set("sort", "popularity")

	var resp mediastackResponse
	if err := p.client.getJSON(ctx, params, &resp); err != nil {
		return nil, err
	}

	out := make([]entity.RawArticle, 0, len(resp.Data))
	for _, a := range resp.Data {
		out = append(out, entity.RawArticle{
			Title:       plainText(a.Title),
			Description: plainText(a.Description),
			URL:         a.URL,
			Image:       a.Image,
			Source:      a.Source,
			PublishedAt: a.PublishedAt,
		})
	}
	return out, nil
}
