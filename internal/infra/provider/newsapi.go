package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"news-proxy/internal/config"
	"news-proxy/internal/domain/entity"
)

// NewsAPIEndpoint is the NewsAPI.org "everything" URL.
const NewsAPIEndpoint = "https://newsapi.org/v2/everything"

// NewsAPI searches https://newsapi.org.
// The everything endpoint has no country filter, so Query.Country is unused.
type NewsAPI struct {
	client *client
}

// NewNewsAPI creates the NewsAPI.org adapter.
func NewNewsAPI(endpoint, apiKey string, httpClient *http.Client) *NewsAPI {
	return &NewsAPI{client: newClient(config.ProviderNewsAPI, endpoint, apiKey, httpClient)}
}

// Name implements Provider.
func (p *NewsAPI) Name() string { return config.ProviderNewsAPI }

type newsAPIResponse struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Search implements Provider.
func (p *NewsAPI) Search(ctx context.Context, q Query) ([]entity.RawArticle, error) {
	params := url.Values{}
	params.Set("apiKey", p.client.credential)
	params.Set("q", q.Term)
	params.Set("language", q.Language)
	params.Set("pageSize", strconv.Itoa(q.Limit))
	params.Set("page", "1")
	params.Set("sortBy", "relevancy")

	var resp newsAPIResponse
	if err := p.client.getJSON(ctx, params, &resp); err != nil {
		return nil, err
	}

	out := make([]entity.RawArticle, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		out = append(out, entity.RawArticle{
			Title:       plainText(a.Title),
			Description: plainText(a.Description),
			URL:         a.URL,
			Image:       a.URLToImage,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}
	return out, nil
}
