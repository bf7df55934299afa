package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"news-proxy/internal/config"
	"news-proxy/internal/domain/entity"
)

// NewsAPIAIEndpoint is the NewsAPI.ai article search URL.
const NewsAPIAIEndpoint = "https://api.newsapi.ai/api/v1/search"

// NewsAPIAI searches https://newsapi.ai.
type NewsAPIAI struct {
	client *client
}

// NewNewsAPIAI creates the NewsAPI.ai adapter.
func NewNewsAPIAI(endpoint, apiKey string, httpClient *http.Client) *NewsAPIAI {
	return &NewsAPIAI{client: newClient(config.ProviderNewsAPIAI, endpoint, apiKey, httpClient)}
}

// Name implements Provider.
func (p *NewsAPIAI) Name() string { return config.ProviderNewsAPIAI }

type newsAPIAIArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	Source      struct {
		Title string `json:"title"`
	} `json:"source"`
	PublishedAt string `json:"publishedAt"`
	DateTimePub string `json:"dateTimePub"`
	DateTime    string `json:"dateTime"`
	Date        string `json:"date"`
}

// newsAPIAIArticles accepts both a bare array and the paged
// {"results": [...]} object under "articles".
type newsAPIAIArticles []newsAPIAIArticle

func (a *newsAPIAIArticles) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var paged struct {
			Results []newsAPIAIArticle `json:"results"`
		}
		if err := json.Unmarshal(data, &paged); err != nil {
			return err
		}
		*a = paged.Results
		return nil
	}
	return json.Unmarshal(data, (*[]newsAPIAIArticle)(a))
}

type newsAPIAIResponse struct {
	Articles newsAPIAIArticles `json:"articles"`
}

// Search implements Provider.
func (p *NewsAPIAI) Search(ctx context.Context, q Query) ([]entity.RawArticle, error) {
	params := url.Values{}
	params.Set("apiKey", p.client.credential)
	params.Set("q", q.Term)
	params.Set("language", q.Language)
	params.Set("country", q.Country)
	params.Set("articlesPage", "1")
	params.Set("results", strconv.Itoa(q.Limit))
	params.Set("sortBy", "relevancy")

	var resp newsAPIAIResponse
	if err := p.client.getJSON(ctx, params, &resp); err != nil {
		return nil, err
	}

	out := make([]entity.RawArticle, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		snippet := plainText(a.Description)
		if snippet == "" {
			snippet = truncateRunes(plainText(a.Body), maxSnippetRunes)
		}
		out = append(out, entity.RawArticle{
			Title:       plainText(a.Title),
			Description: snippet,
			URL:         a.URL,
			Image:       a.Image,
			Source:      a.Source.Title,
			PublishedAt: firstNonEmpty(a.PublishedAt, a.DateTimePub, a.DateTime, a.Date),
		})
	}
	return out, nil
}
