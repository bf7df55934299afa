package provider

import (
	"fmt"
	"net/http"

	"news-proxy/internal/config"
)

// defaultEndpoints maps provider names to their fixed search URL.
var defaultEndpoints = map[string]string{
	config.ProviderNewsAPIAI:  NewsAPIAIEndpoint,
	config.ProviderGNews:      GNewsEndpoint,
	config.ProviderNewsAPI:    NewsAPIEndpoint,
	config.ProviderMediastack: MediastackEndpoint,
	config.ProviderSerpAPI:    SerpAPIEndpoint,
}

// New builds the adapter selected by cfg.Provider. cfg.BaseURL, when set,
// replaces the provider's default endpoint. A nil httpClient is replaced by
// one whose timeout is cfg.Timeout.
func New(cfg config.NewsConfig, httpClient *http.Client) (Provider, error) {
	endpoint, ok := defaultEndpoints[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.Provider)
	}
	if cfg.BaseURL != "" {
		endpoint = cfg.BaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	switch cfg.Provider {
	case config.ProviderGNews:
		return NewGNews(endpoint, cfg.APIKey, httpClient), nil
	case config.ProviderNewsAPI:
		return NewNewsAPI(endpoint, cfg.APIKey, httpClient), nil
	case config.ProviderMediastack:
		return NewMediastack(endpoint, cfg.APIKey, httpClient), nil
	case config.ProviderSerpAPI:
		return NewSerpAPI(endpoint, cfg.APIKey, httpClient), nil
	default:
		return NewNewsAPIAI(endpoint, cfg.APIKey, httpClient), nil
	}
}
