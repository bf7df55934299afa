package news

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"news-proxy/internal/config"
	"news-proxy/internal/domain/entity"
	"news-proxy/internal/infra/provider"
	"news-proxy/internal/observability/logging"
	"news-proxy/internal/observability/metrics"
)

// Service searches the configured provider and normalizes its results.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	Provider provider.Provider

	// Credentialed is false when the provider API key is missing.
	Credentialed bool

	Language     string
	Country      string
	Limit        int
	DefaultQuery string
}

// NewService creates a Service from the loaded configuration.
func NewService(cfg config.NewsConfig, p provider.Provider) *Service {
	return &Service{
		Provider:     p,
		Credentialed: cfg.HasCredential(),
		Language:     cfg.Language,
		Country:      cfg.Country,
		Limit:        cfg.ResultLimit,
		DefaultQuery: cfg.DefaultQuery,
	}
}

// Search runs one news search.
//
// present reports whether the caller sent the query parameter at all: an
// absent parameter falls back to DefaultQuery while a blank one is rejected.
// The credential check runs first so a missing key fails every request
// without contacting the provider.
func (s *Service) Search(ctx context.Context, term string, present bool) ([]entity.Article, error) {
	name := s.Provider.Name()
	logger := logging.FromContext(ctx).With(slog.String("provider", name))

	if !s.Credentialed {
		metrics.RecordSearch(name, metrics.ResultRejected, 0)
		logger.Error("news provider API key is not configured")
		return nil, ErrMissingCredential
	}

	if !present {
		term = s.DefaultQuery
	} else if strings.TrimSpace(term) == "" {
		metrics.RecordSearch(name, metrics.ResultRejected, 0)
		return nil, ErrQueryRequired
	}

	raw, err := s.Provider.Search(ctx, provider.Query{
		Term:     term,
		Language: s.Language,
		Country:  s.Country,
		Limit:    s.Limit,
	})
	if err != nil {
		metrics.RecordSearch(name, metrics.ResultError, 0)
		return nil, fmt.Errorf("search %s: %w", name, err)
	}

	logger.Debug("news provider items received",
		slog.String("query", term),
		slog.Int("items", len(raw)))

	if len(raw) == 0 {
		metrics.RecordSearch(name, metrics.ResultNoResults, 0)
		return nil, ErrNoResults
	}

	articles := make([]entity.Article, 0, len(raw))
	for _, r := range raw {
		a := entity.NewArticle(r)
		if err := a.Validate(); err != nil {
			metrics.RecordSearch(name, metrics.ResultError, 0)
			return nil, fmt.Errorf("normalize article: %w", err)
		}
		articles = append(articles, a)
	}

	metrics.RecordSearch(name, metrics.ResultOK, len(articles))
	return articles, nil
}
