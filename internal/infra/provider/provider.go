// Package provider contains one adapter per upstream news-search API.
//
// Every adapter performs exactly one GET per Search call through the shared
// HTTP executor in client.go, which handles tracing, metrics, credential
// masking and the translation of failures into StatusError, TransportError
// and ErrDecodeResponse.
package provider

import (
	"context"

	"news-proxy/internal/domain/entity"
)

// Query is the provider-neutral search request.
type Query struct {
	Term     string
	Language string
	Country  string
	Limit    int
}

// Provider searches one upstream news API.
type Provider interface {
	// Name returns the configuration name of the provider, e.g. "gnews".
	Name() string

	// Search issues a single upstream request. An empty or absent result
	// collection is returned as an empty slice with a nil error.
	Search(ctx context.Context, q Query) ([]entity.RawArticle, error)
}
