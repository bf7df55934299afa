// Package news implements the news search use case: credential and query
// checks, the single provider call, normalization into entity.Article and
// the translation of failures into HTTP outcomes.
package news

import "errors"

// Sentinel errors for the news search use case.
var (
	// ErrQueryRequired indicates that the query parameter was sent but blank.
	ErrQueryRequired = errors.New("query parameter is required")

	// ErrMissingCredential indicates that no API key is configured for the
	// selected provider. No upstream call is made.
	ErrMissingCredential = errors.New("news provider credential not configured")

	// ErrNoResults indicates that the provider returned an empty or absent
	// result collection.
	ErrNoResults = errors.New("no news found")
)
