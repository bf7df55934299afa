package news

import (
	"errors"
	"net/http"

	"news-proxy/internal/infra/provider"
)

// Response body keys.
const (
	KeyError   = "error"
	KeyMessage = "message"
)

// Caller-facing messages.
const (
	MsgQueryRequired     = "Query parameter 'query' is required"
	MsgMissingCredential = "Server configuration error: the news provider API key was not found in the backend"
	MsgNoResults         = "No news found for this search, or the news provider returned no articles. Check the query or your plan limits."
	MsgInternal          = "internal server error"
)

// passThroughStatuses are upstream codes returned to the caller unchanged.
// Every other upstream error status becomes 500.
var passThroughStatuses = map[int]bool{
	http.StatusUnauthorized:    true,
	http.StatusForbidden:       true,
	http.StatusTooManyRequests: true,
}

// Outcome is the HTTP translation of a search error.
type Outcome struct {
	Status  int
	Key     string
	Message string
	// Internal marks unclassified failures whose details must only be logged.
	Internal bool
}

// Classify maps an error returned by Service.Search to its HTTP outcome.
//
//	ErrQueryRequired              400 error
//	ErrMissingCredential          500 error
//	ErrNoResults                  404 message
//	*StatusError 401/403/429      same code, error
//	*StatusError other            500 error
//	*TransportError               500 error
//	anything else                 500 error (generic)
func Classify(err error) Outcome {
	var (
		statusErr    *provider.StatusError
		transportErr *provider.TransportError
	)

	switch {
	case err == nil:
		return Outcome{Status: http.StatusOK}
	case errors.Is(err, ErrQueryRequired):
		return Outcome{Status: http.StatusBadRequest, Key: KeyError, Message: MsgQueryRequired}
	case errors.Is(err, ErrMissingCredential):
		return Outcome{Status: http.StatusInternalServerError, Key: KeyError, Message: MsgMissingCredential}
	case errors.Is(err, ErrNoResults):
		return Outcome{Status: http.StatusNotFound, Key: KeyMessage, Message: MsgNoResults}
	case errors.As(err, &statusErr):
		status := http.StatusInternalServerError
		if passThroughStatuses[statusErr.StatusCode] {
			status = statusErr.StatusCode
		}
		return Outcome{Status: status, Key: KeyError, Message: statusErr.Error()}
	case errors.As(err, &transportErr):
		return Outcome{Status: http.StatusInternalServerError, Key: KeyError, Message: transportErr.Error()}
	default:
		return Outcome{Status: http.StatusInternalServerError, Key: KeyError, Message: MsgInternal, Internal: true}
	}
}
