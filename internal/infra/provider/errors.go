package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"unicode/utf8"

	"news-proxy/pkg/security/redact"

	"github.com/tidwall/gjson"
)

// ErrDecodeResponse is returned when a 2xx body is not the expected JSON document.
var ErrDecodeResponse = errors.New("failed to decode provider response")

// maxErrorBodyBytes bounds the upstream error detail carried in StatusError.
const maxErrorBodyBytes = 500

// StatusError reports a non-2xx response from the provider.
type StatusError struct {
	Provider   string
	StatusCode int
	// Body is the summarised, credential-free upstream error detail.
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("News provider error (%s): status %d - %s", e.Provider, e.StatusCode, e.Body)
}

// TransportError reports a request that never produced a response:
// DNS failure, refused connection, timeout or a body cut short.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Failed to connect to the news provider (%s): %s", e.Provider, redact.Error(e.Err))
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request was abandoned because a deadline passed.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// errorBodyPaths lists where the supported providers put their error text,
// most specific first.
//
//	gnews       {"errors": ["..."]}
//	newsapi     {"status": "error", "code": "...", "message": "..."}
//	mediastack  {"error": {"code": "...", "message": "..."}}
//	newsapiai   {"error": "..."} or {"error": {"info": "..."}}
//	serpapi     {"error": "..."}
var errorBodyPaths = []string{"errors", "message", "error.message", "error.info", "error"}

// summarizeErrorBody extracts the human readable part of an upstream error
// document. Non-JSON bodies are returned as trimmed text. The result is
// truncated to maxErrorBodyBytes.
func summarizeErrorBody(body []byte) string {
	summary := strings.TrimSpace(string(body))

	if gjson.ValidBytes(body) {
		for _, path := range errorBodyPaths {
			if s := resultText(gjson.GetBytes(body, path)); s != "" {
				summary = s
				break
			}
		}
	}

	return truncateBytes(summary, maxErrorBodyBytes)
}

func resultText(r gjson.Result) string {
	switch {
	case !r.Exists():
		return ""
	case r.IsArray():
		parts := make([]string, 0, len(r.Array()))
		for _, item := range r.Array() {
			if s := resultText(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	case r.IsObject():
		return r.Raw
	default:
		return strings.TrimSpace(r.String())
	}
}

// truncateBytes cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncateBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
