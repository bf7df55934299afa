package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"news-proxy/internal/observability/logging"
	"news-proxy/internal/observability/metrics"
	"news-proxy/internal/observability/tracing"
	"news-proxy/pkg/security/redact"
)

const (
	// maxResponseBytes bounds the body read from the provider.
	maxResponseBytes = 5 << 20

	userAgent = "news-proxy/1.0"
)

// client is the HTTP executor shared by all adapters.
type client struct {
	provider   string
	endpoint   string
	credential string
	http       *http.Client
}

func newClient(provider, endpoint, credential string, httpClient *http.Client) *client {
	return &client{
		provider:   provider,
		endpoint:   endpoint,
		credential: credential,
		http:       httpClient,
	}
}

// getJSON performs one GET against the endpoint with params and decodes the
// 2xx body into out.
//
// Returns:
//   - *TransportError: no response was received
//   - *StatusError: the provider answered with a non-2xx status
//   - ErrDecodeResponse (wrapped): the 2xx body is not valid for out
func (c *client) getJSON(ctx context.Context, params url.Values, out any) error {
	target, err := c.buildURL(params)
	if err != nil {
		return fmt.Errorf("build %s request URL: %w", c.provider, err)
	}
	masked := redact.String(target, c.credential)
	logger := logging.FromContext(ctx).With(
		slog.String("provider", c.provider),
		slog.String("upstream_url", masked),
	)

	ctx, span := tracing.StartUpstreamSpan(ctx, c.provider, masked)
	start := time.Now()

	status, body, err := c.do(ctx, target)
	duration := time.Since(start)

	switch {
	case err != nil:
		metrics.RecordUpstreamRequest(c.provider, metrics.OutcomeTransportError, status, duration)
		tracing.EndUpstreamSpan(span, status, err)
		logger.Error("news provider request failed",
			slog.String("error", err.Error()),
			slog.Duration("duration", duration))
		return err

	case status < 200 || status > 299:
		statusErr := &StatusError{
			Provider:   c.provider,
			StatusCode: status,
			Body:       redact.String(summarizeErrorBody(body), c.credential),
		}
		metrics.RecordUpstreamRequest(c.provider, metrics.OutcomeHTTPError, status, duration)
		tracing.EndUpstreamSpan(span, status, statusErr)
		logger.Error("news provider returned an error status",
			slog.Int("status", status),
			slog.String("body", statusErr.Body),
			slog.Duration("duration", duration))
		return statusErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		decodeErr := fmt.Errorf("%w (%s): %v", ErrDecodeResponse, c.provider, err)
		metrics.RecordUpstreamRequest(c.provider, metrics.OutcomeDecodeError, status, duration)
		tracing.EndUpstreamSpan(span, status, decodeErr)
		logger.Error("news provider response could not be decoded",
			slog.Int("status", status),
			slog.Int("bytes", len(body)),
			slog.String("error", err.Error()))
		return decodeErr
	}

	metrics.RecordUpstreamRequest(c.provider, metrics.OutcomeSuccess, status, duration)
	tracing.EndUpstreamSpan(span, status, nil)
	logger.Debug("news provider response received",
		slog.Int("status", status),
		slog.Int("bytes", len(body)),
		slog.Duration("duration", duration))
	return nil
}

// do executes the request and reads the bounded body. A non-nil error is
// always a *TransportError; status is 0 when no response arrived.
func (c *client) do(ctx context.Context, target string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, nil, &TransportError{Provider: c.provider, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Provider: c.provider, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, &TransportError{
			Provider: c.provider,
			Err:      fmt.Errorf("read response body: %w", err),
		}
	}
	return resp.StatusCode, body, nil
}

// buildURL merges params into the endpoint's own query string.
func (c *client) buildURL(params url.Values) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, vs := range params {
		q.Del(k)
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
