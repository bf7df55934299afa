package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockCORSLogger records the last CORS log entry.
type mockCORSLogger struct {
	infoCount  int
	warnCount  int
	debugCount int
	lastMsg    string
	lastFields map[string]interface{}
}

func (m *mockCORSLogger) Info(msg string, fields map[string]interface{}) {
	m.infoCount++
	m.lastMsg, m.lastFields = msg, fields
}

func (m *mockCORSLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnCount++
	m.lastMsg, m.lastFields = msg, fields
}

func (m *mockCORSLogger) Debug(msg string, fields map[string]interface{}) {
	m.debugCount++
	m.lastMsg, m.lastFields = msg, fields
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func wildcardConfig(t *testing.T, logger CORSLogger) CORSConfig {
	t.Helper()
	cfg, err := NewCORSConfig([]string{"*"}, 600, logger)
	if err != nil {
		t.Fatalf("NewCORSConfig: %v", err)
	}
	return *cfg
}

func whitelistConfig(t *testing.T, logger CORSLogger) CORSConfig {
	t.Helper()
	cfg, err := NewCORSConfig([]string{"http://localhost:3000", "https://news.example"}, 600, logger)
	if err != nil {
		t.Fatalf("NewCORSConfig: %v", err)
	}
	return *cfg
}

func TestCORS_Wildcard_ActualRequest(t *testing.T) {
	tests := []struct {
		name   string
		origin string
	}{
		{name: "browser origin", origin: "https://anything.example"},
		{name: "no origin", origin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := CORS(wildcardConfig(t, &NoOpLogger{}))(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, "/api/news?query=x", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.True(t, called)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
			assert.Equal(t, "X-Request-ID, X-Trace-Id", rec.Header().Get("Access-Control-Expose-Headers"))
		})
	}
}

func TestCORS_Wildcard_Preflight(t *testing.T) {
	logger := &mockCORSLogger{}
	called := false
	handler := CORS(wildcardConfig(t, logger))(okHandler(&called))

	req := httptest.NewRequest(http.MethodOptions, "/api/news", nil)
	req.Header.Set("Origin", "https://anything.example")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, called, "preflight must not reach the handler")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, X-Request-ID", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
	assert.Equal(t, 1, logger.debugCount)
}

func TestCORS_Whitelist_AllowedOrigin(t *testing.T) {
	called := false
	handler := CORS(whitelistConfig(t, &NoOpLogger{}))(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))
}

func TestCORS_Whitelist_DisallowedOrigin(t *testing.T) {
	logger := &mockCORSLogger{}
	called := false
	handler := CORS(whitelistConfig(t, logger))(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, called, "request continues; the browser enforces the policy")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, 1, logger.warnCount)
	assert.Equal(t, "CORS: origin not allowed", logger.lastMsg)
	assert.Equal(t, "http://evil.example", logger.lastFields["origin"])
}

func TestCORS_Whitelist_NoOrigin(t *testing.T) {
	called := false
	handler := CORS(whitelistConfig(t, &NoOpLogger{}))(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news", nil))

	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Vary"))
}

func TestCORS_Whitelist_Preflight(t *testing.T) {
	called := false
	handler := CORS(whitelistConfig(t, nil))(okHandler(&called))

	req := httptest.NewRequest(http.MethodOptions, "/api/news", nil)
	req.Header.Set("Origin", "https://news.example")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://news.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PlainOptionsPassesThrough(t *testing.T) {
	called := false
	handler := CORS(wildcardConfig(t, nil))(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/news", nil))

	assert.True(t, called, "OPTIONS without Access-Control-Request-Method is not a preflight")
}
