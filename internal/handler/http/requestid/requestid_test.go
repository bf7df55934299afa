package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	assert.Equal(t, "", FromContext(context.Background()))
	assert.Equal(t, "abc", FromContext(WithRequestID(context.Background(), "abc")))

	ctx := context.WithValue(context.Background(), RequestIDKey, 42)
	assert.Equal(t, "", FromContext(ctx), "non-string values are ignored")
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		incoming   string
		wantEchoed bool
	}{
		{name: "propagates caller id", incoming: "client-req-0001", wantEchoed: true},
		{name: "generates when absent", incoming: "", wantEchoed: false},
		{name: "rejects whitespace", incoming: "id with spaces", wantEchoed: false},
		{name: "rejects newline injection", incoming: "abc\nlevel=ERROR", wantEchoed: false},
		{name: "rejects oversized", incoming: strings.Repeat("a", maxRequestIDLength+1), wantEchoed: false},
		{name: "accepts max length", incoming: strings.Repeat("a", maxRequestIDLength), wantEchoed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			header := rr.Header().Get(RequestIDHeader)
			assert.Equal(t, seen, header, "context and header must agree")
			if tt.wantEchoed {
				assert.Equal(t, tt.incoming, header)
				return
			}
			_, err := uuid.Parse(header)
			require.NoError(t, err, "generated id should be a UUID")
		})
	}
}

func TestMiddleware_UniquePerRequest(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	ids := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		ids[rr.Header().Get(RequestIDHeader)] = struct{}{}
	}
	assert.Len(t, ids, 50)
}
