package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_Defaults(t *testing.T) {
	rw := Wrap(httptest.NewRecorder())
	assert.Equal(t, http.StatusOK, rw.StatusCode())
	assert.Equal(t, 0, rw.BytesWritten())
	assert.False(t, rw.HeaderWritten())
}

func TestWrap_Idempotent(t *testing.T) {
	rw := Wrap(httptest.NewRecorder())
	assert.Same(t, rw, Wrap(rw))
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"ok", http.StatusOK},
		{"bad request", http.StatusBadRequest},
		{"not found", http.StatusNotFound},
		{"too many requests", http.StatusTooManyRequests},
		{"internal error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rw := Wrap(rec)
			rw.WriteHeader(tt.status)

			assert.Equal(t, tt.status, rw.StatusCode())
			assert.Equal(t, tt.status, rec.Code)
			assert.True(t, rw.HeaderWritten())
		})
	}
}

func TestResponseWriter_WriteHeader_MultipleCallsIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusNotFound, rw.StatusCode())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	n, err := rw.Write([]byte(`[{"title":"a"}]`))
	assert.NoError(t, err)
	assert.Equal(t, 15, n)

	_, _ = rw.Write([]byte("\n"))

	assert.Equal(t, 16, rw.BytesWritten())
	assert.Equal(t, http.StatusOK, rw.StatusCode(), "implicit 200")
	assert.True(t, rw.HeaderWritten())
	assert.Equal(t, "[{\"title\":\"a\"}]\n", rec.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.Equal(t, http.ResponseWriter(rec), Wrap(rec).Unwrap())
}
