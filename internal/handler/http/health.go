// Package http provides the shared HTTP layer of the news proxy: health
// endpoints, metrics collection and the access log and recovery middleware.
package http

import (
	"net/http"
	"time"

	"news-proxy/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for the health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "degraded"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthHandler reports the configured news provider and whether its
// credential is present. It never contacts the provider.
type HealthHandler struct {
	Provider             string
	CredentialConfigured bool
	Version              string

	now func() time.Time
}

// ServeHTTP always answers 200 so that a missing credential does not get
// the process restarted; the condition is reported as "degraded".
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := time.Now
	if h.now != nil {
		now = h.now
	}

	providerCheck := CheckStatus{
		Status: "healthy",
		Details: map[string]interface{}{
			"name":                  h.Provider,
			"credential_configured": h.CredentialConfigured,
		},
	}
	status := "healthy"
	if !h.CredentialConfigured {
		providerCheck.Status = "degraded"
		providerCheck.Message = "API key not configured"
		status = "degraded"
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: now().UTC().Format(time.RFC3339),
		Checks:    map[string]CheckStatus{"provider": providerCheck},
		Version:   h.Version,
	})
}

// LiveHandler handles liveness probe requests.
type LiveHandler struct{}

// ServeHTTP always returns 200 OK if the process is able to respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("alive"))
}
