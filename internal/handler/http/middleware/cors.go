// Package middleware provides the CORS middleware of the news proxy.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedMethods specifies which HTTP methods are allowed in CORS requests.
	AllowedMethods []string

	// AllowedHeaders specifies which request headers are allowed in CORS requests.
	AllowedHeaders []string

	// ExposedHeaders are readable by browser scripts on actual responses.
	ExposedHeaders []string

	// AllowCredentials is only honoured for echoed origins. Browsers reject
	// credentials together with a wildcard origin.
	AllowCredentials bool

	// MaxAge specifies how long preflight results can be cached (in seconds).
	MaxAge int

	// Validator is the origin validation strategy.
	Validator OriginValidator

	// Logger receives policy violations and preflight details.
	Logger CORSLogger
}

// CORS returns an HTTP middleware that handles CORS for cross-origin requests.
//
// Behavior:
//   - Wildcard validator: Access-Control-Allow-Origin is "*" on every response
//     and credentials are never advertised
//   - Whitelist validator: an allowed Origin is echoed back with Vary: Origin,
//     a disallowed one gets no CORS headers and the request continues
//   - Preflight OPTIONS from an allowed origin returns 204 without calling next
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")
	exposed := strings.Join(config.ExposedHeaders, ", ")
	maxAge := strconv.Itoa(config.MaxAge)
	_, wildcard := config.Validator.(*AllowAllValidator)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if wildcard {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				if origin == "" {
					next.ServeHTTP(w, r)
					return
				}

				w.Header().Add("Vary", "Origin")
				if !config.Validator.IsAllowed(origin) {
					if config.Logger != nil {
						config.Logger.Warn("CORS: origin not allowed", map[string]interface{}{
							"origin":      origin,
							"path":        r.URL.Path,
							"method":      r.Method,
							"remote_addr": r.RemoteAddr,
						})
					}
					next.ServeHTTP(w, r)
					return
				}

				w.Header().Set("Access-Control-Allow-Origin", origin)
				if config.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			// プリフライトリクエスト
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)

				if config.Logger != nil {
					config.Logger.Debug("CORS: preflight request", map[string]interface{}{
						"origin":            origin,
						"requested_method":  r.Header.Get("Access-Control-Request-Method"),
						"requested_headers": r.Header.Get("Access-Control-Request-Headers"),
					})
				}

				w.WriteHeader(http.StatusNoContent)
				return
			}

			if exposed != "" {
				w.Header().Set("Access-Control-Expose-Headers", exposed)
			}
			next.ServeHTTP(w, r)
		})
	}
}
