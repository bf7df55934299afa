package middleware

import (
	"fmt"
	"net/url"
	"strings"
)

// WildcardOrigin in the origin list allows every origin.
const WildcardOrigin = "*"

var (
	defaultAllowedMethods = []string{"GET", "OPTIONS"}
	defaultAllowedHeaders = []string{"Content-Type", "X-Request-ID"}
	defaultExposedHeaders = []string{"X-Request-ID", "X-Trace-Id"}
)

// NewCORSConfig builds the CORS policy for the given origin list.
// A list containing "*" selects the permissive wildcard policy; otherwise
// every entry must be a bare http(s) origin and the whitelist policy is used.
func NewCORSConfig(origins []string, maxAge int, logger CORSLogger) (*CORSConfig, error) {
	if maxAge < 0 {
		return nil, fmt.Errorf("CORS max age must be non-negative, got: %d", maxAge)
	}

	config := &CORSConfig{
		AllowedMethods: defaultAllowedMethods,
		AllowedHeaders: defaultAllowedHeaders,
		ExposedHeaders: defaultExposedHeaders,
		MaxAge:         maxAge,
		Logger:         logger,
	}

	for _, origin := range origins {
		if strings.TrimSpace(origin) == WildcardOrigin {
			config.Validator = &AllowAllValidator{}
			return config, nil
		}
	}

	validated := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if err := validateOrigin(origin); err != nil {
			return nil, err
		}
		validated = append(validated, origin)
	}

	if len(validated) == 0 {
		return nil, fmt.Errorf("at least one valid origin must be configured in CORS_ALLOWED_ORIGINS")
	}

	config.Validator = NewWhitelistValidator(validated)
	config.AllowCredentials = true
	return config, nil
}

// validateOrigin accepts scheme://host[:port] only.
func validateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin URL '%s': %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("origin must use http or https scheme: %s", origin)
	}
	if u.Host == "" {
		return fmt.Errorf("origin must include a host: %s", origin)
	}
	if u.Path != "" {
		return fmt.Errorf("origin must not include path or trailing slash: %s", origin)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("origin must not include query string or fragment: %s", origin)
	}
	return nil
}
