package respond

import (
	"news-proxy/pkg/security/redact"
)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	return redact.Error(err)
}

// SanitizeString masks credential query parameters and URL passwords in s.
// Any extra secrets are replaced verbatim.
func SanitizeString(s string, secrets ...string) string {
	return redact.String(s, secrets...)
}
