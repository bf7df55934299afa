package middleware

import (
	"strings"
)

// WhitelistValidator implements exact-match origin validation.
// Comparison ignores case and a trailing slash.
type WhitelistValidator struct {
	allowedOrigins []string
}

// NewWhitelistValidator creates a WhitelistValidator. Blank entries are dropped.
func NewWhitelistValidator(origins []string) *WhitelistValidator {
	normalized := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin = normalizeOrigin(origin); origin != "" {
			normalized = append(normalized, origin)
		}
	}
	return &WhitelistValidator{allowedOrigins: normalized}
}

// IsAllowed checks if the given origin is in the whitelist.
func (v *WhitelistValidator) IsAllowed(origin string) bool {
	origin = normalizeOrigin(origin)
	if origin == "" {
		return false
	}
	for _, allowed := range v.allowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

// GetAllowedOrigins returns a copy of the normalized whitelist.
func (v *WhitelistValidator) GetAllowedOrigins() []string {
	out := make([]string, len(v.allowedOrigins))
	copy(out, v.allowedOrigins)
	return out
}

// AllowAllValidator accepts every origin. The CORS middleware answers it
// with a literal "*" instead of echoing the origin.
type AllowAllValidator struct{}

// IsAllowed reports true for any non-empty origin.
func (v *AllowAllValidator) IsAllowed(origin string) bool {
	return strings.TrimSpace(origin) != ""
}

// GetAllowedOrigins returns ["*"].
func (v *AllowAllValidator) GetAllowedOrigins() []string {
	return []string{WildcardOrigin}
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
}
