// Package redact masks credentials in strings that are about to be logged
// or returned to a caller.
package redact

import (
	"regexp"
	"strings"
)

// Mask is the replacement for every redacted value.
const Mask = "****"

var (
	// クエリ文字列に含まれる認証情報
	// apiKey, apikey, api_key, access_key, token, key
	queryCredentialPattern = regexp.MustCompile(`(?i)([?&](?:api_?key|access_key|token|key)=)[^&\s"']+`)

	// URL の userinfo に含まれるパスワード
	userinfoPasswordPattern = regexp.MustCompile(`://([^:/\s]+):([^@/\s]+)@`)
)

// String masks credential query parameters and URL passwords in s.
// Each non-empty secret is additionally replaced wherever it appears.
func String(s string, secrets ...string) string {
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		s = strings.ReplaceAll(s, secret, Mask)
	}

	s = queryCredentialPattern.ReplaceAllString(s, "${1}"+Mask)
	s = userinfoPasswordPattern.ReplaceAllString(s, "://$1:"+Mask+"@")

	return s
}

// Error is String applied to err.Error(). A nil error yields "".
func Error(err error, secrets ...string) string {
	if err == nil {
		return ""
	}
	return String(err.Error(), secrets...)
}
