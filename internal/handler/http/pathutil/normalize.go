// Package pathutil maps request paths to bounded metric labels.
package pathutil

import "strings"

// OtherRoute is the label used for any path the server does not route.
const OtherRoute = "/other"

// routes lists the exact paths served by the API.
var routes = map[string]struct{}{
	"/api/news": {},
	"/health":   {},
	"/live":     {},
	"/metrics":  {},
}

// prefixRoutes lists subtree handlers, matched by prefix.
var prefixRoutes = []struct {
	prefix   string
	template string
}{
	{prefix: "/swagger/", template: "/swagger/*"},
}

// NormalizePath converts a request path to a metrics label.
// Query strings and a trailing slash are ignored. Unknown paths collapse
// into OtherRoute so scanners cannot inflate label cardinality.
//
// Examples:
//
//	NormalizePath("/api/news")              // "/api/news"
//	NormalizePath("/api/news/")             // "/api/news"
//	NormalizePath("/swagger/index.html")    // "/swagger/*"
//	NormalizePath("/wp-login.php")          // "/other"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	for _, p := range prefixRoutes {
		if strings.HasPrefix(path, p.prefix) {
			return p.template
		}
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := routes[path]; ok {
		return path
	}
	return OtherRoute
}

// GetExpectedCardinality returns the number of distinct path labels NormalizePath can produce.
func GetExpectedCardinality() int {
	return len(routes) + len(prefixRoutes) + 1
}
