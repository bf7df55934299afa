package middleware

// OriginValidator decides whether a browser origin may read responses.
type OriginValidator interface {
	// IsAllowed checks if the given origin is permitted for CORS requests.
	// Empty origins return false.
	IsAllowed(origin string) bool

	// GetAllowedOrigins returns a copy of the configured origins for logging.
	GetAllowedOrigins() []string
}

// CORSLogger is an interface for logging CORS-related events.
// Production code uses SlogAdapter; tests use NoOpLogger or a recorder.
type CORSLogger interface {
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Debug(msg string, fields map[string]interface{})
}
