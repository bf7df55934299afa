package config

import (
	"time"

	envcfg "news-proxy/pkg/config"
)

// ServerConfig holds process-level settings of the HTTP server.
type ServerConfig struct {
	// Addr is the listen address. Env: SERVER_ADDR. Default: ":5000"
	Addr string

	// Version is reported by /health. Env: VERSION. Default: "dev"
	Version string

	// ShutdownTimeout bounds graceful shutdown. Env: SHUTDOWN_TIMEOUT. Default: 5s
	ShutdownTimeout time.Duration

	// AllowedOrigins feeds the CORS middleware. "*" allows every origin.
	// Env: CORS_ALLOWED_ORIGINS. Default: ["*"]
	AllowedOrigins []string

	// CORSMaxAge is the preflight cache duration in seconds.
	// Env: CORS_MAX_AGE. Default: 86400
	CORSMaxAge int
}

// LoadServerConfig reads the server settings from the environment.
func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Addr:            envcfg.GetEnvString("SERVER_ADDR", ":5000"),
		Version:         envcfg.GetEnvString("VERSION", "dev"),
		ShutdownTimeout: envcfg.GetEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		AllowedOrigins:  envcfg.GetEnvStringList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		CORSMaxAge:      envcfg.GetEnvInt("CORS_MAX_AGE", 86400),
	}
}
