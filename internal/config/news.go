// Package config loads the application configuration once at start-up.
// Values come from defaults, an optional YAML overlay file and environment
// variables, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	envcfg "news-proxy/pkg/config"
)

// Supported provider names.
const (
	ProviderNewsAPIAI  = "newsapiai"
	ProviderGNews      = "gnews"
	ProviderNewsAPI    = "newsapi"
	ProviderMediastack = "mediastack"
	ProviderSerpAPI    = "serpapi"
)

// credentialEnv maps each provider to the environment variable holding its
// API key or token.
var credentialEnv = map[string]string{
	ProviderNewsAPIAI:  "NEWSAPI_AI_API_KEY",
	ProviderGNews:      "GNEWS_API_KEY",
	ProviderNewsAPI:    "NEWSAPI_API_KEY",
	ProviderMediastack: "MEDIASTACK_ACCESS_KEY",
	ProviderSerpAPI:    "SERPAPI_API_KEY",
}

// ErrUnknownProvider is returned when NEWS_PROVIDER names no supported provider.
var ErrUnknownProvider = errors.New("unknown news provider")

// Bounds for the tunable values.
const (
	MinResultLimit = 1
	MaxResultLimit = 100
	MinTimeout     = 1 * time.Second
	MaxTimeout     = 2 * time.Minute
)

// NewsConfig holds the settings of the news search endpoint.
type NewsConfig struct {
	// Provider selects the upstream adapter (see the Provider* constants).
	// Env: NEWS_PROVIDER. Default: "newsapiai"
	Provider string

	// APIKey is the provider credential. Empty means the endpoint answers
	// every request with a configuration error.
	// Env: the provider specific variable, e.g. NEWSAPI_AI_API_KEY.
	APIKey string

	// BaseURL overrides the provider's fixed search URL.
	// Env: NEWS_PROVIDER_BASE_URL. Default: "" (provider default)
	BaseURL string

	// Language and Country are the fixed language/region preference sent upstream.
	// Env: NEWS_LANGUAGE, NEWS_COUNTRY. Default: "pt", "br"
	Language string
	Country  string

	// DefaultQuery is used when the caller sends no query parameter.
	// Env: NEWS_DEFAULT_QUERY. Default: "notícias mundiais"
	DefaultQuery string

	// ResultLimit is the number of articles requested from the provider.
	// Env: NEWS_RESULT_LIMIT. Default: 10
	ResultLimit int

	// Timeout bounds a single upstream call.
	// Env: NEWS_UPSTREAM_TIMEOUT. Default: 10s
	Timeout time.Duration
}

// DefaultNewsConfig returns the built-in defaults.
func DefaultNewsConfig() NewsConfig {
	return NewsConfig{
		Provider:     ProviderNewsAPIAI,
		Language:     "pt",
		Country:      "br",
		DefaultQuery: "notícias mundiais",
		ResultLimit:  10,
		Timeout:      10 * time.Second,
	}
}

// fileConfig is the YAML overlay layout. Credentials are deliberately absent:
// they are only read from the environment.
type fileConfig struct {
	News struct {
		Provider     string `yaml:"provider"`
		BaseURL      string `yaml:"base_url"`
		Language     string `yaml:"language"`
		Country      string `yaml:"country"`
		DefaultQuery string `yaml:"default_query"`
		ResultLimit  int    `yaml:"result_limit"`
		Timeout      string `yaml:"timeout"`
	} `yaml:"news"`
}

// LoadNewsConfig builds the configuration from defaults, the optional file
// named by NEWS_CONFIG_FILE and the environment, then validates it.
//
// A missing credential is not an error here; callers check HasCredential.
func LoadNewsConfig() (NewsConfig, error) {
	cfg := DefaultNewsConfig()

	if path := envcfg.GetEnvString("NEWS_CONFIG_FILE", ""); path != "" {
		if err := ApplyNewsConfigFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	cfg.Provider = strings.ToLower(envcfg.GetEnvString("NEWS_PROVIDER", cfg.Provider))
	cfg.BaseURL = envcfg.GetEnvString("NEWS_PROVIDER_BASE_URL", cfg.BaseURL)
	cfg.Language = envcfg.GetEnvString("NEWS_LANGUAGE", cfg.Language)
	cfg.Country = envcfg.GetEnvString("NEWS_COUNTRY", cfg.Country)
	cfg.DefaultQuery = envcfg.GetEnvString("NEWS_DEFAULT_QUERY", cfg.DefaultQuery)
	cfg.ResultLimit = envcfg.GetEnvInt("NEWS_RESULT_LIMIT", cfg.ResultLimit)
	cfg.Timeout = envcfg.GetEnvDuration("NEWS_UPSTREAM_TIMEOUT", cfg.Timeout)

	if key, ok := credentialEnv[cfg.Provider]; ok {
		cfg.APIKey, _ = envcfg.LookupEnvSecret(key)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("news configuration validation failed: %w", err)
	}
	return cfg, nil
}

// ApplyNewsConfigFile overlays non-empty values from a YAML file onto cfg.
// The path comes from the operator's environment, not from request input.
func ApplyNewsConfigFile(path string, cfg *NewsConfig) error {
	// #nosec G304 -- path is provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	n := fc.News
	if n.Provider != "" {
		cfg.Provider = strings.ToLower(strings.TrimSpace(n.Provider))
	}
	if n.BaseURL != "" {
		cfg.BaseURL = strings.TrimSpace(n.BaseURL)
	}
	if n.Language != "" {
		cfg.Language = strings.TrimSpace(n.Language)
	}
	if n.Country != "" {
		cfg.Country = strings.TrimSpace(n.Country)
	}
	if n.DefaultQuery != "" {
		cfg.DefaultQuery = strings.TrimSpace(n.DefaultQuery)
	}
	if n.ResultLimit != 0 {
		cfg.ResultLimit = n.ResultLimit
	}
	if n.Timeout != "" {
		d, err := time.ParseDuration(n.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in config file: %w", n.Timeout, err)
		}
		cfg.Timeout = d
	}
	return nil
}

// Validate checks the configuration. The credential is not checked.
func (c NewsConfig) Validate() error {
	if _, ok := credentialEnv[c.Provider]; !ok {
		return fmt.Errorf("%w %q (supported: %s)", ErrUnknownProvider, c.Provider, strings.Join(SupportedProviders(), ", "))
	}
	if err := envcfg.ValidateIntRange(c.ResultLimit, MinResultLimit, MaxResultLimit); err != nil {
		return fmt.Errorf("invalid result limit: %w", err)
	}
	if err := envcfg.ValidateDurationRange(c.Timeout, MinTimeout, MaxTimeout); err != nil {
		return fmt.Errorf("invalid upstream timeout: %w", err)
	}
	if c.Language == "" {
		return errors.New("language is required")
	}
	if c.Country == "" {
		return errors.New("country is required")
	}
	if strings.TrimSpace(c.DefaultQuery) == "" {
		return errors.New("default query is required")
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil {
			return fmt.Errorf("invalid base URL: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("base URL must use http or https scheme: %s", c.BaseURL)
		}
		if u.Host == "" {
			return fmt.Errorf("base URL must include a host: %s", c.BaseURL)
		}
	}
	return nil
}

// HasCredential reports whether a provider credential was configured.
func (c NewsConfig) HasCredential() bool {
	return c.APIKey != ""
}

// CredentialEnv returns the environment variable read for the configured
// provider's credential.
func (c NewsConfig) CredentialEnv() string {
	return credentialEnv[c.Provider]
}

// SupportedProviders returns the provider names in sorted order.
func SupportedProviders() []string {
	names := make([]string, 0, len(credentialEnv))
	for name := range credentialEnv {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
