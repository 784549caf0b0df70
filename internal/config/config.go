// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer
//   file and environment on top.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Default roster feed: the published CSV export of the expert sheet.
const defaultRosterURL = "https://docs.google.com/spreadsheets/d/1qP7kXhQnYzBv0dTgR4w/export?format=csv"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// AnthropicAPIKey authenticates against the model provider.
	AnthropicAPIKey string `koanf:"anthropic_api_key"`

	// Model is the provider model identifier used for all phases.
	Model string `koanf:"model"`

	// MaxTokens bounds each completion.
	MaxTokens int `koanf:"max_tokens"`

	// RosterURL is the CSV export endpoint of the expert sheet.
	RosterURL string `koanf:"roster_url"`

	// RosterTTLSeconds is the roster staleness window.
	RosterTTLSeconds int `koanf:"roster_ttl_seconds"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":8080",
		Model:            "claude-sonnet-4-5-20250929",
		MaxTokens:        2048,
		RosterURL:        defaultRosterURL,
		RosterTTLSeconds: 300,
	}
}
