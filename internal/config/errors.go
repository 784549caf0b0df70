package config

import "errors"

// Sentinel kinds for configuration errors.
var (
	ErrEmptyAddr     = errors.New("addr must not be empty")
	ErrEmptyRoster   = errors.New("roster_url must not be empty")
	ErrInvalidTTL    = errors.New("roster_ttl_seconds must be positive")
	ErrInvalidTokens = errors.New("max_tokens must be positive")
)
