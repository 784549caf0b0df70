package config

import (
	"context"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if BOARDROOM_CONFIG is set
//  3. env (prefix BOARDROOM_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("BOARDROOM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: BOARDROOM_ADDR, BOARDROOM_ANTHROPIC_API_KEY, ...
	// Keys map to the koanf struct tags with underscores preserved.
	envProvider := env.Provider("BOARDROOM_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "boardroom_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	switch {
	case cfg.Addr == "":
		return nil, ErrEmptyAddr
	case cfg.RosterURL == "":
		return nil, ErrEmptyRoster
	case cfg.RosterTTLSeconds <= 0:
		return nil, ErrInvalidTTL
	case cfg.MaxTokens <= 0:
		return nil, ErrInvalidTokens
	}
	return &cfg, nil
}
