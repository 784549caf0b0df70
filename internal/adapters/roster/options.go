package roster

import (
	"context"
	"net/http"
	"time"

	"github.com/boardroom-ai/boardroom/internal/domain/expert"
	"github.com/boardroom-ai/boardroom/pkg/logger"
)

// SourceOption applies a configuration option to a Source.
type SourceOption func(*Source)

// WithHTTPClient overrides the HTTP client used for feed downloads.
func WithHTTPClient(c *http.Client) SourceOption {
	return func(s *Source) {
		if c != nil {
			s.client = c
		}
	}
}

// Option applies a configuration option to the Cache.
type Option func(*Cache)

// WithTTL sets the staleness window after which a read triggers a refresh.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock injects the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithFetch injects the fetch function, replacing the HTTP source.
func WithFetch(fetch func(ctx context.Context) ([]expert.Record, error)) Option {
	return func(c *Cache) {
		if fetch != nil {
			c.fetch = fetch
		}
	}
}

// WithLogger sets a custom logger for the cache.
func WithLogger(l logger.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}
