package roster

import (
	"context"
	"sync"
	"time"

	"github.com/boardroom-ai/boardroom/internal/domain/expert"
	"github.com/boardroom-ai/boardroom/pkg/logger"
	"github.com/boardroom-ai/boardroom/pkg/metrics"
)

// defaultTTL is the staleness window for the roster snapshot.
const defaultTTL = 5 * time.Minute

// Cache is the time-bounded snapshot of the expert roster. The snapshot is
// replaced wholesale on each successful refresh; a failed refresh keeps the
// previous snapshot (possibly empty) and does not advance the timestamp, so
// the next read tries again. Refreshes are serialized behind the mutex so
// concurrent reads during a refresh do not trigger duplicate fetches.
type Cache struct {
	mu        sync.Mutex
	records   []expert.Record
	fetchedAt time.Time

	ttl   time.Duration
	now   func() time.Time
	fetch func(ctx context.Context) ([]expert.Record, error)
	log   logger.Logger
}

// NewCache creates a Cache around the given source.
func NewCache(src *Source, opts ...Option) *Cache {
	c := &Cache{
		ttl: defaultTTL,
		now: time.Now,
	}
	if src != nil {
		c.fetch = src.Fetch
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Get().Named("roster")
	}
	return c
}

// Records returns the current roster, refreshing it first when the snapshot
// is stale. A refresh failure degrades to the previous snapshot and never
// surfaces to the caller.
func (c *Cache) Records(ctx context.Context) []expert.Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.records
	}

	if c.fetch == nil {
		c.log.Warn(ctx, "no roster source configured, keeping previous snapshot",
			logger.Int("cached_records", len(c.records)),
		)
		return c.records
	}

	fresh, err := c.fetch(ctx)
	if err != nil {
		metrics.RecordRosterRefreshError()
		c.log.Warn(ctx, "roster refresh failed, keeping previous snapshot",
			logger.Error(err),
			logger.Int("cached_records", len(c.records)),
		)
		return c.records
	}

	c.records = fresh
	c.fetchedAt = c.now()
	metrics.RecordRosterRefresh(len(fresh))
	c.log.Info(ctx, "roster refreshed", logger.Int("records", len(fresh)))
	return c.records
}

// Size returns the number of records in the current snapshot without
// triggering a refresh.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Age returns how old the current snapshot is, or zero when no successful
// refresh has happened yet.
func (c *Cache) Age() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fetchedAt.IsZero() {
		return 0
	}
	return c.now().Sub(c.fetchedAt)
}
