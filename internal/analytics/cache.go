package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dcastaneda/mercato-backend/pkg/logger"
	pkgredis "github.com/dcastaneda/mercato-backend/pkg/redis"
)

// cacheStore is the slice of the redis client the dashboard cache needs.
type cacheStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	CacheKey(parts ...string) string
}

// dashboardCache is a best-effort cache-aside layer for the dashboard
// payload. Failures are logged and treated as misses so the engine always
// falls back to a fresh computation.
type dashboardCache struct {
	store cacheStore
	ttl   time.Duration
	logg  *logger.Logger
}

func newDashboardCache(store cacheStore, ttl time.Duration, logg *logger.Logger) *dashboardCache {
	if store == nil || ttl <= 0 {
		return nil
	}
	return &dashboardCache{store: store, ttl: ttl, logg: logg}
}

func (c *dashboardCache) key(storeID uuid.UUID) string {
	return c.store.CacheKey("dashboard", storeID.String())
}

func (c *dashboardCache) Get(ctx context.Context, storeID uuid.UUID) (*VendorDashboard, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.store.Get(ctx, c.key(storeID))
	if err != nil {
		if !errors.Is(err, pkgredis.Nil) {
			c.warn(ctx, "analytics.dashboard_cache.read_failed", err)
		}
		return nil, false
	}
	var payload VendorDashboard
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		c.warn(ctx, "analytics.dashboard_cache.decode_failed", err)
		return nil, false
	}
	return &payload, true
}

func (c *dashboardCache) Put(ctx context.Context, storeID uuid.UUID, payload *VendorDashboard) {
	if c == nil || payload == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		c.warn(ctx, "analytics.dashboard_cache.encode_failed", err)
		return
	}
	if err := c.store.Set(ctx, c.key(storeID), raw, c.ttl); err != nil {
		c.warn(ctx, "analytics.dashboard_cache.write_failed", err)
	}
}

func (c *dashboardCache) warn(ctx context.Context, msg string, err error) {
	if c.logg == nil {
		return
	}
	c.logg.Warn(c.logg.WithField(ctx, "error", err.Error()), msg)
}
