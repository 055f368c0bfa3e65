package readstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"salon-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CachedServiceCatalog is a read-through cache around a CatalogProvider.
// Cache failures fall back to the underlying provider; the cache never
// turns a readable catalog into an error.
type CachedServiceCatalog struct {
	inner commands.CatalogProvider
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedServiceCatalog(inner commands.CatalogProvider, rdb *redis.Client, ttl time.Duration) *CachedServiceCatalog {
	return &CachedServiceCatalog{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *CachedServiceCatalog) ServiceByID(ctx context.Context, id uuid.UUID) (*commands.ServiceSnapshot, error) {
	key := "catalog:service:" + id.String()

	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var snap commands.ServiceSnapshot
		if err := json.Unmarshal(data, &snap); err == nil {
			return &snap, nil
		}
		// Corrupt entry, drop it and fall through to the source.
		c.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		slog.Warn("catalog cache read failed", "key", key, "error", err)
	}

	snap, err := c.inner.ServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(snap); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			slog.Warn("catalog cache write failed", "key", key, "error", err)
		}
	}
	return snap, nil
}
