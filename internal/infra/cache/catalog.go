package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pistachiohut/internal/infra"
	"pistachiohut/internal/pkg/config"
	"pistachiohut/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const snapshotKey = "catalog:snapshot"

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Addr})
}

// CatalogSnapshotCache keeps the last merged catalog as a single JSON blob.
// It is a point-in-time snapshot: written through on every catalog rebuild,
// invalidated on discount changes, read only when the product store is
// unreachable, and never consulted as a source of truth for mutations.
type CatalogSnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCatalogSnapshotCache(rdb *redis.Client, cfg config.RedisConfig) *CatalogSnapshotCache {
	return &CatalogSnapshotCache{rdb: rdb, ttl: cfg.SnapshotTTL}
}

func (c *CatalogSnapshotCache) Store(ctx context.Context, products []*queries.ProductView) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return infra.WrapRepoErr("failed to encode catalog snapshot", err)
	}
	if err := c.rdb.Set(ctx, snapshotKey, payload, c.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to store catalog snapshot", err)
	}
	return nil
}

func (c *CatalogSnapshotCache) Load(ctx context.Context) ([]*queries.ProductView, error) {
	payload, err := c.rdb.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("catalog snapshot missing", err, infra.KindCacheMiss)
		}
		return nil, infra.WrapRepoErr("failed to load catalog snapshot", err)
	}
	var products []*queries.ProductView
	if err := json.Unmarshal(payload, &products); err != nil {
		return nil, infra.WrapRepoErr("failed to decode catalog snapshot", err)
	}
	return products, nil
}

func (c *CatalogSnapshotCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, snapshotKey).Err(); err != nil {
		return infra.WrapRepoErr("failed to invalidate catalog snapshot", err)
	}
	return nil
}
