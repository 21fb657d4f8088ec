package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Resource kinds used as cache key namespaces.
const (
	KindTask     = "task"
	KindTasklist = "tasklist"
)

// OwnerCache memoizes resource owner lookups in Redis. It is advisory: any
// cache failure falls back to the database, and a nil client disables it.
type OwnerCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewOwnerCache builds a cache around an optional redis client.
func NewOwnerCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *OwnerCache {
	return &OwnerCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached owner for a resource, if present.
func (c *OwnerCache) Get(ctx context.Context, kind string, resourceID uuid.UUID) (uuid.UUID, bool) {
	if c == nil || c.client == nil {
		return uuid.Nil, false
	}

	val, err := c.client.Get(ctx, ownerKey(kind, resourceID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("owner cache get failed", zap.Error(err))
		}
		return uuid.Nil, false
	}

	ownerID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false
	}
	return ownerID, true
}

// Set stores the owner of a resource.
func (c *OwnerCache) Set(ctx context.Context, kind string, resourceID, ownerID uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, ownerKey(kind, resourceID), ownerID.String(), c.ttl).Err(); err != nil {
		c.logger.Warn("owner cache set failed", zap.Error(err))
	}
}

// Invalidate drops the cached owner after a resource is deleted.
func (c *OwnerCache) Invalidate(ctx context.Context, kind string, resourceID uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, ownerKey(kind, resourceID)).Err(); err != nil {
		c.logger.Warn("owner cache invalidate failed", zap.Error(err))
	}
}

func ownerKey(kind string, resourceID uuid.UUID) string {
	return "owner:" + kind + ":" + resourceID.String()
}
