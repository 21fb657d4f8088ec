package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testCache(t *testing.T) *OwnerCache {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewOwnerCache(client, time.Minute, zap.NewNop())
}

func TestOwnerCache_SetGetInvalidate(t *testing.T) {
	ctx := context.Background()
	c := testCache(t)

	resourceID := uuid.New()
	ownerID := uuid.New()

	_, ok := c.Get(ctx, KindTask, resourceID)
	require.False(t, ok)

	c.Set(ctx, KindTask, resourceID, ownerID)
	got, ok := c.Get(ctx, KindTask, resourceID)
	require.True(t, ok)
	assert.Equal(t, ownerID, got)

	// kinds are separate namespaces
	_, ok = c.Get(ctx, KindTasklist, resourceID)
	assert.False(t, ok)

	c.Invalidate(ctx, KindTask, resourceID)
	_, ok = c.Get(ctx, KindTask, resourceID)
	assert.False(t, ok)
}

func TestOwnerCache_NilClientDisabled(t *testing.T) {
	ctx := context.Background()
	c := NewOwnerCache(nil, time.Minute, zap.NewNop())

	c.Set(ctx, KindTask, uuid.New(), uuid.New())
	_, ok := c.Get(ctx, KindTask, uuid.New())
	assert.False(t, ok)
}
