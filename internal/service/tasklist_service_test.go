package service_test

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

	"github.com/spec-kit/tasklist-service/internal/auth"
	"github.com/spec-kit/tasklist-service/internal/cache"
	"github.com/spec-kit/tasklist-service/internal/events"
	"github.com/spec-kit/tasklist-service/internal/service"
	apperrors "github.com/spec-kit/tasklist-service/pkg/util"
)

func principalFor(id uuid.UUID) *auth.Principal {
	return &auth.Principal{UserID: id, Capability: auth.CapabilityUser}
}

func noCache() *cache.OwnerCache {
	return cache.NewOwnerCache(nil, time.Minute, zap.NewNop())
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	return apperrors.ToDomainError(err).Code
}

func TestTasklistService_Get(t *testing.T) {
	ctx := context.Background()
	tasklists := newFakeTasklistRepo()
	tasks := newFakeTaskRepo()
	svc := service.NewTasklistService(tasklists, tasks, noCache(), newRecordingDispatcher())

	owner := uuid.New()
	created, err := svc.Create(ctx, owner, "groceries", "weekly shopping")
	require.NoError(t, err)

	t.Run("owner reads own tasklist", func(t *testing.T) {
		got, err := svc.Get(ctx, principalFor(owner), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.Tasklist.ID)
		assert.Empty(t, got.Tasks)
	})

	t.Run("missing tasklist is not-found", func(t *testing.T) {
		_, err := svc.Get(ctx, principalFor(owner), uuid.New())
		assert.Equal(t, "NOT_FOUND", errCode(t, err))
	})

	t.Run("missing tasklist is not-found even for anonymous caller", func(t *testing.T) {
		_, err := svc.Get(ctx, nil, uuid.New())
		assert.Equal(t, "NOT_FOUND", errCode(t, err))
	})

	t.Run("foreign tasklist is forbidden", func(t *testing.T) {
		_, err := svc.Get(ctx, principalFor(uuid.New()), created.ID)
		assert.Equal(t, "FORBIDDEN", errCode(t, err))
	})

	t.Run("anonymous caller is forbidden", func(t *testing.T) {
		_, err := svc.Get(ctx, nil, created.ID)
		assert.Equal(t, "FORBIDDEN", errCode(t, err))
	})
}

func TestTasklistService_Update(t *testing.T) {
	ctx := context.Background()
	svc := service.NewTasklistService(newFakeTasklistRepo(), newFakeTaskRepo(), noCache(), newRecordingDispatcher())

	owner := uuid.New()
	created, err := svc.Create(ctx, owner, "groceries", "weekly shopping")
	require.NoError(t, err)

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		name := "errands"
		updated, err := svc.Update(ctx, principalFor(owner), service.TasklistUpdateInput{ID: created.ID, Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "errands", updated.Name)
		assert.Equal(t, "weekly shopping", updated.Description)
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		name := "hijacked"
		_, err := svc.Update(ctx, principalFor(uuid.New()), service.TasklistUpdateInput{ID: created.ID, Name: &name})
		assert.Equal(t, "FORBIDDEN", errCode(t, err))
	})

	t.Run("missing tasklist is not-found", func(t *testing.T) {
		name := "whatever"
		_, err := svc.Update(ctx, principalFor(owner), service.TasklistUpdateInput{ID: uuid.New(), Name: &name})
		assert.Equal(t, "NOT_FOUND", errCode(t, err))
	})
}

func TestTasklistService_Delete_Cascades(t *testing.T) {
	ctx := context.Background()
	tasklists := newFakeTasklistRepo()
	tasks := newFakeTaskRepo()
	dispatcher := newRecordingDispatcher()
	tasklistSvc := service.NewTasklistService(tasklists, tasks, noCache(), dispatcher)
	taskSvc := service.NewTaskService(tasks, tasklists, noCache(), dispatcher)

	owner := uuid.New()
	tasklist, err := tasklistSvc.Create(ctx, owner, "groceries", "")
	require.NoError(t, err)
	task, err := taskSvc.Create(ctx, principalFor(owner), tasklist.ID, "milk", "")
	require.NoError(t, err)

	t.Run("non-owner cannot delete", func(t *testing.T) {
		err := tasklistSvc.Delete(ctx, principalFor(uuid.New()), tasklist.ID)
		assert.Equal(t, "FORBIDDEN", errCode(t, err))
	})

	t.Run("owner delete removes tasklist and its tasks", func(t *testing.T) {
		require.NoError(t, tasklistSvc.Delete(ctx, principalFor(owner), tasklist.ID))

		_, err := tasklistSvc.Get(ctx, principalFor(owner), tasklist.ID)
		assert.Equal(t, "NOT_FOUND", errCode(t, err))
		_, err = taskSvc.Get(ctx, principalFor(owner), task.ID)
		assert.Equal(t, "NOT_FOUND", errCode(t, err))
		assert.Contains(t, dispatcher.types(), events.EventTasklistDeleted)
	})

	t.Run("deleting again is not-found", func(t *testing.T) {
		err := tasklistSvc.Delete(ctx, principalFor(owner), tasklist.ID)
		assert.Equal(t, "NOT_FOUND", errCode(t, err))
	})
}

func TestTasklistService_Delete_InvalidatesOwnerCache(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	owners := cache.NewOwnerCache(client, time.Minute, zap.NewNop())

	tasklists := newFakeTasklistRepo()
	svc := service.NewTasklistService(tasklists, newFakeTaskRepo(), owners, newRecordingDispatcher())

	owner := uuid.New()
	tasklist, err := svc.Create(ctx, owner, "groceries", "")
	require.NoError(t, err)

	cached, ok := owners.Get(ctx, cache.KindTasklist, tasklist.ID)
	require.True(t, ok)
	assert.Equal(t, owner, cached)

	require.NoError(t, svc.Delete(ctx, principalFor(owner), tasklist.ID))
	_, ok = owners.Get(ctx, cache.KindTasklist, tasklist.ID)
	assert.False(t, ok)
}

func TestTasklistService_ListForOwner(t *testing.T) {
	ctx := context.Background()
	tasklists := newFakeTasklistRepo()
	tasks := newFakeTaskRepo()
	dispatcher := newRecordingDispatcher()
	tasklistSvc := service.NewTasklistService(tasklists, tasks, noCache(), dispatcher)
	taskSvc := service.NewTaskService(tasks, tasklists, noCache(), dispatcher)

	owner := uuid.New()
	other := uuid.New()
	mine, err := tasklistSvc.Create(ctx, owner, "mine", "")
	require.NoError(t, err)
	_, err = tasklistSvc.Create(ctx, other, "theirs", "")
	require.NoError(t, err)
	_, err = taskSvc.Create(ctx, principalFor(owner), mine.ID, "milk", "")
	require.NoError(t, err)

	result, err := tasklistSvc.ListForOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, mine.ID, result[0].Tasklist.ID)
	assert.Len(t, result[0].Tasks, 1)
}
