package service_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/tasklist-service/internal/domain"
	"github.com/spec-kit/tasklist-service/internal/events"
)

var errDuplicate = errors.New("duplicate name")

// In-memory repository fakes standing in for the postgres implementations.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Name == user.Name {
			return errDuplicate
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByName(_ context.Context, name string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Name == name {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakeTasklistRepo struct {
	mu        sync.Mutex
	tasklists map[uuid.UUID]*domain.Tasklist
}

func newFakeTasklistRepo() *fakeTasklistRepo {
	return &fakeTasklistRepo{tasklists: make(map[uuid.UUID]*domain.Tasklist)}
}

func (r *fakeTasklistRepo) Create(_ context.Context, tasklist *domain.Tasklist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tasklist.ID = uuid.New()
	tasklist.CreatedAt = time.Now()
	tasklist.UpdatedAt = tasklist.CreatedAt
	clone := *tasklist
	r.tasklists[tasklist.ID] = &clone
	return nil
}

func (r *fakeTasklistRepo) Update(_ context.Context, tasklist *domain.Tasklist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasklists[tasklist.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *tasklist
	r.tasklists[tasklist.ID] = &clone
	return nil
}

func (r *fakeTasklistRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Tasklist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tasklist, ok := r.tasklists[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *tasklist
	return &clone, nil
}

func (r *fakeTasklistRepo) GetOwnerID(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tasklist, ok := r.tasklists[id]
	if !ok {
		return uuid.Nil, pgx.ErrNoRows
	}
	return tasklist.OwnerID, nil
}

func (r *fakeTasklistRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Tasklist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Tasklist, 0)
	for _, tasklist := range r.tasklists {
		if tasklist.OwnerID == ownerID {
			result = append(result, *tasklist)
		}
	}
	return result, nil
}

func (r *fakeTasklistRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasklists[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.tasklists, id)
	return nil
}

type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*domain.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*domain.Task)}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task.ID = uuid.New()
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *task
	return &clone, nil
}

func (r *fakeTaskRepo) GetOwnerID(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return uuid.Nil, pgx.ErrNoRows
	}
	return task.OwnerID, nil
}

func (r *fakeTaskRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Task, 0)
	for _, task := range r.tasks {
		if task.OwnerID == ownerID {
			result = append(result, *task)
		}
	}
	return result, nil
}

func (r *fakeTaskRepo) ListByTasklist(_ context.Context, tasklistID uuid.UUID) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Task, 0)
	for _, task := range r.tasks {
		if task.TasklistID == tasklistID {
			result = append(result, *task)
		}
	}
	return result, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) DeleteByTasklist(_ context.Context, tasklistID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, task := range r.tasks {
		if task.TasklistID == tasklistID {
			delete(r.tasks, id)
		}
	}
	return nil
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func newRecordingDispatcher() *recordingDispatcher {
	return &recordingDispatcher{}
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) types() []events.EventType {
	d.mu.Lock()
	defer d.mu.Unlock()
	result := make([]events.EventType, 0, len(d.published))
	for _, event := range d.published {
		result = append(result, event.Type)
	}
	return result
}
