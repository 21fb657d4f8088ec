package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/tasklist-service/internal/auth"
	"github.com/spec-kit/tasklist-service/internal/cache"
	"github.com/spec-kit/tasklist-service/internal/domain"
	"github.com/spec-kit/tasklist-service/internal/events"
	"github.com/spec-kit/tasklist-service/internal/repository"
	apperrors "github.com/spec-kit/tasklist-service/pkg/util"
)

// TasklistWithTasks bundles a tasklist with its tasks for read responses.
type TasklistWithTasks struct {
	Tasklist domain.Tasklist
	Tasks    []domain.Task
}

// TasklistUpdateInput carries partial update fields; nil leaves a field unchanged.
type TasklistUpdateInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
}

// TasklistService implements tasklist CRUD with the ownership rule applied
// after every existence check.
type TasklistService struct {
	tasklists repository.TasklistRepository
	tasks     repository.TaskRepository
	owners    *cache.OwnerCache
	events    events.Dispatcher
}

// NewTasklistService builds the service.
func NewTasklistService(tasklists repository.TasklistRepository, tasks repository.TaskRepository, owners *cache.OwnerCache, dispatcher events.Dispatcher) *TasklistService {
	return &TasklistService{tasklists: tasklists, tasks: tasks, owners: owners, events: dispatcher}
}

// ListForOwner returns all tasklists of the caller with their tasks.
func (s *TasklistService) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]TasklistWithTasks, error) {
	tasklists, err := s.tasklists.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]TasklistWithTasks, 0, len(tasklists))
	for _, tasklist := range tasklists {
		tasks, err := s.tasks.ListByTasklist(ctx, tasklist.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, TasklistWithTasks{Tasklist: tasklist, Tasks: tasks})
	}
	return result, nil
}

// Get fetches a tasklist the caller owns.
func (s *TasklistService) Get(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*TasklistWithTasks, error) {
	tasklist, err := s.tasklists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("tasklist", map[string]any{"id": id.String()})
		}
		return nil, err
	}
	if err := auth.Authorize(principal, tasklist.OwnerID); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByTasklist(ctx, tasklist.ID)
	if err != nil {
		return nil, err
	}
	return &TasklistWithTasks{Tasklist: *tasklist, Tasks: tasks}, nil
}

// Create stores a new tasklist owned by the caller.
func (s *TasklistService) Create(ctx context.Context, ownerID uuid.UUID, name, description string) (*domain.Tasklist, error) {
	tasklist := &domain.Tasklist{OwnerID: ownerID, Name: name, Description: description}
	if err := s.tasklists.Create(ctx, tasklist); err != nil {
		return nil, err
	}

	s.owners.Set(ctx, cache.KindTasklist, tasklist.ID, ownerID)
	_ = s.events.Publish(ctx, events.Event{
		Type:       events.EventTasklistCreated,
		ActorID:    ownerID,
		ResourceID: tasklist.ID,
	})
	return tasklist, nil
}

// Update applies a partial update to a tasklist the caller owns.
func (s *TasklistService) Update(ctx context.Context, principal *auth.Principal, input TasklistUpdateInput) (*domain.Tasklist, error) {
	tasklist, err := s.tasklists.GetByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("tasklist", map[string]any{"id": input.ID.String()})
		}
		return nil, err
	}
	if err := auth.Authorize(principal, tasklist.OwnerID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		tasklist.Name = *input.Name
	}
	if input.Description != nil {
		tasklist.Description = *input.Description
	}
	if err := s.tasklists.Update(ctx, tasklist); err != nil {
		return nil, err
	}

	_ = s.events.Publish(ctx, events.Event{
		Type:       events.EventTasklistUpdated,
		ActorID:    tasklist.OwnerID,
		ResourceID: tasklist.ID,
	})
	return tasklist, nil
}

// Delete removes a tasklist the caller owns together with its tasks.
func (s *TasklistService) Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error {
	ownerID, err := s.resourceOwner(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(principal, ownerID); err != nil {
		return err
	}

	if err := s.tasks.DeleteByTasklist(ctx, id); err != nil {
		return err
	}
	if err := s.tasklists.Delete(ctx, id); err != nil {
		return err
	}

	s.owners.Invalidate(ctx, cache.KindTasklist, id)
	_ = s.events.Publish(ctx, events.Event{
		Type:       events.EventTasklistDeleted,
		ActorID:    ownerID,
		ResourceID: id,
	})
	return nil
}

func (s *TasklistService) resourceOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if ownerID, ok := s.owners.Get(ctx, cache.KindTasklist, id); ok {
		return ownerID, nil
	}

	ownerID, err := s.tasklists.GetOwnerID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, apperrors.NewNotFound("tasklist", map[string]any{"id": id.String()})
		}
		return uuid.Nil, err
	}

	s.owners.Set(ctx, cache.KindTasklist, id, ownerID)
	return ownerID, nil
}
