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

// TaskUpdateInput carries partial update fields; nil leaves a field unchanged.
type TaskUpdateInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
}

// TaskService implements task CRUD with the ownership rule applied after
// every existence check.
type TaskService struct {
	tasks     repository.TaskRepository
	tasklists repository.TasklistRepository
	owners    *cache.OwnerCache
	events    events.Dispatcher
}

// NewTaskService builds the service.
func NewTaskService(tasks repository.TaskRepository, tasklists repository.TasklistRepository, owners *cache.OwnerCache, dispatcher events.Dispatcher) *TaskService {
	return &TaskService{tasks: tasks, tasklists: tasklists, owners: owners, events: dispatcher}
}

// ListForOwner returns all tasks of the caller.
func (s *TaskService) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	return s.tasks.ListByOwner(ctx, ownerID)
}

// Get fetches a task the caller owns.
func (s *TaskService) Get(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("task", map[string]any{"id": id.String()})
		}
		return nil, err
	}
	if err := auth.Authorize(principal, task.OwnerID); err != nil {
		return nil, err
	}
	return task, nil
}

// Create stores a new task inside a tasklist the caller owns. The parent
// tasklist is checked for existence first, then for ownership.
func (s *TaskService) Create(ctx context.Context, principal *auth.Principal, tasklistID uuid.UUID, name, description string) (*domain.Task, error) {
	tasklist, err := s.tasklists.GetByID(ctx, tasklistID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("tasklist", map[string]any{"id": tasklistID.String()})
		}
		return nil, err
	}
	if err := auth.Authorize(principal, tasklist.OwnerID); err != nil {
		return nil, err
	}

	task := &domain.Task{
		OwnerID:     principal.UserID,
		TasklistID:  tasklist.ID,
		Name:        name,
		Description: description,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	s.owners.Set(ctx, cache.KindTask, task.ID, task.OwnerID)
	_ = s.events.Publish(ctx, events.Event{
		Type:       events.EventTaskCreated,
		ActorID:    task.OwnerID,
		ResourceID: task.ID,
	})
	return task, nil
}

// Update applies a partial update to a task the caller owns.
func (s *TaskService) Update(ctx context.Context, principal *auth.Principal, input TaskUpdateInput) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("task", map[string]any{"id": input.ID.String()})
		}
		return nil, err
	}
	if err := auth.Authorize(principal, task.OwnerID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	_ = s.events.Publish(ctx, events.Event{
		Type:       events.EventTaskUpdated,
		ActorID:    task.OwnerID,
		ResourceID: task.ID,
	})
	return task, nil
}

// Delete removes a task the caller owns.
func (s *TaskService) Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error {
	ownerID, err := s.resourceOwner(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(principal, ownerID); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	s.owners.Invalidate(ctx, cache.KindTask, id)
	_ = s.events.Publish(ctx, events.Event{
		Type:       events.EventTaskDeleted,
		ActorID:    ownerID,
		ResourceID: id,
	})
	return nil
}

func (s *TaskService) resourceOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if ownerID, ok := s.owners.Get(ctx, cache.KindTask, id); ok {
		return ownerID, nil
	}

	ownerID, err := s.tasks.GetOwnerID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, apperrors.NewNotFound("task", map[string]any{"id": id.String()})
		}
		return uuid.Nil, err
	}

	s.owners.Set(ctx, cache.KindTask, id, ownerID)
	return ownerID, nil
}
