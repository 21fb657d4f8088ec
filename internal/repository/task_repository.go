package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/tasklist-service/internal/domain"
)

// TaskRepository defines persistence access for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	GetOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error)
	ListByTasklist(ctx context.Context, tasklistID uuid.UUID) ([]domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTasklist(ctx context.Context, tasklistID uuid.UUID) error
}

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation.
func NewTaskRepository(pool *pgxpool.Pool) TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	const query = `
        INSERT INTO tasks (owner_id, tasklist_id, name, description)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		task.OwnerID,
		task.TasklistID,
		task.Name,
		task.Description,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	const query = `
        UPDATE tasks SET name=$1, description=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query,
		task.Name,
		task.Description,
		task.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	const query = `
        SELECT id, owner_id, tasklist_id, name, description, created_at, updated_at
        FROM tasks WHERE id=$1`

	var task domain.Task
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&task.ID,
		&task.OwnerID,
		&task.TasklistID,
		&task.Name,
		&task.Description,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	const query = `SELECT owner_id FROM tasks WHERE id=$1`

	var ownerID uuid.UUID
	if err := r.pool.QueryRow(ctx, query, id).Scan(&ownerID); err != nil {
		return uuid.Nil, err
	}
	return ownerID, nil
}

func (r *taskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	const query = `
        SELECT id, owner_id, tasklist_id, name, description, created_at, updated_at
        FROM tasks WHERE owner_id=$1
        ORDER BY created_at`

	return r.list(ctx, query, ownerID)
}

func (r *taskRepository) ListByTasklist(ctx context.Context, tasklistID uuid.UUID) ([]domain.Task, error) {
	const query = `
        SELECT id, owner_id, tasklist_id, name, description, created_at, updated_at
        FROM tasks WHERE tasklist_id=$1
        ORDER BY created_at`

	return r.list(ctx, query, tasklistID)
}

func (r *taskRepository) list(ctx context.Context, query string, arg any) ([]domain.Task, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.OwnerID,
			&task.TasklistID,
			&task.Name,
			&task.Description,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *taskRepository) DeleteByTasklist(ctx context.Context, tasklistID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE tasklist_id=$1`, tasklistID)
	return err
}
