package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/tasklist-service/internal/domain"
)

// TasklistRepository defines persistence access for tasklists.
type TasklistRepository interface {
	Create(ctx context.Context, tasklist *domain.Tasklist) error
	Update(ctx context.Context, tasklist *domain.Tasklist) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tasklist, error)
	GetOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Tasklist, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tasklistRepository struct {
	pool *pgxpool.Pool
}

// NewTasklistRepository returns a Postgres-backed implementation.
func NewTasklistRepository(pool *pgxpool.Pool) TasklistRepository {
	return &tasklistRepository{pool: pool}
}

func (r *tasklistRepository) Create(ctx context.Context, tasklist *domain.Tasklist) error {
	const query = `
        INSERT INTO tasklists (owner_id, name, description)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		tasklist.OwnerID,
		tasklist.Name,
		tasklist.Description,
	).Scan(&tasklist.ID, &tasklist.CreatedAt, &tasklist.UpdatedAt)
}

func (r *tasklistRepository) Update(ctx context.Context, tasklist *domain.Tasklist) error {
	const query = `
        UPDATE tasklists SET name=$1, description=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query,
		tasklist.Name,
		tasklist.Description,
		tasklist.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *tasklistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tasklist, error) {
	const query = `
        SELECT id, owner_id, name, description, created_at, updated_at
        FROM tasklists WHERE id=$1`

	var tasklist domain.Tasklist
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&tasklist.ID,
		&tasklist.OwnerID,
		&tasklist.Name,
		&tasklist.Description,
		&tasklist.CreatedAt,
		&tasklist.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &tasklist, nil
}

func (r *tasklistRepository) GetOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	const query = `SELECT owner_id FROM tasklists WHERE id=$1`

	var ownerID uuid.UUID
	if err := r.pool.QueryRow(ctx, query, id).Scan(&ownerID); err != nil {
		return uuid.Nil, err
	}
	return ownerID, nil
}

func (r *tasklistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Tasklist, error) {
	const query = `
        SELECT id, owner_id, name, description, created_at, updated_at
        FROM tasklists WHERE owner_id=$1
        ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasklists := make([]domain.Tasklist, 0)
	for rows.Next() {
		var tasklist domain.Tasklist
		if err := rows.Scan(
			&tasklist.ID,
			&tasklist.OwnerID,
			&tasklist.Name,
			&tasklist.Description,
			&tasklist.CreatedAt,
			&tasklist.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasklists = append(tasklists, tasklist)
	}
	return tasklists, rows.Err()
}

func (r *tasklistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tasklists WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
