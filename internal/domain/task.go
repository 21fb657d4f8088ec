package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do item inside a tasklist.
type Task struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	TasklistID  uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
