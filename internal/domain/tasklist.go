package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tasklist groups tasks under a single owner.
type Tasklist struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
