package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the domain model for account holders. Name is unique.
//
// Password is stored and compared as plaintext to stay compatible with the
// existing credential data; see DESIGN.md for the known-weakness note.
type User struct {
	ID        uuid.UUID
	Name      string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
