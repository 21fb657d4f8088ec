package dto

import "github.com/google/uuid"

// TaskCreateRequest carries a task creation payload.
type TaskCreateRequest struct {
	TasklistID  uuid.UUID `json:"tasklist_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// TaskUpdateRequest carries a partial task update; nil fields are left
// unchanged.
type TaskUpdateRequest struct {
	ID          uuid.UUID `json:"id"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
}

// TaskResponse is the outward shape of a task.
type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	TasklistID  uuid.UUID `json:"tasklist_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}
