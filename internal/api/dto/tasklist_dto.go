package dto

import "github.com/google/uuid"

// TasklistCreateRequest carries a tasklist creation payload.
type TasklistCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TasklistUpdateRequest carries a partial tasklist update; nil fields are
// left unchanged.
type TasklistUpdateRequest struct {
	ID          uuid.UUID `json:"id"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
}

// TasklistResponse is the outward shape of a tasklist with its tasks.
type TasklistResponse struct {
	ID          uuid.UUID      `json:"id"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Tasks       []TaskResponse `json:"tasks"`
}
