package events

import "github.com/google/uuid"

// EventType identifies a published event.
type EventType string

const (
	EventUserRegistered  EventType = "user.registered"
	EventTasklistCreated EventType = "tasklist.created"
	EventTasklistUpdated EventType = "tasklist.updated"
	EventTasklistDeleted EventType = "tasklist.deleted"
	EventTaskCreated     EventType = "task.created"
	EventTaskUpdated     EventType = "task.updated"
	EventTaskDeleted     EventType = "task.deleted"
)

// Event carries the subject and resource of a domain change.
type Event struct {
	Type       EventType
	ActorID    uuid.UUID
	ResourceID uuid.UUID
}
