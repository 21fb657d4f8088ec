package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/tasklist-service/internal/events"
)

// AuditService logs domain lifecycle events.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService builds the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes the audit log to all lifecycle events.
func (s *AuditService) RegisterHandlers() {
	eventTypes := []events.EventType{
		events.EventUserRegistered,
		events.EventTasklistCreated,
		events.EventTasklistUpdated,
		events.EventTasklistDeleted,
		events.EventTaskCreated,
		events.EventTaskUpdated,
		events.EventTaskDeleted,
	}
	for _, eventType := range eventTypes {
		s.dispatcher.Subscribe(eventType, s.logEvent)
	}
}

func (s *AuditService) logEvent(_ context.Context, event events.Event) error {
	s.logger.Info("audit",
		zap.String("event", string(event.Type)),
		zap.String("actor_id", event.ActorID.String()),
		zap.String("resource_id", event.ResourceID.String()),
	)
	return nil
}
