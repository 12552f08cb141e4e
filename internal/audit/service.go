package audit

import (
	"fmt"
	"log"
	"time"

	"github.com/mrlokans/mybooks/internal/database/audit"
	"github.com/mrlokans/mybooks/internal/entities"
)

const maxMessageLen = 500

// Service records deletions and retention pruning. Writes are synchronous;
// a failed write is logged and never fails the operation being audited.
type Service struct {
	repo *audit.Repository
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

func (s *Service) logQuietly(event *entities.AuditEvent) {
	if err := s.repo.LogEvent(event); err != nil {
		log.Printf("Failed to log audit event %s: %v", event.Action, err)
	}
}

// LogDelete records the deletion of a book, genre or quote. A non-nil err
// marks the event as failed.
func (s *Service) LogDelete(entityType string, entityID uint, entityName string, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventDelete,
		Action:      entityType + "_delete",
		Description: truncate(fmt.Sprintf("Deleted %s: %s", entityType, entityName), maxMessageLen),
		EntityType:  entityType,
		EntityID:    &entityID,
		Status:      entities.AuditStatusSuccess,
	}

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), maxMessageLen)
	}

	s.logQuietly(event)
}

// GetEvents retrieves paginated audit events, optionally for one entity type.
func (s *Service) GetEvents(entityType string, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(entityType, limit, offset)
}

// DeleteOldEvents removes events older than the retention period and records
// the prune itself when anything was removed.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	deleted, err := s.repo.DeleteOldEvents(cutoff)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.logQuietly(&entities.AuditEvent{
			EventType:   entities.AuditEventPrune,
			Action:      "audit_prune",
			Description: fmt.Sprintf("Removed %d audit events older than %s", deleted, cutoff.Format(time.DateOnly)),
			Status:      entities.AuditStatusSuccess,
		})
	}
	return deleted, nil
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
