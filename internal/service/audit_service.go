package service

import (
	"context"

	"health-records-service/internal/domain/entity"
	"health-records-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// AuditService appends to the audit trail. Writes are best effort: a failed
// write is logged and never fails the operation being audited.
type AuditService interface {
	LogAction(ctx context.Context, actorID *uuid.UUID, action string, entityName string, entityID string, details map[string]interface{})
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogAction(ctx context.Context, actorID *uuid.UUID, action string, entityName string, entityID string, details map[string]interface{}) {
	metadata := datatypes.JSONMap{
		"entity":    entityName,
		"entity_id": entityID,
	}
	for k, v := range details {
		metadata[k] = v
	}

	auditLog := &entity.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Metadata: metadata,
	}

	// Detach from the request deadline so a slow client cannot drop the entry.
	if err := s.auditRepo.Create(context.WithoutCancel(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log %s: %+v", action, err)
	}
}
