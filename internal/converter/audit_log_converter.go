package converter

import (
	"health-records-service/internal/delivery/dto"
	"health-records-service/internal/domain/entity"
)

// AuditLogToResponse converts a AuditLog entity to AuditLogResponse DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	resp := &dto.AuditLogResponse{
		ID:        log.ID,
		Action:    log.Action,
		Metadata:  map[string]interface{}(log.Metadata),
		CreatedAt: log.CreatedAt,
	}
	if resp.Metadata == nil {
		resp.Metadata = map[string]interface{}{}
	}
	if log.Actor != nil {
		resp.Actor = &dto.AuditActorResponse{
			ID:     log.Actor.ID,
			UserID: log.Actor.HealthID,
			Name:   log.Actor.Name,
			Role:   log.Actor.Role.String(),
		}
	}
	return resp
}

// AuditLogsToResponses converts a slice of AuditLog entities to slice of AuditLogResponse DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}
