package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type AuditActorResponse struct {
	ID     uuid.UUID `json:"id"`
	UserID string    `json:"userId"`
	Name   string    `json:"name"`
	Role   string    `json:"role"`
}

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	Actor     *AuditActorResponse    `json:"actor,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"createdAt"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
	Total int64              `json:"total"`
}
