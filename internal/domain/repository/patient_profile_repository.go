package repository

import (
	"context"
	"time"

	"health-records-service/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error)
	UpdateLastVisit(ctx context.Context, userID uuid.UUID, visit time.Time) error
}
