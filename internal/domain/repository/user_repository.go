package repository

import (
	"context"
	"time"

	"health-records-service/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository is the identity store. Finders return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByHealthID(ctx context.Context, healthID string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindActiveByHealthID(ctx context.Context, healthID string, role entity.Role) (*entity.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	CountByRole(ctx context.Context) (map[entity.Role]int64, error)
}
