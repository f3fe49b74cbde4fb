package usecase

import (
	"context"
	"errors"
	"testing"

	"health-records-service/internal/authz"
	"health-records-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUserActive(t *testing.T) {
	target := &entity.User{ID: uuid.New(), HealthID: "PAT_1", Role: entity.RolePatient}
	admin := &authz.Caller{ID: uuid.New(), HealthID: "ADM_1", Role: entity.RoleAdmin}

	var setTo *bool
	users := &mockUserRepository{
		FindByHealthIDFunc: usersByHealthID(target, &entity.User{ID: admin.ID, HealthID: "ADM_1", Role: entity.RoleAdmin}),
		SetActiveFunc: func(ctx context.Context, id uuid.UUID, active bool) error {
			assert.Equal(t, target.ID, id)
			setTo = &active
			return nil
		},
	}
	sessions := &mockSessionStore{}
	audit := &mockAuditService{}
	uc := NewAdminUsecase(quietLogger(), users, sessions, audit)
	ctx := context.Background()

	resp, err := uc.SetUserActive(ctx, admin, "PAT_1", false)
	require.NoError(t, err)
	require.NotNil(t, setTo)
	assert.False(t, *setTo)
	assert.False(t, resp.IsActive)
	assert.Equal(t, []uuid.UUID{target.ID}, sessions.revoked)

	resp, err = uc.SetUserActive(ctx, admin, "PAT_1", true)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.Len(t, sessions.revoked, 1)
	assert.Equal(t, []string{entity.AuditActionUserDeactivate, entity.AuditActionUserActivate}, audit.actions)

	_, err = uc.SetUserActive(ctx, admin, "PAT_GHOST", false)
	assert.True(t, errors.Is(err, ErrUserNotFound))

	_, err = uc.SetUserActive(ctx, admin, "ADM_1", false)
	assert.True(t, errors.Is(err, ErrCannotDeactivateSelf))

	_, err = uc.SetUserActive(ctx, &authz.Caller{ID: uuid.New(), Role: entity.RoleDoctor}, "PAT_1", false)
	assert.True(t, errors.Is(err, authz.ErrWrongRole))
}
