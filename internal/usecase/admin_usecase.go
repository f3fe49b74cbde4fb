package usecase

import (
	"context"

	"health-records-service/internal/authz"
	"health-records-service/internal/converter"
	"health-records-service/internal/delivery/dto"
	"health-records-service/internal/domain/entity"
	"health-records-service/internal/domain/repository"
	"health-records-service/internal/service"
	"health-records-service/pkg/apperror"

	"github.com/sirupsen/logrus"
)

var ErrCannotDeactivateSelf = apperror.New(apperror.KindConflict, "admins cannot deactivate their own account")

type AdminUsecase interface {
	// SetUserActive enables or disables an account. Disabling also revokes
	// every open session of that user.
	SetUserActive(ctx context.Context, caller *authz.Caller, healthID string, active bool) (*dto.UserResponse, error)
}

type adminUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	sessions     service.SessionStore
	auditService service.AuditService
}

func NewAdminUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	sessions service.SessionStore,
	auditService service.AuditService,
) AdminUsecase {
	return &adminUsecase{
		log:          log,
		userRepo:     userRepo,
		sessions:     sessions,
		auditService: auditService,
	}
}

func (u *adminUsecase) SetUserActive(ctx context.Context, caller *authz.Caller, healthID string, active bool) (*dto.UserResponse, error) {
	if err := authz.Check(caller, authz.OpManageUsers, ""); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByHealthID(ctx, healthID)
	if err != nil {
		u.log.Warnf("Failed to find user by health ID: %+v", err)
		return nil, storeError(err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !active && user.ID == caller.ID {
		return nil, ErrCannotDeactivateSelf
	}

	if err := u.userRepo.SetActive(ctx, user.ID, active); err != nil {
		u.log.Warnf("Failed to update user status: %+v", err)
		return nil, storeError(err)
	}
	user.IsActive = &active

	action := entity.AuditActionUserActivate
	if !active {
		action = entity.AuditActionUserDeactivate
		if err := u.sessions.RevokeAll(ctx, user.ID); err != nil {
			return nil, apperror.Wrap(apperror.KindUpstream, "session store unavailable", err)
		}
	}

	u.auditService.LogAction(ctx, &caller.ID, action, "user", user.HealthID, nil)

	return converter.UserToResponse(user), nil
}
