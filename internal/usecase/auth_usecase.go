package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"health-records-service/internal/authz"
	"health-records-service/internal/converter"
	"health-records-service/internal/delivery/dto"
	"health-records-service/internal/domain/entity"
	"health-records-service/internal/domain/repository"
	"health-records-service/internal/service"
	"health-records-service/pkg/apperror"
	"health-records-service/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = apperror.New(apperror.KindConflict, "email already exists")
	ErrHealthIDExhausted  = apperror.New(apperror.KindConflict, "could not allocate a unique health ID")
	ErrInvalidUserType    = apperror.New(apperror.KindValidation, "userType must be one of: patient doctor lab animal_owner")
	ErrPasswordTooLong    = apperror.New(apperror.KindValidation, "password is too long")
	ErrUserNotFound       = apperror.New(apperror.KindNotFound, "user not found")
	ErrAccountDisabled    = apperror.New(apperror.KindAuth, "account is disabled")
	ErrInvalidCredentials = apperror.New(apperror.KindAuth, "invalid health ID or password")
	ErrTooManyAttempts    = apperror.New(apperror.KindRateLimited, "too many sign-in attempts, try again later")
)

const (
	tokenTypeBearer       = "Bearer"
	healthIDAllocAttempts = 3
)

type AuthUsecase interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.SignUpResponse, error)
	// VerifyCredentials checks a health ID and password without side effects.
	VerifyCredentials(ctx context.Context, healthID, password string) (*dto.SessionUserResponse, error)
	// SignIn verifies credentials, opens a session and records the login.
	// clientKey identifies the client for rate limiting.
	SignIn(ctx context.Context, req *dto.SignInRequest, clientKey string) (*dto.TokenResponse, error)
	TouchLastLogin(ctx context.Context, userID uuid.UUID) error
	Logout(ctx context.Context, caller *authz.Caller) error
	GetCurrentUser(ctx context.Context, caller *authz.Caller) (*dto.UserResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	jwtService   *jwt.JWTService
	sessions     service.SessionStore
	limiter      service.RateLimiter
	ids          *service.IDGenerator
	auditService service.AuditService
	bcryptCost   int
	now          func() time.Time
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	sessions service.SessionStore,
	limiter service.RateLimiter,
	ids *service.IDGenerator,
	auditService service.AuditService,
	bcryptCost int,
) AuthUsecase {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authUsecase{
		log:          log,
		userRepo:     userRepo,
		jwtService:   jwtService,
		sessions:     sessions,
		limiter:      limiter,
		ids:          ids,
		auditService: auditService,
		bcryptCost:   bcryptCost,
		now:          time.Now,
	}
}

func (u *authUsecase) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.SignUpResponse, error) {
	role, ok := entity.ParseRole(req.UserType)
	if !ok || !role.SelfRegistrable() {
		return nil, ErrInvalidUserType
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, storeError(err)
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     strings.TrimSpace(req.Name),
		Role:     role,
		Phone:    strings.TrimSpace(req.Phone),
		Age:      req.Age,
		Gender:   req.Gender,
		City:     strings.TrimSpace(req.City),
		State:    strings.TrimSpace(req.State),
		IsActive: &active,
	}
	attachProfile(user, req)

	// The profile is inserted in the same statement transaction as the user.
	for attempt := 1; ; attempt++ {
		user.HealthID, err = u.ids.HealthID(role)
		if err != nil {
			u.log.Warnf("Failed to generate health ID: %+v", err)
			return nil, err
		}

		err = u.userRepo.Create(ctx, user)
		if err == nil {
			break
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "user_id") {
			if attempt < healthIDAllocAttempts {
				continue
			}
			return nil, ErrHealthIDExhausted
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, storeError(err)
	}

	u.auditService.LogAction(ctx, &user.ID, entity.AuditActionUserRegister, "user", user.HealthID, map[string]interface{}{
		"user_type": role.String(),
	})

	return &dto.SignUpResponse{
		UserID:   user.HealthID,
		UserType: role.String(),
		Name:     user.Name,
		Email:    user.Email,
	}, nil
}

func attachProfile(user *entity.User, req *dto.SignUpRequest) {
	switch user.Role {
	case entity.RolePatient:
		user.PatientProfile = &entity.PatientProfile{
			AadhaarNumber:     strings.TrimSpace(req.AadhaarNumber),
			BloodGroup:        strings.ToUpper(strings.TrimSpace(req.BloodGroup)),
			Allergies:         []string{},
			ChronicConditions: []string{},
		}
	case entity.RoleDoctor:
		user.DoctorProfile = &entity.DoctorProfile{
			RegistrationNumber: strings.TrimSpace(req.RegistrationNumber),
			Specialization:     strings.TrimSpace(req.Specialization),
			Qualification:      strings.TrimSpace(req.Qualification),
			Hospital:           strings.TrimSpace(req.Hospital),
		}
	case entity.RoleLab:
		user.LabProfile = &entity.LabProfile{
			LabName:    strings.TrimSpace(req.LabName),
			LabLicense: strings.TrimSpace(req.LabLicense),
			LabType:    strings.TrimSpace(req.LabType),
		}
	case entity.RoleAnimalOwner:
		profile := &entity.AnimalOwnerProfile{AnimalTypes: []string{}}
		if req.PetsCount != nil {
			profile.PetsCount = *req.PetsCount
		}
		if len(req.AnimalTypes) > 0 {
			profile.AnimalTypes = req.AnimalTypes
		}
		user.AnimalOwnerProfile = profile
	}
}

func (u *authUsecase) VerifyCredentials(ctx context.Context, healthID, password string) (*dto.SessionUserResponse, error) {
	user, err := u.userRepo.FindByHealthID(ctx, strings.ToUpper(strings.TrimSpace(healthID)))
	if err != nil {
		u.log.Warnf("Failed to find user by health ID: %+v", err)
		return nil, storeError(err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Disabled accounts fail before the password is looked at.
	if !user.Active() {
		return nil, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return converter.UserToSessionResponse(user), nil
}

func (u *authUsecase) SignIn(ctx context.Context, req *dto.SignInRequest, clientKey string) (*dto.TokenResponse, error) {
	if u.limiter != nil && !u.limiter.Allow(ctx, "signin:"+clientKey) {
		return nil, ErrTooManyAttempts
	}

	identity, err := u.VerifyCredentials(ctx, req.UserID, req.Password)
	if err != nil {
		if apperror.KindOf(err) != apperror.KindUpstream {
			u.log.Infof("Sign-in rejected for %s: %v", strings.ToUpper(strings.TrimSpace(req.UserID)), err)
		}
		return nil, err
	}

	token, tokenID, err := u.jwtService.GenerateSessionToken(identity.ID, identity.UserID, identity.Role)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	if err := u.sessions.Store(ctx, identity.ID, tokenID, u.jwtService.GetSessionExpiry()); err != nil {
		return nil, apperror.Wrap(apperror.KindUpstream, "session store unavailable", err)
	}

	if err := u.TouchLastLogin(ctx, identity.ID); err != nil {
		u.log.Warnf("Failed to update last login: %+v", err)
	}

	u.auditService.LogAction(ctx, &identity.ID, entity.AuditActionUserLogin, "user", identity.UserID, nil)

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(u.jwtService.GetSessionExpiry().Seconds()),
		User:        *identity,
	}, nil
}

func (u *authUsecase) TouchLastLogin(ctx context.Context, userID uuid.UUID) error {
	if err := u.userRepo.UpdateLastLogin(ctx, userID, u.now()); err != nil {
		return storeError(err)
	}
	return nil
}

func (u *authUsecase) Logout(ctx context.Context, caller *authz.Caller) error {
	if caller == nil {
		return authz.ErrUnauthenticated
	}

	if err := u.sessions.Delete(ctx, caller.ID, caller.TokenID); err != nil {
		return apperror.Wrap(apperror.KindUpstream, "session store unavailable", err)
	}

	u.auditService.LogAction(ctx, &caller.ID, entity.AuditActionUserLogout, "user", caller.HealthID, nil)
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, caller *authz.Caller) (*dto.UserResponse, error) {
	if caller == nil {
		return nil, authz.ErrUnauthenticated
	}

	user, err := u.userRepo.FindByID(ctx, caller.ID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, storeError(err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}
