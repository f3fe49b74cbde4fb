package usecase

import (
	"context"

	"health-records-service/internal/authz"
	"health-records-service/internal/converter"
	"health-records-service/internal/delivery/dto"
	"health-records-service/internal/domain/entity"
	"health-records-service/internal/domain/repository"
	"health-records-service/pkg/apperror"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrUnknownRole = apperror.New(apperror.KindAuthorization, "no dashboard for this role")

const dashboardRecentRecords = 5

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, caller *authz.Caller) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log                *logrus.Logger
	userRepo           repository.UserRepository
	patientProfileRepo repository.PatientProfileRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	recordRepo         repository.MedicalRecordRepository
}

func NewDashboardUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientProfileRepo repository.PatientProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	recordRepo repository.MedicalRecordRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		log:                log,
		userRepo:           userRepo,
		patientProfileRepo: patientProfileRepo,
		doctorProfileRepo:  doctorProfileRepo,
		recordRepo:         recordRepo,
	}
}

// GetDashboard dispatches on the caller's role. Every role has exactly one
// builder; an unknown role is refused.
func (u *dashboardUsecase) GetDashboard(ctx context.Context, caller *authz.Caller) (*dto.DashboardResponse, error) {
	if caller == nil {
		return nil, authz.ErrUnauthenticated
	}

	switch caller.Role {
	case entity.RolePatient:
		return u.patientDashboard(ctx, caller)
	case entity.RoleDoctor:
		return u.doctorDashboard(ctx, caller)
	case entity.RoleLab:
		return u.labDashboard(ctx, caller)
	case entity.RoleAnimalOwner:
		return u.animalOwnerDashboard(ctx, caller)
	case entity.RoleAdmin:
		return u.adminDashboard(ctx, caller)
	default:
		return nil, ErrUnknownRole
	}
}

func (u *dashboardUsecase) loadUser(ctx context.Context, caller *authz.Caller) (*entity.User, error) {
	user, err := u.userRepo.FindByID(ctx, caller.ID)
	if err != nil {
		u.log.Warnf("Failed to load dashboard user: %+v", err)
		return nil, storeError(err)
	}
	if user == nil || user.Role != caller.Role {
		return nil, ErrUserNotFound
	}
	if !user.Active() {
		return nil, ErrAccountDisabled
	}
	return user, nil
}

func newDashboard(user *entity.User) *dto.DashboardResponse {
	return &dto.DashboardResponse{
		Role: user.Role.String(),
		User: *converter.UserToSessionResponse(user),
	}
}

func (u *dashboardUsecase) patientDashboard(ctx context.Context, caller *authz.Caller) (*dto.DashboardResponse, error) {
	var (
		user    *entity.User
		profile *entity.PatientProfile
		total   int64
		records []entity.MedicalRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = u.loadUser(gctx, caller)
		return err
	})
	g.Go(func() error {
		var err error
		if profile, err = u.patientProfileRepo.FindByUserID(gctx, caller.ID); err != nil {
			u.log.Warnf("Failed to load patient profile: %+v", err)
			return storeError(err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if total, err = u.recordRepo.CountByPatientID(gctx, caller.ID); err != nil {
			u.log.Warnf("Failed to count patient records: %+v", err)
			return storeError(err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if records, err = u.recordRepo.FindByPatientID(gctx, caller.ID, dashboardRecentRecords); err != nil {
			u.log.Warnf("Failed to load patient records: %+v", err)
			return storeError(err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := newDashboard(user)
	resp.Patient = &dto.PatientDashboard{
		Profile:       converter.PatientProfileToResponse(profile),
		TotalRecords:  total,
		RecentRecords: converter.MedicalRecordsToResponses(records),
	}
	return resp, nil
}

func (u *dashboardUsecase) doctorDashboard(ctx context.Context, caller *authz.Caller) (*dto.DashboardResponse, error) {
	var (
		user    *entity.User
		profile *entity.DoctorProfile
		total   int64
		records []entity.MedicalRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = u.loadUser(gctx, caller)
		return err
	})
	g.Go(func() error {
		var err error
		if profile, err = u.doctorProfileRepo.FindByUserID(gctx, caller.ID); err != nil {
			u.log.Warnf("Failed to load doctor profile: %+v", err)
			return storeError(err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if total, err = u.recordRepo.CountByDoctorID(gctx, caller.ID); err != nil {
			u.log.Warnf("Failed to count authored records: %+v", err)
			return storeError(err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if records, err = u.recordRepo.FindByDoctorID(gctx, caller.ID, dashboardRecentRecords); err != nil {
			u.log.Warnf("Failed to load authored records: %+v", err)
			return storeError(err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := newDashboard(user)
	resp.Doctor = &dto.DoctorDashboard{
		Profile:       converter.DoctorProfileToResponse(profile),
		TotalRecords:  total,
		RecentRecords: converter.MedicalRecordsToResponses(records),
	}
	return resp, nil
}

func (u *dashboardUsecase) labDashboard(ctx context.Context, caller *authz.Caller) (*dto.DashboardResponse, error) {
	user, err := u.loadUser(ctx, caller)
	if err != nil {
		return nil, err
	}

	resp := newDashboard(user)
	resp.Lab = &dto.LabDashboard{Profile: converter.LabProfileToResponse(user.LabProfile)}
	return resp, nil
}

func (u *dashboardUsecase) animalOwnerDashboard(ctx context.Context, caller *authz.Caller) (*dto.DashboardResponse, error) {
	user, err := u.loadUser(ctx, caller)
	if err != nil {
		return nil, err
	}

	section := &dto.AnimalOwnerDashboard{AnimalTypes: []string{}}
	if p := user.AnimalOwnerProfile; p != nil {
		section.PetsCount = p.PetsCount
		if len(p.AnimalTypes) > 0 {
			section.AnimalTypes = p.AnimalTypes
		}
	}

	resp := newDashboard(user)
	resp.AnimalOwner = section
	return resp, nil
}

func (u *dashboardUsecase) adminDashboard(ctx context.Context, caller *authz.Caller) (*dto.DashboardResponse, error) {
	var (
		user   *entity.User
		counts map[entity.Role]int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = u.loadUser(gctx, caller)
		return err
	})
	g.Go(func() error {
		var err error
		if counts, err = u.userRepo.CountByRole(gctx); err != nil {
			u.log.Warnf("Failed to count users by role: %+v", err)
			return storeError(err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	section := &dto.AdminDashboard{UsersByRole: make(map[string]int64, len(entity.Roles))}
	for _, role := range entity.Roles {
		section.UsersByRole[role.String()] = counts[role]
		section.TotalUsers += counts[role]
	}

	resp := newDashboard(user)
	resp.Admin = section
	return resp, nil
}
