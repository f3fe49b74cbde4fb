package usecase

import (
	"context"
	"strings"

	"health-records-service/internal/authz"
	"health-records-service/internal/converter"
	"health-records-service/internal/delivery/dto"
	"health-records-service/internal/domain/entity"
	"health-records-service/internal/domain/repository"
	"health-records-service/internal/service"
	"health-records-service/pkg/apperror"

	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	// SearchPatient finds at most one active patient by exact health ID.
	SearchPatient(ctx context.Context, caller *authz.Caller, healthID string) (*dto.PatientSearchResponse, error)
}

type patientUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) SearchPatient(ctx context.Context, caller *authz.Caller, healthID string) (*dto.PatientSearchResponse, error) {
	if err := authz.Check(caller, authz.OpSearchPatient, ""); err != nil {
		return nil, err
	}

	healthID = strings.ToUpper(strings.TrimSpace(healthID))
	if healthID == "" {
		return nil, apperror.MissingField("healthId")
	}

	patient, err := u.userRepo.FindActiveByHealthID(ctx, healthID, entity.RolePatient)
	if err != nil {
		u.log.Warnf("Failed to search patient: %+v", err)
		return nil, storeError(err)
	}

	u.auditService.LogAction(ctx, &caller.ID, entity.AuditActionPatientSearch, "patient", healthID, map[string]interface{}{
		"found": patient != nil,
	})

	resp := &dto.PatientSearchResponse{Patients: []dto.PatientSearchResult{}}
	if patient != nil {
		resp.Patients = append(resp.Patients, converter.PatientToSearchResult(patient))
	}
	return resp, nil
}
