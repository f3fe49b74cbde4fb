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
	"gorm.io/datatypes"
)

var (
	ErrPatientNotFound       = apperror.New(apperror.KindNotFound, "patient not found")
	ErrDoctorNotFound        = apperror.New(apperror.KindNotFound, "doctor not found")
	ErrInvalidIdempotencyKey = apperror.New(apperror.KindValidation, "Idempotency-Key must be at most 128 characters")
	ErrRecordIDConflict      = apperror.New(apperror.KindConflict, "record ID already exists, retry the request")
	ErrIdempotencyKeyReused  = apperror.New(apperror.KindConflict, "Idempotency-Key was already used for a different patient")
)

const (
	MaxIdempotencyKeyLength = 128
	defaultAuthoredLimit    = 50
)

type RecordUsecase interface {
	CreateRecord(ctx context.Context, caller *authz.Caller, req *dto.CreateMedicalRecordRequest, idempotencyKey string) (*dto.CreateMedicalRecordResponse, error)
	ListRecordsForPatient(ctx context.Context, caller *authz.Caller, patientHealthID string) (*dto.MedicalRecordListResponse, error)
	ListRecordsByDoctor(ctx context.Context, caller *authz.Caller, limit int) (*dto.MedicalRecordListResponse, error)
}

type recordUsecase struct {
	log                *logrus.Logger
	userRepo           repository.UserRepository
	patientProfileRepo repository.PatientProfileRepository
	recordRepo         repository.MedicalRecordRepository
	ids                *service.IDGenerator
	auditService       service.AuditService
}

func NewRecordUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientProfileRepo repository.PatientProfileRepository,
	recordRepo repository.MedicalRecordRepository,
	ids *service.IDGenerator,
	auditService service.AuditService,
) RecordUsecase {
	return &recordUsecase{
		log:                log,
		userRepo:           userRepo,
		patientProfileRepo: patientProfileRepo,
		recordRepo:         recordRepo,
		ids:                ids,
		auditService:       auditService,
	}
}

func (u *recordUsecase) CreateRecord(ctx context.Context, caller *authz.Caller, req *dto.CreateMedicalRecordRequest, idempotencyKey string) (*dto.CreateMedicalRecordResponse, error) {
	if err := authz.Check(caller, authz.OpCreateRecord, ""); err != nil {
		return nil, err
	}

	composed, err := service.ComposeRecord(service.RecordInput{
		PatientID:     req.PatientID,
		Symptoms:      req.Symptoms,
		Diagnosis:     req.Diagnosis,
		Medications:   req.Medications,
		DateOfVisit:   req.DateOfVisit,
		RecordType:    req.RecordType,
		BloodPressure: req.BloodPressure,
		Weight:        string(req.Weight),
		OxygenLevel:   string(req.OxygenLevel),
		Notes:         req.Notes,
	})
	if err != nil {
		return nil, err
	}

	key := strings.TrimSpace(idempotencyKey)
	if len(key) > MaxIdempotencyKeyLength {
		return nil, ErrInvalidIdempotencyKey
	}

	patient, err := u.userRepo.FindActiveByHealthID(ctx, composed.PatientHealthID, entity.RolePatient)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, storeError(err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.userRepo.FindActiveByHealthID(ctx, caller.HealthID, entity.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, storeError(err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if key != "" {
		existing, err := u.recordRepo.FindByIdempotencyKey(ctx, doctor.ID, key)
		if err != nil {
			u.log.Warnf("Failed to find record by idempotency key: %+v", err)
			return nil, storeError(err)
		}
		if existing != nil {
			return replayRecord(existing, patient)
		}
	}

	recordID, err := u.ids.RecordID()
	if err != nil {
		u.log.Warnf("Failed to generate record ID: %+v", err)
		return nil, err
	}

	record := &entity.MedicalRecord{
		RecordID:    recordID,
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		RecordType:  composed.RecordType,
		DateOfVisit: composed.DateOfVisit,
		Symptoms:    datatypes.NewJSONType(composed.Symptoms),
		Diagnosis:   datatypes.NewJSONType(composed.Diagnosis),
		VitalSigns:  datatypes.NewJSONType(composed.VitalSigns),
		Treatment:   datatypes.NewJSONType(composed.Treatment),
		Notes:       composed.Notes,
		Status:      entity.RecordStatusActive,
	}
	if key != "" {
		record.IdempotencyKey = &key
	}

	if err := u.recordRepo.Create(ctx, record); err != nil {
		if key != "" && isDuplicateKeyError(err, "idempotency") {
			// A concurrent request with the same key won the insert.
			existing, findErr := u.recordRepo.FindByIdempotencyKey(ctx, doctor.ID, key)
			if findErr == nil && existing != nil {
				return replayRecord(existing, patient)
			}
		}
		if isDuplicateKeyError(err, "record_id") {
			return nil, ErrRecordIDConflict
		}
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, storeError(err)
	}

	if err := u.patientProfileRepo.UpdateLastVisit(ctx, patient.ID, composed.DateOfVisit); err != nil {
		u.log.Warnf("Failed to update patient last visit: %+v", err)
	}

	u.auditService.LogAction(ctx, &caller.ID, entity.AuditActionRecordCreate, "medical_record", record.RecordID, map[string]interface{}{
		"patient_id": patient.HealthID,
	})

	return converter.MedicalRecordToCreateResponse(record, false), nil
}

func (u *recordUsecase) ListRecordsForPatient(ctx context.Context, caller *authz.Caller, patientHealthID string) (*dto.MedicalRecordListResponse, error) {
	if err := authz.Check(caller, authz.OpReadPatientRecords, patientHealthID); err != nil {
		return nil, err
	}

	patient, err := u.userRepo.FindActiveByHealthID(ctx, patientHealthID, entity.RolePatient)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, storeError(err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	records, err := u.recordRepo.FindByPatientID(ctx, patient.ID, 0)
	if err != nil {
		u.log.Warnf("Failed to find medical records: %+v", err)
		return nil, storeError(err)
	}

	u.auditService.LogAction(ctx, &caller.ID, entity.AuditActionRecordRead, "patient", patient.HealthID, map[string]interface{}{
		"count": len(records),
	})

	return &dto.MedicalRecordListResponse{
		Records: converter.MedicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

func (u *recordUsecase) ListRecordsByDoctor(ctx context.Context, caller *authz.Caller, limit int) (*dto.MedicalRecordListResponse, error) {
	if err := authz.Check(caller, authz.OpReadAuthored, ""); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > defaultAuthoredLimit {
		limit = defaultAuthoredLimit
	}

	records, err := u.recordRepo.FindByDoctorID(ctx, caller.ID, limit)
	if err != nil {
		u.log.Warnf("Failed to find authored records: %+v", err)
		return nil, storeError(err)
	}

	return &dto.MedicalRecordListResponse{
		Records: converter.MedicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

// replayRecord returns the record stored under an idempotency key. The key is
// bound to the patient it was first used for.
func replayRecord(existing *entity.MedicalRecord, patient *entity.User) (*dto.CreateMedicalRecordResponse, error) {
	if existing.PatientID != patient.ID {
		return nil, ErrIdempotencyKeyReused
	}
	return converter.MedicalRecordToCreateResponse(existing, true), nil
}
