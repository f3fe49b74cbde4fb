package handler

import (
	"context"

	"health-records-service/internal/authz"
	"health-records-service/internal/delivery/dto"
	"health-records-service/internal/usecase"

	"github.com/google/uuid"
)

var _ usecase.AuthUsecase = (*mockAuthUsecase)(nil)

type mockAuthUsecase struct {
	SignUpFunc         func(ctx context.Context, req *dto.SignUpRequest) (*dto.SignUpResponse, error)
	SignInFunc         func(ctx context.Context, req *dto.SignInRequest, clientKey string) (*dto.TokenResponse, error)
	LogoutFunc         func(ctx context.Context, caller *authz.Caller) error
	GetCurrentUserFunc func(ctx context.Context, caller *authz.Caller) (*dto.UserResponse, error)
}

func (m *mockAuthUsecase) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.SignUpResponse, error) {
	return m.SignUpFunc(ctx, req)
}

func (m *mockAuthUsecase) VerifyCredentials(ctx context.Context, healthID, password string) (*dto.SessionUserResponse, error) {
	return nil, nil
}

func (m *mockAuthUsecase) SignIn(ctx context.Context, req *dto.SignInRequest, clientKey string) (*dto.TokenResponse, error) {
	return m.SignInFunc(ctx, req, clientKey)
}

func (m *mockAuthUsecase) TouchLastLogin(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (m *mockAuthUsecase) Logout(ctx context.Context, caller *authz.Caller) error {
	return m.LogoutFunc(ctx, caller)
}

func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, caller *authz.Caller) (*dto.UserResponse, error) {
	return m.GetCurrentUserFunc(ctx, caller)
}

var _ usecase.RecordUsecase = (*mockRecordUsecase)(nil)

type mockRecordUsecase struct {
	CreateRecordFunc          func(ctx context.Context, caller *authz.Caller, req *dto.CreateMedicalRecordRequest, idempotencyKey string) (*dto.CreateMedicalRecordResponse, error)
	ListRecordsForPatientFunc func(ctx context.Context, caller *authz.Caller, patientHealthID string) (*dto.MedicalRecordListResponse, error)
	ListRecordsByDoctorFunc   func(ctx context.Context, caller *authz.Caller, limit int) (*dto.MedicalRecordListResponse, error)
}

func (m *mockRecordUsecase) CreateRecord(ctx context.Context, caller *authz.Caller, req *dto.CreateMedicalRecordRequest, idempotencyKey string) (*dto.CreateMedicalRecordResponse, error) {
	return m.CreateRecordFunc(ctx, caller, req, idempotencyKey)
}

func (m *mockRecordUsecase) ListRecordsForPatient(ctx context.Context, caller *authz.Caller, patientHealthID string) (*dto.MedicalRecordListResponse, error) {
	return m.ListRecordsForPatientFunc(ctx, caller, patientHealthID)
}

func (m *mockRecordUsecase) ListRecordsByDoctor(ctx context.Context, caller *authz.Caller, limit int) (*dto.MedicalRecordListResponse, error) {
	return m.ListRecordsByDoctorFunc(ctx, caller, limit)
}

var _ usecase.AuditLogUsecase = (*mockAuditLogUsecase)(nil)

type mockAuditLogUsecase struct {
	GetAllAuditLogsFunc func(ctx context.Context, caller *authz.Caller, page, limit int) (*dto.AuditLogListResponse, error)
	GetAuditLogFunc     func(ctx context.Context, caller *authz.Caller, id int64) (*dto.AuditLogResponse, error)
}

func (m *mockAuditLogUsecase) GetAllAuditLogs(ctx context.Context, caller *authz.Caller, page, limit int) (*dto.AuditLogListResponse, error) {
	return m.GetAllAuditLogsFunc(ctx, caller, page, limit)
}

func (m *mockAuditLogUsecase) GetAuditLog(ctx context.Context, caller *authz.Caller, id int64) (*dto.AuditLogResponse, error) {
	return m.GetAuditLogFunc(ctx, caller, id)
}
