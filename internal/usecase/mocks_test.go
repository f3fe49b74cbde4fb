package usecase

import (
	"context"
	"io"
	"sync"
	"time"

	"health-records-service/internal/domain/entity"
	"health-records-service/internal/domain/repository"
	"health-records-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// --- users ---

var _ repository.UserRepository = (*mockUserRepository)(nil)

type mockUserRepository struct {
	CreateFunc               func(ctx context.Context, user *entity.User) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByHealthIDFunc       func(ctx context.Context, healthID string) (*entity.User, error)
	FindByEmailFunc          func(ctx context.Context, email string) (*entity.User, error)
	FindActiveByHealthIDFunc func(ctx context.Context, healthID string, role entity.Role) (*entity.User, error)
	UpdateLastLoginFunc      func(ctx context.Context, id uuid.UUID, at time.Time) error
	SetActiveFunc            func(ctx context.Context, id uuid.UUID, active bool) error
	CountByRoleFunc          func(ctx context.Context) (map[entity.Role]int64, error)

	CreateCalls int
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByHealthID(ctx context.Context, healthID string) (*entity.User, error) {
	if m.FindByHealthIDFunc != nil {
		return m.FindByHealthIDFunc(ctx, healthID)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindActiveByHealthID(ctx context.Context, healthID string, role entity.Role) (*entity.User, error) {
	if m.FindActiveByHealthIDFunc != nil {
		return m.FindActiveByHealthIDFunc(ctx, healthID, role)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if m.UpdateLastLoginFunc != nil {
		return m.UpdateLastLoginFunc(ctx, id, at)
	}
	return nil
}

func (m *mockUserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, id, active)
	}
	return nil
}

func (m *mockUserRepository) CountByRole(ctx context.Context) (map[entity.Role]int64, error) {
	if m.CountByRoleFunc != nil {
		return m.CountByRoleFunc(ctx)
	}
	return map[entity.Role]int64{}, nil
}

// --- profiles ---

var _ repository.PatientProfileRepository = (*mockPatientProfileRepository)(nil)

type mockPatientProfileRepository struct {
	FindByUserIDFunc    func(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error)
	UpdateLastVisitFunc func(ctx context.Context, userID uuid.UUID, visit time.Time) error
}

func (m *mockPatientProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockPatientProfileRepository) UpdateLastVisit(ctx context.Context, userID uuid.UUID, visit time.Time) error {
	if m.UpdateLastVisitFunc != nil {
		return m.UpdateLastVisitFunc(ctx, userID, visit)
	}
	return nil
}

var _ repository.DoctorProfileRepository = (*mockDoctorProfileRepository)(nil)

type mockDoctorProfileRepository struct {
	FindByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error)
}

func (m *mockDoctorProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

// --- records ---

var _ repository.MedicalRecordRepository = (*mockMedicalRecordRepository)(nil)

type mockMedicalRecordRepository struct {
	CreateFunc               func(ctx context.Context, record *entity.MedicalRecord) error
	FindByPatientIDFunc      func(ctx context.Context, patientID uuid.UUID, limit int) ([]entity.MedicalRecord, error)
	CountByPatientIDFunc     func(ctx context.Context, patientID uuid.UUID) (int64, error)
	FindByDoctorIDFunc       func(ctx context.Context, doctorID uuid.UUID, limit int) ([]entity.MedicalRecord, error)
	CountByDoctorIDFunc      func(ctx context.Context, doctorID uuid.UUID) (int64, error)
	FindByIdempotencyKeyFunc func(ctx context.Context, doctorID uuid.UUID, key string) (*entity.MedicalRecord, error)

	created []*entity.MedicalRecord
}

func (m *mockMedicalRecordRepository) Create(ctx context.Context, record *entity.MedicalRecord) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, record); err != nil {
			return err
		}
	}
	m.created = append(m.created, record)
	return nil
}

func (m *mockMedicalRecordRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID, limit int) ([]entity.MedicalRecord, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(ctx, patientID, limit)
	}
	return []entity.MedicalRecord{}, nil
}

func (m *mockMedicalRecordRepository) CountByPatientID(ctx context.Context, patientID uuid.UUID) (int64, error) {
	if m.CountByPatientIDFunc != nil {
		return m.CountByPatientIDFunc(ctx, patientID)
	}
	return 0, nil
}

func (m *mockMedicalRecordRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID, limit int) ([]entity.MedicalRecord, error) {
	if m.FindByDoctorIDFunc != nil {
		return m.FindByDoctorIDFunc(ctx, doctorID, limit)
	}
	return []entity.MedicalRecord{}, nil
}

func (m *mockMedicalRecordRepository) CountByDoctorID(ctx context.Context, doctorID uuid.UUID) (int64, error) {
	if m.CountByDoctorIDFunc != nil {
		return m.CountByDoctorIDFunc(ctx, doctorID)
	}
	return 0, nil
}

func (m *mockMedicalRecordRepository) FindByIdempotencyKey(ctx context.Context, doctorID uuid.UUID, key string) (*entity.MedicalRecord, error) {
	if m.FindByIdempotencyKeyFunc != nil {
		return m.FindByIdempotencyKeyFunc(ctx, doctorID, key)
	}
	return nil, nil
}

// --- audit ---

var _ repository.AuditLogRepository = (*mockAuditLogRepository)(nil)

type mockAuditLogRepository struct {
	FindAllFunc  func(ctx context.Context, limit, offset int) ([]entity.AuditLog, int64, error)
	FindByIDFunc func(ctx context.Context, id int64) (*entity.AuditLog, error)
}

func (m *mockAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	return nil
}

func (m *mockAuditLogRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.AuditLog, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, limit, offset)
	}
	return []entity.AuditLog{}, 0, nil
}

func (m *mockAuditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

var _ service.AuditService = (*mockAuditService)(nil)

type mockAuditService struct {
	mu      sync.Mutex
	actions []string
}

func (m *mockAuditService) LogAction(ctx context.Context, actorID *uuid.UUID, action string, entityName string, entityID string, details map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, action)
}

// --- sessions and limiter ---

var _ service.SessionStore = (*mockSessionStore)(nil)

type mockSessionStore struct {
	StoreFunc     func(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	DeleteFunc    func(ctx context.Context, userID uuid.UUID, tokenID string) error
	RevokeAllFunc func(ctx context.Context, userID uuid.UUID) error

	stored  map[string]time.Duration
	revoked []uuid.UUID
}

func (m *mockSessionStore) Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	if m.StoreFunc != nil {
		if err := m.StoreFunc(ctx, userID, tokenID, ttl); err != nil {
			return err
		}
	}
	if m.stored == nil {
		m.stored = map[string]time.Duration{}
	}
	m.stored[userID.String()+":"+tokenID] = ttl
	return nil
}

func (m *mockSessionStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	_, ok := m.stored[userID.String()+":"+tokenID]
	return ok, nil
}

func (m *mockSessionStore) Delete(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, tokenID)
	}
	delete(m.stored, userID.String()+":"+tokenID)
	return nil
}

func (m *mockSessionStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	if m.RevokeAllFunc != nil {
		return m.RevokeAllFunc(ctx, userID)
	}
	m.revoked = append(m.revoked, userID)
	return nil
}

type mockRateLimiter struct {
	allow bool
	keys  []string
}

func (m *mockRateLimiter) Allow(ctx context.Context, key string) bool {
	m.keys = append(m.keys, key)
	return m.allow
}

var _ service.AnalysisClient = (*mockAnalysisClient)(nil)

type mockAnalysisClient struct {
	AnalyzeFunc func(ctx context.Context, params service.HealthParams) *service.AnalysisResult
}

func (m *mockAnalysisClient) Analyze(ctx context.Context, params service.HealthParams) *service.AnalysisResult {
	return m.AnalyzeFunc(ctx, params)
}
