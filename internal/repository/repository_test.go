package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"health-records-service/internal/domain/entity"
	domainRepo "health-records-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder keeps every statement gorm renders so queries can be checked
// without a database.
type sqlRecorder struct {
	mu         sync.Mutex
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Info(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Warn(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, _ := fc()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statements = append(r.statements, sql)
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.statements)
	return r.statements[len(r.statements)-1]
}

func (r *sqlRecorder) first(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.statements)
	return r.statements[0]
}

func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test password=test dbname=test port=5432 sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	require.NoError(t, err)
	return db, rec
}

func TestRecordQueriesOrderNewestVisitFirst(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()

	tests := []struct {
		name string
		run  func(repo domainRepo.MedicalRecordRepository) error
		want string
	}{
		{
			name: "all records for patient",
			run: func(repo domainRepo.MedicalRecordRepository) error {
				_, err := repo.FindByPatientID(context.Background(), patientID, 0)
				return err
			},
			want: `SELECT * FROM "medical_records" WHERE patient_id = '` + patientID.String() + `' ORDER BY date_of_visit DESC, created_at DESC`,
		},
		{
			name: "recent records for patient",
			run: func(repo domainRepo.MedicalRecordRepository) error {
				_, err := repo.FindByPatientID(context.Background(), patientID, 5)
				return err
			},
			want: `SELECT * FROM "medical_records" WHERE patient_id = '` + patientID.String() + `' ORDER BY date_of_visit DESC, created_at DESC LIMIT 5`,
		},
		{
			name: "recent records by doctor",
			run: func(repo domainRepo.MedicalRecordRepository) error {
				_, err := repo.FindByDoctorID(context.Background(), doctorID, 5)
				return err
			},
			want: `SELECT * FROM "medical_records" WHERE doctor_id = '` + doctorID.String() + `' ORDER BY date_of_visit DESC, created_at DESC LIMIT 5`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, rec := newDryRunDB(t)
			require.NoError(t, tt.run(NewMedicalRecordRepository(db)))
			assert.Equal(t, tt.want, rec.first(t))
		})
	}
}

func TestCountByPatientID(t *testing.T) {
	db, rec := newDryRunDB(t)
	patientID := uuid.New()

	_, err := NewMedicalRecordRepository(db).CountByPatientID(context.Background(), patientID)
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT count(*) FROM "medical_records" WHERE patient_id = '`+patientID.String()+`'`,
		rec.first(t))
}

func TestFindByIdempotencyKeyScopesToDoctor(t *testing.T) {
	db, rec := newDryRunDB(t)
	doctorID := uuid.New()

	_, err := NewMedicalRecordRepository(db).FindByIdempotencyKey(context.Background(), doctorID, "key-1")
	require.NoError(t, err)
	sql := rec.last(t)
	assert.Contains(t, sql, "doctor_id = '"+doctorID.String()+"'")
	assert.Contains(t, sql, "idempotency_key = 'key-1'")
}

func TestUserLookupsNormalizeInput(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.FindByHealthID(ctx, " pat_abc123 ")
	require.NoError(t, err)
	assert.Contains(t, rec.last(t), "user_id = 'PAT_ABC123'")

	_, err = repo.FindByEmail(ctx, " Asha@Example.COM ")
	require.NoError(t, err)
	assert.Contains(t, rec.last(t), "email = 'asha@example.com'")

	_, err = repo.FindActiveByHealthID(ctx, "doc_1", entity.RoleDoctor)
	require.NoError(t, err)
	sql := rec.last(t)
	assert.Contains(t, sql, "user_id = 'DOC_1'")
	assert.Contains(t, sql, "user_type = 'doctor'")
	assert.Contains(t, sql, "is_active = true")
}

func TestAuditLogsNewestFirst(t *testing.T) {
	db, rec := newDryRunDB(t)

	_, _, err := NewAuditLogRepository(db).FindAll(context.Background(), 20, 40)
	require.NoError(t, err)
	sql := rec.last(t)
	assert.Contains(t, sql, "ORDER BY created_at DESC, id DESC")
	assert.Contains(t, sql, "LIMIT 20 OFFSET 40")
}
