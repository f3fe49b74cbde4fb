package repository

import (
	"context"

	"health-records-service/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicalRecordRepository is append-only: there is no update or delete.
type MedicalRecordRepository interface {
	Create(ctx context.Context, record *entity.MedicalRecord) error
	// FindByPatientID returns records newest visit first, ties by newest
	// creation. A limit of zero returns every record.
	FindByPatientID(ctx context.Context, patientID uuid.UUID, limit int) ([]entity.MedicalRecord, error)
	CountByPatientID(ctx context.Context, patientID uuid.UUID) (int64, error)
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID, limit int) ([]entity.MedicalRecord, error)
	CountByDoctorID(ctx context.Context, doctorID uuid.UUID) (int64, error)
	FindByIdempotencyKey(ctx context.Context, doctorID uuid.UUID, key string) (*entity.MedicalRecord, error)
}
