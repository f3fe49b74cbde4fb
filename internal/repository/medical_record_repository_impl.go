package repository

import (
	"context"
	"errors"

	"health-records-service/internal/domain/entity"
	domainRepo "health-records-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const recordOrder = "date_of_visit DESC, created_at DESC"

type medicalRecordRepository struct {
	db *gorm.DB
}

func NewMedicalRecordRepository(db *gorm.DB) domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *entity.MedicalRecord) error {
	return r.db.WithContext(ctx).Omit("Patient", "Doctor").Create(record).Error
}

func (r *medicalRecordRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID, limit int) ([]entity.MedicalRecord, error) {
	records := []entity.MedicalRecord{}
	query := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Doctor.DoctorProfile").
		Where("patient_id = ?", patientID).
		Order(recordOrder)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) CountByPatientID(ctx context.Context, patientID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.MedicalRecord{}).
		Where("patient_id = ?", patientID).
		Count(&total).Error
	return total, err
}

func (r *medicalRecordRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID, limit int) ([]entity.MedicalRecord, error) {
	records := []entity.MedicalRecord{}
	query := r.db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order(recordOrder)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) CountByDoctorID(ctx context.Context, doctorID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.MedicalRecord{}).
		Where("doctor_id = ?", doctorID).
		Count(&total).Error
	return total, err
}

func (r *medicalRecordRepository) FindByIdempotencyKey(ctx context.Context, doctorID uuid.UUID, key string) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND idempotency_key = ?", doctorID, key).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
