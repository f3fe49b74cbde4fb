package repository

import (
	"context"
	"errors"
	"time"

	"health-records-service/internal/domain/entity"
	domainRepo "health-records-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientProfileRepository struct {
	db *gorm.DB
}

func NewPatientProfileRepository(db *gorm.DB) domainRepo.PatientProfileRepository {
	return &patientProfileRepository{db: db}
}

func (r *patientProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *patientProfileRepository) UpdateLastVisit(ctx context.Context, userID uuid.UUID, visit time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.PatientProfile{}).
		Where("user_id = ?", userID).
		Update("last_visit_at", visit).Error
}
