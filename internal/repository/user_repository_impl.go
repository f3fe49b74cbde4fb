package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"health-records-service/internal/domain/entity"
	domainRepo "health-records-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user together with whichever role profile is set.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.first(withProfiles(r.db.WithContext(ctx)).Where("id = ?", id))
}

func (r *userRepository) FindByHealthID(ctx context.Context, healthID string) (*entity.User, error) {
	return r.first(r.db.WithContext(ctx).Where("user_id = ?", normalizeHealthID(healthID)))
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))))
}

func (r *userRepository) FindActiveByHealthID(ctx context.Context, healthID string, role entity.Role) (*entity.User, error) {
	return r.first(withProfiles(r.db.WithContext(ctx)).
		Where("user_id = ? AND user_type = ? AND is_active = ?", normalizeHealthID(healthID), role, true))
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.User{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}

func (r *userRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.db.WithContext(ctx).Model(&entity.User{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *userRepository) CountByRole(ctx context.Context) (map[entity.Role]int64, error) {
	var rows []struct {
		Role  entity.Role `gorm:"column:user_type"`
		Total int64
	}
	err := r.db.WithContext(ctx).Model(&entity.User{}).
		Select("user_type, COUNT(*) AS total").
		Group("user_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.Role]int64, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Total
	}
	return counts, nil
}

func (r *userRepository) first(query *gorm.DB) (*entity.User, error) {
	var user entity.User
	err := query.First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func withProfiles(db *gorm.DB) *gorm.DB {
	return db.Preload("PatientProfile").
		Preload("DoctorProfile").
		Preload("LabProfile").
		Preload("AnimalOwnerProfile")
}

func normalizeHealthID(healthID string) string {
	return strings.ToUpper(strings.TrimSpace(healthID))
}
