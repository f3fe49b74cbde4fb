package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity document shared by every role.
type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HealthID    string     `gorm:"column:user_id;type:varchar(40);uniqueIndex;not null" json:"user_id"`
	Email       string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"type:text;not null" json:"-"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Role        Role       `gorm:"column:user_type;type:varchar(20);not null;index" json:"user_type"`
	Phone       string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Age         *int       `json:"age,omitempty"`
	Gender      string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	City        string     `gorm:"type:varchar(100)" json:"city,omitempty"`
	State       string     `gorm:"type:varchar(100)" json:"state,omitempty"`
	IsActive    *bool      `gorm:"not null;default:true;index" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	PatientProfile     *PatientProfile     `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
	DoctorProfile      *DoctorProfile      `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
	LabProfile         *LabProfile         `gorm:"foreignKey:UserID" json:"lab_profile,omitempty"`
	AnimalOwnerProfile *AnimalOwnerProfile `gorm:"foreignKey:UserID" json:"animal_owner_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Active treats a missing flag as active, matching the column default.
func (u *User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)
