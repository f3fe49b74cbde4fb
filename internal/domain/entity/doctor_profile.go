package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RegistrationNumber string    `gorm:"type:varchar(50);index" json:"registration_number,omitempty"`
	Specialization     string    `gorm:"type:varchar(100);index" json:"specialization,omitempty"`
	Qualification      string    `gorm:"type:varchar(100)" json:"qualification,omitempty"`
	ExperienceYears    int       `gorm:"not null;default:0" json:"experience_years"`
	Hospital           string    `gorm:"type:varchar(255)" json:"hospital,omitempty"`
	Verified           bool      `gorm:"not null;default:false" json:"verified"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
