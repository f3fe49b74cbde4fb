package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID            uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"user_id"`
	AadhaarNumber     string                      `gorm:"type:varchar(20);index" json:"aadhaar_number,omitempty"`
	BloodGroup        string                      `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	Allergies         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"allergies"`
	ChronicConditions datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"chronic_conditions"`
	LastVisitAt       *time.Time                  `gorm:"type:date" json:"last_visit_at,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
