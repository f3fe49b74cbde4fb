package entity

import "github.com/google/uuid"

type LabProfile struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	LabName    string    `gorm:"type:varchar(255)" json:"lab_name,omitempty"`
	LabLicense string    `gorm:"type:varchar(100)" json:"lab_license,omitempty"`
	LabType    string    `gorm:"type:varchar(50)" json:"lab_type,omitempty"`
	Verified   bool      `gorm:"not null;default:false" json:"verified"`
}

func (LabProfile) TableName() string {
	return "lab_profiles"
}
