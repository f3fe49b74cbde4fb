package entity

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AnimalOwnerProfile struct {
	UserID      uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"user_id"`
	PetsCount   int                         `gorm:"not null;default:0" json:"pets_count"`
	AnimalTypes datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"animal_types"`
}

func (AnimalOwnerProfile) TableName() string {
	return "animal_owner_profiles"
}
