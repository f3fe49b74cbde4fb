package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecordType is the kind of clinical encounter.
type RecordType string

const (
	RecordTypeConsultation RecordType = "consultation"
	RecordTypeFollowup     RecordType = "followup"
	RecordTypeEmergency    RecordType = "emergency"
	RecordTypeRoutine      RecordType = "routine"
	RecordTypeLabTest      RecordType = "lab_test"
)

// ParseRecordType accepts the known record types; empty means consultation.
func ParseRecordType(s string) (RecordType, bool) {
	switch t := RecordType(s); t {
	case "":
		return RecordTypeConsultation, true
	case RecordTypeConsultation, RecordTypeFollowup, RecordTypeEmergency, RecordTypeRoutine, RecordTypeLabTest:
		return t, true
	}
	return "", false
}

// RecordStatus represents the status of a medical record
type RecordStatus string

const (
	RecordStatusActive    RecordStatus = "active"
	RecordStatusCompleted RecordStatus = "completed"
	RecordStatusCancelled RecordStatus = "cancelled"
)

type Symptoms struct {
	Primary     []string `json:"primary"`
	Description string   `json:"description"`
}

type Diagnosis struct {
	Condition   string `json:"condition"`
	Description string `json:"description"`
}

// VitalSigns holds only the measurements that were supplied.
type VitalSigns struct {
	BloodPressure    string   `json:"bloodPressure,omitempty"`
	Weight           *float64 `json:"weight,omitempty"`
	OxygenSaturation *float64 `json:"oxygenSaturation,omitempty"`
}

type Prescription struct {
	MedicineName string `json:"medicineName"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
}

type Treatment struct {
	Prescriptions []Prescription `json:"prescriptions"`
}

// MedicalRecord is one doctor-authored clinical encounter. Rows are never
// updated or deleted; corrections are new records.
type MedicalRecord struct {
	ID             uuid.UUID                      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RecordID       string                         `gorm:"type:varchar(40);uniqueIndex;not null" json:"record_id"`
	PatientID      uuid.UUID                      `gorm:"type:uuid;not null;index:idx_medical_records_patient_visit,priority:1" json:"patient_id"`
	DoctorID       uuid.UUID                      `gorm:"type:uuid;not null;index;uniqueIndex:idx_medical_records_doctor_idempotency,priority:1" json:"doctor_id"`
	RecordType     RecordType                     `gorm:"type:varchar(20);not null;default:'consultation';index" json:"record_type"`
	DateOfVisit    time.Time                      `gorm:"type:date;not null;index:idx_medical_records_patient_visit,priority:2,sort:desc" json:"date_of_visit"`
	Symptoms       datatypes.JSONType[Symptoms]   `gorm:"type:jsonb;not null" json:"symptoms"`
	Diagnosis      datatypes.JSONType[Diagnosis]  `gorm:"type:jsonb;not null" json:"diagnosis"`
	VitalSigns     datatypes.JSONType[VitalSigns] `gorm:"type:jsonb;not null" json:"vital_signs"`
	Treatment      datatypes.JSONType[Treatment]  `gorm:"type:jsonb;not null" json:"treatment"`
	Notes          string                         `gorm:"type:text" json:"notes"`
	Status         RecordStatus                   `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	IdempotencyKey *string                        `gorm:"type:varchar(128);uniqueIndex:idx_medical_records_doctor_idempotency,priority:2" json:"-"`
	CreatedAt      time.Time                      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time                      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
