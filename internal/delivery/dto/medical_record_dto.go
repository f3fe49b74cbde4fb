package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"health-records-service/internal/domain/entity"
)

// NumericString accepts a JSON number or string and keeps its text form.
type NumericString string

func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected number or string: %w", err)
	}
	*n = NumericString(num.String())
	return nil
}

// Request DTOs

// CreateMedicalRecordRequest is the doctor's free-text form. Presence of
// required fields is checked when the record is composed so that the first
// missing field is reported.
type CreateMedicalRecordRequest struct {
	PatientID     string        `json:"patientId" validate:"max=40"`
	Symptoms      string        `json:"symptoms" validate:"max=2000"`
	Diagnosis     string        `json:"diagnosis" validate:"max=2000"`
	Medications   string        `json:"medications" validate:"max=2000"`
	DateOfVisit   string        `json:"dateOfVisit" validate:"max=40"`
	RecordType    string        `json:"recordType" validate:"max=20"`
	BloodPressure string        `json:"bloodPressure" validate:"max=20"`
	Weight        NumericString `json:"weight" validate:"max=20"`
	OxygenLevel   NumericString `json:"oxygenLevel" validate:"max=20"`
	Notes         string        `json:"notes" validate:"max=5000"`
}

// Response DTOs

type CreateMedicalRecordResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	DateOfVisit string    `json:"dateOfVisit"`
	Replayed    bool      `json:"replayed"`
}

type RecordDoctorResponse struct {
	Name           string `json:"name"`
	UserID         string `json:"userId"`
	Specialization string `json:"specialization"`
}

type RecordPatientResponse struct {
	Name   string `json:"name"`
	UserID string `json:"userId"`
}

type MedicalRecordResponse struct {
	ID          string                 `json:"id"`
	RecordType  string                 `json:"recordType"`
	DateOfVisit string                 `json:"dateOfVisit"`
	Symptoms    entity.Symptoms        `json:"symptoms"`
	Diagnosis   entity.Diagnosis       `json:"diagnosis"`
	VitalSigns  entity.VitalSigns      `json:"vitalSigns"`
	Treatment   entity.Treatment       `json:"treatment"`
	Notes       string                 `json:"notes"`
	Status      string                 `json:"status"`
	Doctor      *RecordDoctorResponse  `json:"doctor,omitempty"`
	Patient     *RecordPatientResponse `json:"patient,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}
