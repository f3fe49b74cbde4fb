package service

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"health-records-service/internal/domain/entity"
	"health-records-service/pkg/apperror"
)

const (
	placeholderDosage    = "As prescribed"
	placeholderFrequency = "As needed"
)

// RecordInput is the free-text form a doctor submits.
type RecordInput struct {
	PatientID     string
	Symptoms      string
	Diagnosis     string
	Medications   string
	DateOfVisit   string
	RecordType    string
	BloodPressure string
	Weight        string
	OxygenLevel   string
	Notes         string
}

// ComposedRecord is the structured record ready to be stored, minus identity.
type ComposedRecord struct {
	PatientHealthID string
	RecordType      entity.RecordType
	DateOfVisit     time.Time
	Symptoms        entity.Symptoms
	Diagnosis       entity.Diagnosis
	VitalSigns      entity.VitalSigns
	Treatment       entity.Treatment
	Notes           string
}

// ComposeRecord validates input and shapes it into sub-documents. It is pure:
// the same input always yields the same output and nothing is persisted.
func ComposeRecord(in RecordInput) (*ComposedRecord, error) {
	required := []struct {
		field string
		value string
	}{
		{"patientId", in.PatientID},
		{"symptoms", in.Symptoms},
		{"diagnosis", in.Diagnosis},
		{"medications", in.Medications},
		{"dateOfVisit", in.DateOfVisit},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, apperror.MissingField(r.field)
		}
	}

	dateOfVisit, err := ParseVisitDate(in.DateOfVisit)
	if err != nil {
		return nil, apperror.InvalidFormat("dateOfVisit", err)
	}

	recordType, ok := entity.ParseRecordType(strings.ToLower(strings.TrimSpace(in.RecordType)))
	if !ok {
		return nil, apperror.InvalidFormat("recordType", nil)
	}

	vitals := entity.VitalSigns{BloodPressure: strings.TrimSpace(in.BloodPressure)}
	if vitals.Weight, err = parseOptionalFloat(in.Weight); err != nil {
		return nil, apperror.InvalidFormat("weight", err)
	}
	if vitals.OxygenSaturation, err = parseOptionalFloat(in.OxygenLevel); err != nil {
		return nil, apperror.InvalidFormat("oxygenLevel", err)
	}

	symptoms := strings.TrimSpace(in.Symptoms)
	diagnosis := strings.TrimSpace(in.Diagnosis)

	medications := splitList(in.Medications)
	prescriptions := make([]entity.Prescription, 0, len(medications))
	for _, med := range medications {
		prescriptions = append(prescriptions, entity.Prescription{
			MedicineName: med,
			Dosage:       placeholderDosage,
			Frequency:    placeholderFrequency,
		})
	}

	return &ComposedRecord{
		PatientHealthID: strings.ToUpper(strings.TrimSpace(in.PatientID)),
		RecordType:      recordType,
		DateOfVisit:     dateOfVisit,
		Symptoms: entity.Symptoms{
			Primary:     splitList(symptoms),
			Description: symptoms,
		},
		Diagnosis: entity.Diagnosis{
			Condition:   diagnosis,
			Description: diagnosis,
		},
		VitalSigns: vitals,
		Treatment:  entity.Treatment{Prescriptions: prescriptions},
		Notes:      strings.TrimSpace(in.Notes),
	}, nil
}

// ParseVisitDate accepts YYYY-MM-DD or RFC3339 and returns a UTC date.
func ParseVisitDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

var errNotFinite = errors.New("value is not a finite number")

func parseOptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	// NaN and Inf parse but cannot be stored as JSON
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errNotFinite
	}
	return &v, nil
}

// splitList splits comma separated text into trimmed non-empty items.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}
