package converter

import (
	"time"

	"health-records-service/internal/delivery/dto"
	"health-records-service/internal/domain/entity"
)

const unknownDoctor = "Unknown Doctor"

// MedicalRecordToResponse converts a MedicalRecord entity to its DTO.
// The authoring doctor is always described; a missing doctor row becomes
// "Unknown Doctor".
func MedicalRecordToResponse(record *entity.MedicalRecord) dto.MedicalRecordResponse {
	resp := dto.MedicalRecordResponse{
		ID:          record.RecordID,
		RecordType:  string(record.RecordType),
		DateOfVisit: record.DateOfVisit.Format(time.DateOnly),
		Symptoms:    record.Symptoms.Data(),
		Diagnosis:   record.Diagnosis.Data(),
		VitalSigns:  record.VitalSigns.Data(),
		Treatment:   record.Treatment.Data(),
		Notes:       record.Notes,
		Status:      string(record.Status),
		Doctor:      &dto.RecordDoctorResponse{Name: unknownDoctor},
		CreatedAt:   record.CreatedAt,
	}
	if resp.Symptoms.Primary == nil {
		resp.Symptoms.Primary = []string{}
	}
	if resp.Treatment.Prescriptions == nil {
		resp.Treatment.Prescriptions = []entity.Prescription{}
	}

	if doctor := record.Doctor; doctor != nil {
		resp.Doctor.Name = doctor.Name
		resp.Doctor.UserID = doctor.HealthID
		if doctor.DoctorProfile != nil {
			resp.Doctor.Specialization = doctor.DoctorProfile.Specialization
		}
	}
	if patient := record.Patient; patient != nil {
		resp.Patient = &dto.RecordPatientResponse{
			Name:   patient.Name,
			UserID: patient.HealthID,
		}
	}

	return resp
}

// MedicalRecordsToResponses keeps input order and never returns nil.
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = MedicalRecordToResponse(&records[i])
	}
	return responses
}

func MedicalRecordToCreateResponse(record *entity.MedicalRecord, replayed bool) *dto.CreateMedicalRecordResponse {
	return &dto.CreateMedicalRecordResponse{
		ID:          record.RecordID,
		CreatedAt:   record.CreatedAt,
		DateOfVisit: record.DateOfVisit.Format(time.DateOnly),
		Replayed:    replayed,
	}
}
