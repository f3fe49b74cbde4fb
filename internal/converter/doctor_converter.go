package converter

import (
	"health-records-service/internal/delivery/dto"
	"health-records-service/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to its DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorProfileResponse{
		RegistrationNumber: profile.RegistrationNumber,
		Specialization:     profile.Specialization,
		Qualification:      profile.Qualification,
		ExperienceYears:    profile.ExperienceYears,
		Hospital:           profile.Hospital,
		Verified:           profile.Verified,
	}
}

func LabProfileToResponse(profile *entity.LabProfile) *dto.LabProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.LabProfileResponse{
		LabName:    profile.LabName,
		LabLicense: profile.LabLicense,
		LabType:    profile.LabType,
		Verified:   profile.Verified,
	}
}

func AnimalOwnerProfileToResponse(profile *entity.AnimalOwnerProfile) *dto.AnimalOwnerProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.AnimalOwnerProfileResponse{
		PetsCount:   profile.PetsCount,
		AnimalTypes: nonNil(profile.AnimalTypes),
	}
}
