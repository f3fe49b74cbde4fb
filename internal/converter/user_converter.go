package converter

import (
	"health-records-service/internal/delivery/dto"
	"health-records-service/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// Role profiles are included when they are loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:                 user.ID,
		UserID:             user.HealthID,
		Email:              user.Email,
		Name:               user.Name,
		Role:               user.Role.String(),
		Phone:              user.Phone,
		Age:                user.Age,
		Gender:             user.Gender,
		City:               user.City,
		State:              user.State,
		IsActive:           user.Active(),
		LastLoginAt:        user.LastLoginAt,
		PatientProfile:     PatientProfileToResponse(user.PatientProfile),
		DoctorProfile:      DoctorProfileToResponse(user.DoctorProfile),
		LabProfile:         LabProfileToResponse(user.LabProfile),
		AnimalOwnerProfile: AnimalOwnerProfileToResponse(user.AnimalOwnerProfile),
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}

// UserToSessionResponse returns the minimal identity, never the password hash.
func UserToSessionResponse(user *entity.User) *dto.SessionUserResponse {
	if user == nil {
		return nil
	}

	return &dto.SessionUserResponse{
		ID:     user.ID,
		UserID: user.HealthID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role.String(),
	}
}
