package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	UserType string `json:"userType" validate:"required,oneof=patient doctor lab animal_owner"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Age      *int   `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender   string `json:"gender" validate:"omitempty,oneof=male female other"`
	City     string `json:"city" validate:"omitempty,max=100"`
	State    string `json:"state" validate:"omitempty,max=100"`

	// Patient
	AadhaarNumber string `json:"aadhaarNumber" validate:"omitempty,max=20"`
	BloodGroup    string `json:"bloodGroup" validate:"omitempty,max=5"`

	// Doctor
	RegistrationNumber string `json:"registrationNumber" validate:"omitempty,max=50"`
	Specialization     string `json:"specialization" validate:"omitempty,max=100"`
	Qualification      string `json:"qualification" validate:"omitempty,max=100"`
	Hospital           string `json:"hospital" validate:"omitempty,max=255"`

	// Lab
	LabName    string `json:"labName" validate:"omitempty,max=255"`
	LabLicense string `json:"labLicense" validate:"omitempty,max=100"`
	LabType    string `json:"labType" validate:"omitempty,max=50"`

	// Animal owner
	PetsCount   *int     `json:"petsCount" validate:"omitempty,gte=0,lte=1000"`
	AnimalTypes []string `json:"animalTypes" validate:"omitempty,max=20,dive,max=50"`
}

type SignInRequest struct {
	UserID   string `json:"userId" validate:"required,max=40"`
	Password string `json:"password" validate:"required,max=72"`
}

// Response DTOs

type SignUpResponse struct {
	UserID   string `json:"userId"`
	UserType string `json:"userType"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// SessionUserResponse is the identity a verified credential resolves to.
type SessionUserResponse struct {
	ID     uuid.UUID `json:"id"`
	UserID string    `json:"userId"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Role   string    `json:"role"`
}

type TokenResponse struct {
	AccessToken string              `json:"accessToken"`
	TokenType   string              `json:"tokenType"`
	ExpiresIn   int64               `json:"expiresIn"`
	User        SessionUserResponse `json:"user"`
}

type UserResponse struct {
	ID                 uuid.UUID                   `json:"id"`
	UserID             string                      `json:"userId"`
	Email              string                      `json:"email"`
	Name               string                      `json:"name"`
	Role               string                      `json:"role"`
	Phone              string                      `json:"phone,omitempty"`
	Age                *int                        `json:"age,omitempty"`
	Gender             string                      `json:"gender,omitempty"`
	City               string                      `json:"city,omitempty"`
	State              string                      `json:"state,omitempty"`
	IsActive           bool                        `json:"isActive"`
	LastLoginAt        *time.Time                  `json:"lastLoginAt,omitempty"`
	PatientProfile     *PatientProfileResponse     `json:"patientProfile,omitempty"`
	DoctorProfile      *DoctorProfileResponse      `json:"doctorProfile,omitempty"`
	LabProfile         *LabProfileResponse         `json:"labProfile,omitempty"`
	AnimalOwnerProfile *AnimalOwnerProfileResponse `json:"animalOwnerProfile,omitempty"`
	CreatedAt          time.Time                   `json:"createdAt"`
	UpdatedAt          time.Time                   `json:"updatedAt"`
}
