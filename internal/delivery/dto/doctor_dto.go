package dto

// DoctorProfileResponse represents doctor profile data in responses
type DoctorProfileResponse struct {
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	Specialization     string `json:"specialization,omitempty"`
	Qualification      string `json:"qualification,omitempty"`
	ExperienceYears    int    `json:"experienceYears"`
	Hospital           string `json:"hospital,omitempty"`
	Verified           bool   `json:"verified"`
}

type LabProfileResponse struct {
	LabName    string `json:"labName,omitempty"`
	LabLicense string `json:"labLicense,omitempty"`
	LabType    string `json:"labType,omitempty"`
	Verified   bool   `json:"verified"`
}

type AnimalOwnerProfileResponse struct {
	PetsCount   int      `json:"petsCount"`
	AnimalTypes []string `json:"animalTypes"`
}
