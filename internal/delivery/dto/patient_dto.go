package dto

// PatientProfileResponse represents patient profile data in responses
type PatientProfileResponse struct {
	AadhaarNumber     string   `json:"aadhaarNumber,omitempty"`
	BloodGroup        string   `json:"bloodGroup,omitempty"`
	Allergies         []string `json:"allergies"`
	ChronicConditions []string `json:"chronicConditions"`
	LastVisit         string   `json:"lastVisit"`
}

// PatientSearchResult is the summary a doctor sees when looking up a patient.
type PatientSearchResult struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Age        *int   `json:"age"`
	Gender     string `json:"gender"`
	BloodGroup string `json:"bloodGroup"`
	Contact    string `json:"contact"`
	Address    string `json:"address"`
	LastVisit  string `json:"lastVisit"`
}

// PatientSearchResponse holds zero or one match.
type PatientSearchResponse struct {
	Patients []PatientSearchResult `json:"patients"`
}
