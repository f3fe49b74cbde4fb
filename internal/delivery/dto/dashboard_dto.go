package dto

// DashboardResponse carries exactly one role section, matching Role.
type DashboardResponse struct {
	Role        string                `json:"role"`
	User        SessionUserResponse   `json:"user"`
	Patient     *PatientDashboard     `json:"patient,omitempty"`
	Doctor      *DoctorDashboard      `json:"doctor,omitempty"`
	Lab         *LabDashboard         `json:"lab,omitempty"`
	AnimalOwner *AnimalOwnerDashboard `json:"animalOwner,omitempty"`
	Admin       *AdminDashboard       `json:"admin,omitempty"`
}

type PatientDashboard struct {
	Profile       *PatientProfileResponse `json:"profile"`
	TotalRecords  int64                   `json:"totalRecords"`
	RecentRecords []MedicalRecordResponse `json:"recentRecords"`
}

type DoctorDashboard struct {
	Profile       *DoctorProfileResponse  `json:"profile"`
	TotalRecords  int64                   `json:"totalRecords"`
	RecentRecords []MedicalRecordResponse `json:"recentRecords"`
}

type LabDashboard struct {
	Profile *LabProfileResponse `json:"profile"`
}

type AnimalOwnerDashboard struct {
	PetsCount   int      `json:"petsCount"`
	AnimalTypes []string `json:"animalTypes"`
}

type AdminDashboard struct {
	UsersByRole map[string]int64 `json:"usersByRole"`
	TotalUsers  int64            `json:"totalUsers"`
}
