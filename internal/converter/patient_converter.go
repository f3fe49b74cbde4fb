package converter

import (
	"strings"
	"time"

	"health-records-service/internal/delivery/dto"
	"health-records-service/internal/domain/entity"
)

const neverVisited = "Never"

// PatientProfileToResponse converts a PatientProfile entity to its DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientProfileResponse{
		AadhaarNumber:     profile.AadhaarNumber,
		BloodGroup:        profile.BloodGroup,
		Allergies:         nonNil(profile.Allergies),
		ChronicConditions: nonNil(profile.ChronicConditions),
		LastVisit:         formatLastVisit(profile.LastVisitAt),
	}
}

// PatientToSearchResult builds the summary shown to doctors. The patient's
// profile may be absent; its fields are then left empty.
func PatientToSearchResult(user *entity.User) dto.PatientSearchResult {
	result := dto.PatientSearchResult{
		ID:        user.HealthID,
		Name:      user.Name,
		Age:       user.Age,
		Gender:    user.Gender,
		Contact:   user.Phone,
		Address:   joinAddress(user.City, user.State),
		LastVisit: neverVisited,
	}
	if user.PatientProfile != nil {
		result.BloodGroup = user.PatientProfile.BloodGroup
		result.LastVisit = formatLastVisit(user.PatientProfile.LastVisitAt)
	}
	return result
}

func formatLastVisit(at *time.Time) string {
	if at == nil || at.IsZero() {
		return neverVisited
	}
	return at.Format(time.DateOnly)
}

func joinAddress(city, state string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{city, state} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
