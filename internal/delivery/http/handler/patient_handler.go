package handler

import (
	"net/http"

	"health-records-service/internal/authz"
	"health-records-service/internal/usecase"
	"health-records-service/pkg/response"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
	}
}

// Search looks a patient up by exact health ID
// @Summary Search patient
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param healthId query string true "Patient health ID"
// @Success 200 {object} response.Response
// @Router /patients/search [get]
func (h *PatientHandler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.patientUsecase.SearchPatient(r.Context(), authz.CallerFromContext(r.Context()), r.URL.Query().Get("healthId"))
	if err != nil {
		writeError(w, err, "Failed to search patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", result)
}
