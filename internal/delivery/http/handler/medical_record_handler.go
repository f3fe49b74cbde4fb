package handler

import (
	"net/http"
	"strconv"

	"health-records-service/internal/authz"
	"health-records-service/internal/delivery/dto"
	"health-records-service/internal/usecase"
	"health-records-service/pkg/response"
	"health-records-service/pkg/validator"

	"github.com/gorilla/mux"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type MedicalRecordHandler struct {
	recordUsecase usecase.RecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.RecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

// Create handles record creation by a doctor
// @Summary Create medical record
// @Tags Medical Records
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replay protection key"
// @Param request body dto.CreateMedicalRecordRequest true "Record"
// @Success 201 {object} response.Response
// @Success 200 {object} response.Response "Replayed"
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records [post]
func (h *MedicalRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicalRecordRequest
	if err := decodeBody(w, r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	caller := authz.CallerFromContext(r.Context())
	record, err := h.recordUsecase.CreateRecord(r.Context(), caller, &req, r.Header.Get(IdempotencyKeyHeader))
	if err != nil {
		writeError(w, err, "Failed to create medical record")
		return
	}

	if record.Replayed {
		response.Success(w, http.StatusOK, "Medical record already created", record)
		return
	}
	response.Success(w, http.StatusCreated, "Medical record created successfully", record)
}

// ListForPatient returns a patient's records, newest visit first
// @Summary List patient records
// @Tags Medical Records
// @Security BearerAuth
// @Produce json
// @Param patientId path string true "Patient health ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /medical-records/patient/{patientId} [get]
func (h *MedicalRecordHandler) ListForPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	records, err := h.recordUsecase.ListRecordsForPatient(r.Context(), authz.CallerFromContext(r.Context()), vars["patientId"])
	if err != nil {
		writeError(w, err, "Failed to get medical records")
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", records)
}

// ListMine returns the records the calling doctor authored
// @Summary List authored records
// @Tags Medical Records
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum records" default(50)
// @Success 200 {object} response.Response
// @Router /medical-records/mine [get]
func (h *MedicalRecordHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := h.recordUsecase.ListRecordsByDoctor(r.Context(), authz.CallerFromContext(r.Context()), limit)
	if err != nil {
		writeError(w, err, "Failed to get medical records")
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", records)
}
