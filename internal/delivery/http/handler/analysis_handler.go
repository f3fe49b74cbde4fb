package handler

import (
	"net/http"

	"health-records-service/internal/authz"
	"health-records-service/internal/delivery/dto"
	"health-records-service/internal/usecase"
	"health-records-service/pkg/response"
	"health-records-service/pkg/validator"
)

type AnalysisHandler struct {
	analysisUsecase usecase.AnalysisUsecase
	validator       *validator.CustomValidator
}

func NewAnalysisHandler(analysisUsecase usecase.AnalysisUsecase, validator *validator.CustomValidator) *AnalysisHandler {
	return &AnalysisHandler{
		analysisUsecase: analysisUsecase,
		validator:       validator,
	}
}

// Analyze runs a health risk prediction
// @Summary Health analysis
// @Tags Analysis
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AnalysisRequest true "Health parameters"
// @Success 200 {object} response.Response
// @Router /analysis [post]
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalysisRequest
	if err := decodeBody(w, r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.analysisUsecase.Analyze(r.Context(), authz.CallerFromContext(r.Context()), &req)
	if err != nil {
		writeError(w, err, "Failed to run analysis")
		return
	}

	response.Success(w, http.StatusOK, "Analysis completed", result)
}
