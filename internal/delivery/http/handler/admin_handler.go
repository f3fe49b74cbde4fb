package handler

import (
	"net/http"

	"health-records-service/internal/authz"
	"health-records-service/internal/usecase"
	"health-records-service/pkg/response"

	"github.com/gorilla/mux"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
	}
}

// ActivateUser re-enables an account
// @Summary Activate user
// @Tags Admin
// @Security BearerAuth
// @Param userId path string true "Health ID"
// @Success 200 {object} response.Response
// @Router /admin/users/{userId}/activate [patch]
func (h *AdminHandler) ActivateUser(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

// DeactivateUser disables an account and revokes its sessions
// @Summary Deactivate user
// @Tags Admin
// @Security BearerAuth
// @Param userId path string true "Health ID"
// @Success 200 {object} response.Response
// @Router /admin/users/{userId}/deactivate [patch]
func (h *AdminHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *AdminHandler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	vars := mux.Vars(r)
	user, err := h.adminUsecase.SetUserActive(r.Context(), authz.CallerFromContext(r.Context()), vars["userId"], active)
	if err != nil {
		writeError(w, err, "Failed to update user")
		return
	}

	message := "User activated successfully"
	if !active {
		message = "User deactivated successfully"
	}
	response.Success(w, http.StatusOK, message, user)
}
