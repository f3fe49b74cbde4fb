package handler

import (
	"encoding/json"
	"net/http"

	"health-records-service/pkg/apperror"
	"health-records-service/pkg/response"
)

const (
	retryAfterSeconds = 5
	maxBodyBytes      = 1 << 20
)

// writeError maps an application error onto the response envelope by kind.
// Errors without a kind are reported as fallback with status 500.
func writeError(w http.ResponseWriter, err error, fallback string) {
	appErr, ok := apperror.As(err)
	if !ok {
		response.InternalServerError(w, fallback)
		return
	}

	switch appErr.Kind {
	case apperror.KindValidation:
		var details interface{}
		if appErr.Field != "" {
			details = map[string]string{appErr.Field: appErr.Code}
		}
		response.Error(w, http.StatusBadRequest, appErr.Message, details)
	case apperror.KindNotFound:
		response.NotFound(w, appErr.Message)
	case apperror.KindConflict:
		response.Conflict(w, appErr.Message)
	case apperror.KindAuth:
		response.Unauthorized(w, appErr.Message)
	case apperror.KindAuthorization:
		response.Forbidden(w, "Access denied")
	case apperror.KindRateLimited:
		response.TooManyRequests(w, appErr.Message)
	case apperror.KindUpstream:
		response.ServiceUnavailable(w, "Service temporarily unavailable", retryAfterSeconds)
	default:
		response.InternalServerError(w, fallback)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
}
