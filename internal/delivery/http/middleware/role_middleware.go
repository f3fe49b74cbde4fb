package middleware

import (
	"net/http"

	"health-records-service/internal/authz"
	"health-records-service/internal/domain/entity"
	"health-records-service/pkg/response"
)

// RequireRole creates a middleware that checks if the caller has any of the
// allowed roles. The caller is read from context (set by AuthMiddleware).
func RequireRole(allowed ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := authz.CallerFromContext(r.Context())
			if caller == nil {
				response.Unauthorized(w, "Authentication required")
				return
			}

			for _, role := range allowed {
				if caller.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "Access denied")
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}
