package middleware

import (
	"net/http"
	"strings"

	"health-records-service/internal/authz"
	"health-records-service/internal/service"
	"health-records-service/pkg/jwt"
	"health-records-service/pkg/response"

	"github.com/sirupsen/logrus"
)

type AuthMiddleware struct {
	log        *logrus.Logger
	jwtService *jwt.JWTService
	sessions   service.SessionStore
}

func NewAuthMiddleware(log *logrus.Logger, jwtService *jwt.JWTService, sessions service.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		log:        log,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// Authenticate resolves the bearer token to a caller and stores it in the
// request context. Tokens whose session was revoked are refused.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		caller := authz.CallerFromClaims(claims)
		if caller == nil {
			response.Unauthorized(w, "Invalid token claims")
			return
		}

		exists, err := m.sessions.Exists(r.Context(), caller.ID, caller.TokenID)
		if err != nil {
			m.log.Warnf("Failed to check session: %+v", err)
			response.ServiceUnavailable(w, "Session store unavailable", retryAfterSeconds)
			return
		}
		if !exists {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		next.ServeHTTP(w, r.WithContext(authz.WithCaller(r.Context(), caller)))
	})
}
