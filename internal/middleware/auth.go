package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/oguzk/mobilebill/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// subscriberNoKey is the context key for the authenticated subscriber number.
	subscriberNoKey contextKey = "subscriber_no"
)

// SubscriberNo extracts the authenticated subscriber number from the context.
// Returns empty string if not found.
func SubscriberNo(ctx context.Context) string {
	subscriberNo, _ := ctx.Value(subscriberNoKey).(string)
	return subscriberNo
}

// AuthMiddleware validates bearer tokens on protected routes.
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// Handler wraps an HTTP handler with bearer-token authentication. It extracts
// the token from the Authorization header, validates it, and adds the subject
// subscriber number to the request context. Requests with a missing,
// malformed, invalid or expired token are rejected with 401 before the
// handler runs.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w, auth.ErrMissingToken.Error())
			return
		}

		// Parse Bearer token
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(w, auth.ErrInvalidToken.Error())
			return
		}

		claims, err := m.jwtManager.Validate(parts[1])
		if err != nil {
			unauthorized(w, auth.ErrInvalidToken.Error())
			return
		}

		ctx := context.WithValue(r.Context(), subscriberNoKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
