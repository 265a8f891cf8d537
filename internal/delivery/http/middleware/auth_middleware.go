package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fisio-connect-api/internal/session"
	"fisio-connect-api/pkg/response"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	IsStaffKey  contextKey = "is_staff"
	TokenKey    contextKey = "token"
)

type AuthMiddleware struct {
	sessions session.Store
}

func NewAuthMiddleware(sessions session.Store) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		token := parts[1]

		claims, err := m.sessions.Validate(r.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrSessionRevoked) {
				response.Unauthorized(w, "Session has been revoked")
				return
			}
			if errors.Is(err, session.ErrInvalidSession) {
				response.Unauthorized(w, "Invalid or expired token")
				return
			}
			response.InternalServerError(w, "Failed to validate token")
			return
		}

		// Add user info to context
		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, IsStaffKey, claims.IsStaff)
		ctx = context.WithValue(ctx, TokenKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUsernameFromContext extracts username from context
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// GetIsStaffFromContext extracts the staff flag from context
func GetIsStaffFromContext(ctx context.Context) (bool, bool) {
	isStaff, ok := ctx.Value(IsStaffKey).(bool)
	return isStaff, ok
}

// GetTokenFromContext extracts the raw session token from context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}
