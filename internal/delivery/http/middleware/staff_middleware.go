package middleware

import (
	"net/http"

	"fisio-connect-api/pkg/response"
)

// RequireStaff gates admin-only endpoints on the staff flag carried in the
// session claims (set by Authenticate).
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isStaff, ok := GetIsStaffFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Staff information not found")
			return
		}

		if !isStaff {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}

		next.ServeHTTP(w, r)
	})
}
