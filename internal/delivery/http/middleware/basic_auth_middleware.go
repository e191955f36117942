package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"clinic-backend/pkg/response"
)

type contextKey string

const AdminUserKey contextKey = "admin_user"

// BasicAuthMiddleware protects the admin API with HTTP basic auth.
// A single admin account is configured at startup.
type BasicAuthMiddleware struct {
	username string
	password string
}

func NewBasicAuthMiddleware(username, password string) *BasicAuthMiddleware {
	return &BasicAuthMiddleware{
		username: username,
		password: password,
	}
}

func (m *BasicAuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok || !m.credentialsMatch(username, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="Admin Panel"`)
			response.Unauthorized(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), AdminUserKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// credentialsMatch compares in constant time so timing does not leak
// how much of the credential was correct.
func (m *BasicAuthMiddleware) credentialsMatch(username, password string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(m.username))
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(m.password))
	return userMatch == 1 && passMatch == 1
}

// GetAdminUserFromContext extracts the authenticated admin username from context
func GetAdminUserFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(AdminUserKey).(string)
	return username, ok
}
