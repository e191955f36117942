package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetAdminUserFromContext(r.Context())
		assert.True(t, ok)
		w.Write([]byte(user))
	})
}

func TestBasicAuthRejectsMissingCredentials(t *testing.T) {
	m := NewBasicAuthMiddleware("admin", "secret")
	handler := m.Authenticate(protectedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
}

func TestBasicAuthRejectsWrongPassword(t *testing.T) {
	m := NewBasicAuthMiddleware("admin", "secret")
	handler := m.Authenticate(protectedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.SetBasicAuth("admin", "wrong")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBasicAuthAcceptsValidCredentials(t *testing.T) {
	m := NewBasicAuthMiddleware("admin", "secret")
	handler := m.Authenticate(protectedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.SetBasicAuth("admin", "secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", rec.Body.String())
}
