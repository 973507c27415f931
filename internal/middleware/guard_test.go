package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voyage-travel/storefront/internal/session"
)

func serveAs(t *testing.T, mw func(http.Handler) http.Handler, role session.Role, method, path string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(method, path, nil)
	r = r.WithContext(session.NewContext(r.Context(), session.State{Role: role}))
	w := httptest.NewRecorder()
	mw(next).ServeHTTP(w, r)
	return w, reached
}

func TestRoleBounce(t *testing.T) {
	tests := []struct {
		name     string
		role     session.Role
		method   string
		path     string
		redirect string // "" means the handler is reached
	}{
		{"anonymous browses freely", session.RoleAnonymous, http.MethodGet, "/login", ""},
		{"anonymous reaches landing", session.RoleAnonymous, http.MethodGet, "/landing", ""},

		{"user bounced off landing", session.RoleUser, http.MethodGet, "/landing", "/"},
		{"user bounced off login", session.RoleUser, http.MethodGet, "/login", "/"},
		{"user bounced off register", session.RoleUser, http.MethodGet, "/register", "/"},
		{"user browses catalog", session.RoleUser, http.MethodGet, "/packages", ""},
		{"user posts logout", session.RoleUser, http.MethodPost, "/logout", ""},

		{"admin pinned off public home", session.RoleAdmin, http.MethodGet, "/", "/admin"},
		{"admin pinned off catalog", session.RoleAdmin, http.MethodGet, "/packages", "/admin"},
		{"admin bounced off own login", session.RoleAdmin, http.MethodGet, "/admin/login", "/admin"},
		{"admin bounced off reset", session.RoleAdmin, http.MethodGet, "/admin/reset-password", "/admin"},
		{"admin reaches dashboard", session.RoleAdmin, http.MethodGet, "/admin", ""},
		{"admin reaches admin subpage", session.RoleAdmin, http.MethodGet, "/admin/packages", ""},
		{"admin posts logout", session.RoleAdmin, http.MethodPost, "/logout", ""},
		{"admin fetches stylesheet", session.RoleAdmin, http.MethodGet, "/static/styles.css", ""},
		{"user fetches stylesheet", session.RoleUser, http.MethodGet, "/static/styles.css", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, reached := serveAs(t, RoleBounce, tt.role, tt.method, tt.path)
			if tt.redirect == "" {
				assert.True(t, reached)
				assert.Equal(t, http.StatusOK, w.Code)
				return
			}
			assert.False(t, reached)
			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, tt.redirect, w.Header().Get("Location"))
		})
	}
}

func TestRequireUser(t *testing.T) {
	w, reached := serveAs(t, RequireUser, session.RoleAnonymous, http.MethodGet, "/my-bookings")
	assert.False(t, reached)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w, reached = serveAs(t, RequireUser, session.RoleAdmin, http.MethodGet, "/my-bookings")
	assert.False(t, reached)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w, reached = serveAs(t, RequireUser, session.RoleUser, http.MethodGet, "/my-bookings")
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	w, reached := serveAs(t, RequireAdmin, session.RoleAnonymous, http.MethodGet, "/admin/users")
	assert.False(t, reached)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	w, reached = serveAs(t, RequireAdmin, session.RoleUser, http.MethodGet, "/admin/users")
	assert.False(t, reached)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	w, reached = serveAs(t, RequireAdmin, session.RoleAdmin, http.MethodGet, "/admin/users")
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, w.Code)
}
