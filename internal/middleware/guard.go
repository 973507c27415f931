package middleware

import (
	"net/http"
	"strings"

	"github.com/voyage-travel/storefront/internal/session"
)

// entryPaths are the views an authenticated end-user is bounced away
// from: the marketing landing page, both login screens, registration,
// and admin password recovery.
var entryPaths = map[string]bool{
	"/landing":               true,
	"/login":                 true,
	"/register":              true,
	"/admin/login":           true,
	"/admin/forgot-password": true,
	"/admin/reset-password":  true,
}

// assetPrefix marks requests for shared static assets, which every
// role's pages link and which are never bounced.
const assetPrefix = "/static/"

// RoleBounce redirects authenticated identities away from views that are
// not theirs: an active admin is pinned to the admin section (and off the
// entry views, its own login included), and an active user is bounced off
// entry views back to the public home. It applies to navigations only, so
// form actions like logout and asset requests still go through.
func RoleBounce(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}
		if strings.HasPrefix(r.URL.Path, assetPrefix) {
			next.ServeHTTP(w, r)
			return
		}
		st := session.FromContext(r.Context())
		switch st.Role {
		case session.RoleAdmin:
			if entryPaths[r.URL.Path] || !strings.HasPrefix(r.URL.Path, "/admin") {
				http.Redirect(w, r, "/admin", http.StatusSeeOther)
				return
			}
		case session.RoleUser:
			if entryPaths[r.URL.Path] {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireUser renders its child only when the user role is active,
// redirecting everyone else to the user login.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session.FromContext(r.Context()).Role != session.RoleUser {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin renders its child only when the admin role is active,
// redirecting everyone else to the admin login.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session.FromContext(r.Context()).Role != session.RoleAdmin {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
