// Package middleware provides HTTP middlewares for session resolution,
// route guarding, and request logging.
package middleware

import (
	"net/http"

	"github.com/voyage-travel/storefront/internal/session"
)

// WithSession resolves the cookie session once per request and stores the
// resulting state (role, raw token, decoded identity) in the request
// context, so downstream handlers and the API client never touch the
// cookie store directly.
func WithSession(m *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st := session.State{
				Role:     m.CurrentRole(r),
				Token:    m.ActiveToken(r),
				Identity: m.Identity(r),
			}
			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), st)))
		})
	}
}
