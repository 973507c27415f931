// Package session tracks which identity class is active for the current
// browser session and derives display identity from the active token.
//
// Two token slots exist, one per privileged role. They are mutually
// exclusive: setting one clears the other, so the route guard can trust
// that at most one privileged role is ever active.
package session

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/voyage-travel/storefront/internal/models"
)

// Role is the active identity class for the current session.
type Role string

const (
	// RoleAnonymous means neither token slot is populated.
	RoleAnonymous Role = "anonymous"
	// RoleUser means the end-user token slot is populated.
	RoleUser Role = "user"
	// RoleAdmin means the administrator token slot is populated.
	RoleAdmin Role = "admin"
)

// ErrInvalidToken is returned by LoginAs when the token cannot be parsed
// into a payload.
var ErrInvalidToken = errors.New("session: invalid token")

const (
	cookieName = "voyage_session"

	adminTokenKey = "adminAuthToken"
	userTokenKey  = "userAuthToken"
	draftIDKey    = "bookingDraftID"
)

// Manager owns the cookie-backed session and its two token slots.
type Manager struct {
	store sessions.Store
}

// NewManager builds a Manager over a cookie store signed with secret.
func NewManager(secret []byte) *Manager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0, // session cookie, dropped with the browser tab
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// session loads the named session, falling back to a fresh one when the
// cookie is unreadable.
func (m *Manager) session(r *http.Request) *sessions.Session {
	sess, err := m.store.Get(r, cookieName)
	if err != nil {
		sess, _ = m.store.New(r, cookieName)
	}
	return sess
}

// LoginAs stores token under the slot for role and clears the other
// role's slot. It fails with ErrInvalidToken when the token cannot be
// decoded into an identity payload, leaving the session untouched.
func (m *Manager) LoginAs(w http.ResponseWriter, r *http.Request, role Role, token string) error {
	if role != RoleUser && role != RoleAdmin {
		return ErrInvalidToken
	}
	if _, err := DecodeIdentity(token); err != nil {
		return ErrInvalidToken
	}

	sess := m.session(r)
	switch role {
	case RoleAdmin:
		sess.Values[adminTokenKey] = token
		delete(sess.Values, userTokenKey)
	case RoleUser:
		sess.Values[userTokenKey] = token
		delete(sess.Values, adminTokenKey)
	}
	return sess.Save(r, w)
}

// Logout clears both token slots and the booking draft reference.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	sess := m.session(r)
	delete(sess.Values, adminTokenKey)
	delete(sess.Values, userTokenKey)
	delete(sess.Values, draftIDKey)
	return sess.Save(r, w)
}

// CurrentRole reports which slot is populated. The admin slot wins if
// both are somehow present, matching the token precedence of the API
// request header.
func (m *Manager) CurrentRole(r *http.Request) Role {
	sess := m.session(r)
	if s, ok := sess.Values[adminTokenKey].(string); ok && s != "" {
		return RoleAdmin
	}
	if s, ok := sess.Values[userTokenKey].(string); ok && s != "" {
		return RoleUser
	}
	return RoleAnonymous
}

// ActiveToken returns the populated slot's raw token, or "" for an
// anonymous session.
func (m *Manager) ActiveToken(r *http.Request) string {
	sess := m.session(r)
	if s, ok := sess.Values[adminTokenKey].(string); ok && s != "" {
		return s
	}
	if s, ok := sess.Values[userTokenKey].(string); ok && s != "" {
		return s
	}
	return ""
}

// Identity decodes the display identity from the active token. A missing
// or malformed token yields nil, never an error: the decode is advisory.
func (m *Manager) Identity(r *http.Request) *models.Identity {
	token := m.ActiveToken(r)
	if token == "" {
		return nil
	}
	id, err := DecodeIdentity(token)
	if err != nil {
		return nil
	}
	return id
}

// DraftID returns the booking draft id bound to this session, if any.
func (m *Manager) DraftID(r *http.Request) string {
	sess := m.session(r)
	if s, ok := sess.Values[draftIDKey].(string); ok {
		return s
	}
	return ""
}

// SetDraftID binds a booking draft id to this session. An empty id
// clears the binding.
func (m *Manager) SetDraftID(w http.ResponseWriter, r *http.Request, id string) error {
	sess := m.session(r)
	if id == "" {
		delete(sess.Values, draftIDKey)
	} else {
		sess.Values[draftIDKey] = id
	}
	return sess.Save(r, w)
}
