package session

import (
	"context"

	"github.com/voyage-travel/storefront/internal/models"
)

type ctxKey string

const stateKey ctxKey = "session-state"

// State is the per-request snapshot of the session, resolved once by the
// session middleware and carried in the request context.
type State struct {
	Role     Role
	Token    string
	Identity *models.Identity
}

// NewContext returns ctx carrying the session state.
func NewContext(ctx context.Context, st State) context.Context {
	return context.WithValue(ctx, stateKey, st)
}

// FromContext extracts the session state from the request context.
// An absent state reads as anonymous.
func FromContext(ctx context.Context) State {
	if st, ok := ctx.Value(stateKey).(State); ok {
		return st
	}
	return State{Role: RoleAnonymous}
}

// TokenFromContext returns the active session token carried in ctx, or ""
// for an anonymous request. The API client attaches it to outgoing calls.
func TokenFromContext(ctx context.Context) string {
	return FromContext(ctx).Token
}
