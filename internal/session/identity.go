package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/voyage-travel/storefront/internal/models"
)

// ErrMalformedToken is returned by DecodeIdentity when the token is not a
// well-formed three-part base64url JSON token.
var ErrMalformedToken = errors.New("session: malformed token")

// DecodeIdentity parses the payload segment of a dot-separated token as
// base64url JSON and extracts the display identity from it. The signature
// is deliberately not verified: the result is used for greetings and form
// prefills only, and every privileged API call still carries the raw
// token for server-side verification.
//
// The travel API nests the identity under a "user" claim; tokens that
// carry name/email at the top level are accepted as well.
func DecodeIdentity(token string) (*models.Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	payload := claims
	if nested, ok := claims["user"].(map[string]any); ok {
		payload = nested
	}

	id := &models.Identity{}
	if name, ok := payload["name"].(string); ok {
		id.Name = name
	}
	if email, ok := payload["email"].(string); ok {
		id.Email = email
	}
	return id, nil
}
