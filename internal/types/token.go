package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims represents the claims in a session token.
// RegisteredClaims.ID carries the session ID.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
}

// SessionID returns the ID of the server-side session the token refers to
func (c *SessionClaims) SessionID() string {
	return c.ID
}
