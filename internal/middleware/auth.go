package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/platepal/backend/internal/types"
)

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "session"

// Context keys set by the auth middlewares
const (
	userIDKey    = "user_id"
	sessionIDKey = "session_id"
)

// TokenValidator is an interface for validating session tokens
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*types.SessionClaims, error)
}

// TokenFromRequest returns the session token from the cookie, falling back
// to an "Authorization: Bearer" header.
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		return token
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func authenticate(c *gin.Context, validator TokenValidator) bool {
	token := TokenFromRequest(c)
	if token == "" {
		return false
	}

	claims, err := validator.ValidateToken(c.Request.Context(), token)
	if err != nil {
		return false
	}

	// Store user info in context
	c.Set(userIDKey, claims.UserID)
	c.Set(sessionIDKey, claims.SessionID())
	return true
}

// AuthMiddleware rejects unauthenticated JSON requests with 401
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, validator) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// OptionalAuth records the user when the request carries a valid session and
// lets every request through
func OptionalAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticate(c, validator)
		c.Next()
	}
}

// RequireLogin redirects unauthenticated page requests to the login page
func RequireLogin(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, validator) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user's ID
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}

// SessionIDFromContext returns the ID of the session the request was authenticated with
func SessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID := c.GetString(sessionIDKey)
	return sessionID, sessionID != ""
}
