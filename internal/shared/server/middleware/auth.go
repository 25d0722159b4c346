package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/auth"
	"portfolio-backend/internal/shared/server/respond"
)

const isOwnerKey = "isOwner"

// Auth parses a Bearer token when present and stores the owner flag in
// context. Requests without a token pass through as anonymous readers.
func Auth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			c.Set(isOwnerKey, false)
			c.Next()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil || !claims.Owner {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		c.Set(isOwnerKey, true)
		c.Next()
	}
}

// RequireOwner aborts with 401 unless the request carries a valid owner token.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsOwner(c) {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "owner token required", nil)
			return
		}
		c.Next()
	}
}

// IsOwner reports whether the auth middleware identified the owner.
func IsOwner(c *gin.Context) bool {
	if c == nil {
		return false
	}
	val, _ := c.Get(isOwnerKey)
	owner, ok := val.(bool)
	return ok && owner
}
