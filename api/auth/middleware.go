// Package auth holds the bearer-token middleware guarding protected routes.
package auth

import (
	"net/http"
	"slices"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextClaims is the key used to store token claims in the Gin context.
	ContextClaims = "claims"
)

// Authorize rejects requests without a valid bearer token and stores the
// decoded claims in the context.
func Authorize(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// RequireScope lets the request through only when Authorize stored claims
// that include scope.
func RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := c.Get(ContextClaims)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims, ok := value.(*i.Claims)
		if !ok || !slices.Contains(claims.Scopes, scope) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
