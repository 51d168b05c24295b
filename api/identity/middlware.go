package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-guard/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextClientClaims is the key used to store client claims in the Gin context.
	ContextClientClaims = "clientClaims"
)

// Authoriz rejects requests that lack a valid "Bearer" token.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
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

		c.Set(ContextClientClaims, claims)
		c.Next()
	}
}
