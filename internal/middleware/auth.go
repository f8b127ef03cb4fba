package middleware

import (
	"net/http"
	"strings"

	"github.com/01moynul/umkm-web-golang/internal/auth"
	"github.com/gin-gonic/gin"
)

// Keys the middleware chain stores in the gin context.
const (
	ContextAdminID   = "adminID"
	ContextAdminRole = "adminRole"
)

// AuthMiddleware creates a gin.HandlerFunc that only lets requests with a
// valid admin token through.
// Browsers cannot set headers on a websocket handshake, so when allowQuery is
// true the token may also come from the "token" query parameter.
func AuthMiddleware(tokens *auth.TokenManager, allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok && allowQuery {
			tokenString = c.Query("token")
			ok = tokenString != ""
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextAdminID, claims.Subject)
		c.Set(ContextAdminRole, claims.Role)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
