package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ClientAuth gates every user route behind a shared-secret header check.
// The caller sends its identity in the User-Agent header and the value
// must match the one the process was configured with; anything else is
// rejected outright. Equality test only, there is no expiry and no
// rate limiting.
func ClientAuth(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("User-Agent") != expected {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Header is not valid."})
			return
		}

		c.Next()
	}
}
