package apikey

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware returns a gin middleware enforcing the policy. Rejected
// requests receive 403 with the body "Invalid api-key" and the handler
// chain is aborted; admitted requests proceed unmodified.
func Middleware(p Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p.Allow(c.Request.Method, c.GetHeader(HeaderName)) {
			c.Next()
			return
		}
		c.String(http.StatusForbidden, forbiddenBody)
		c.Abort()
	}
}
