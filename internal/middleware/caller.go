package middleware

import (
	"github.com/gin-gonic/gin"
)

// CallerHeader carries the caller identity established by the upstream
// authentication layer. The ledger itself never derives identity; it trusts
// the hosting environment to supply it.
const CallerHeader = "X-Caller-Address"

const callerContextKey = "caller_address"

// CallerExtractor copies the caller identity header into the request context
// so handlers can read it uniformly.
func CallerExtractor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if caller := c.GetHeader(CallerHeader); caller != "" {
			c.Set(callerContextKey, caller)
		}
		c.Next()
	}
}

// CallerAddress returns the caller identity for the request, or empty if the
// upstream layer supplied none.
func CallerAddress(c *gin.Context) string {
	return c.GetString(callerContextKey)
}
