// logger.go implements per-request logging tagged with the correlation
// identifier. It replaces gin's default logger so every line carries the
// request ID and can be tied back to the client.
package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// skipLogPaths are hit constantly by load balancers and poll loops; logging
// each probe drowns out real traffic.
var skipLogPaths = map[string]bool{
	"/api/v1/health": true,
}

// HTTPLogger returns middleware that logs method, path, status, and duration
// for each request, tagged with the request's correlation identifier.
// Run it after RequestID so the identifier is available.
func HTTPLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipLogPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start)

		log.Printf("[%s] %s %s -> %d (%s)",
			GetRequestID(c), c.Request.Method, path, status, duration.Round(time.Millisecond))

		// Surface handler errors that never made it into a response body
		for _, e := range c.Errors {
			log.Printf("[%s] ⚠️  handler error: %v", GetRequestID(c), e.Err)
		}
	}
}
