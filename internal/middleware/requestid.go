// Package middleware provides HTTP middleware for the API.
//
// Go Pattern: Middleware in Gin is a gin.HandlerFunc that calls c.Next() to
// continue the chain, or c.Abort() to stop processing. Similar to Express.js
// middleware, but with explicit control flow.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header used to propagate the correlation identifier.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen caps client-supplied identifiers so a hostile client can't
// stuff arbitrary data into our log lines.
const maxRequestIDLen = 128

const requestIDContextKey = "request_id"

// RequestID returns middleware that assigns or propagates a correlation
// identifier per request. An incoming X-Request-ID is reused if it looks
// sane; otherwise a fresh UUID is generated. The identifier is stored in the
// context and echoed back on the response so clients and logs can be matched
// up later.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.New().String()
		}

		c.Set(requestIDContextKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID retrieves the correlation identifier from the request context.
// Returns "" if the RequestID middleware has not run.
func GetRequestID(c *gin.Context) string {
	val, exists := c.Get(requestIDContextKey)
	if !exists {
		return ""
	}
	id, ok := val.(string)
	if !ok {
		return ""
	}
	return id
}
