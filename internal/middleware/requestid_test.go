// requestid_test.go — Tests for correlation identifier assignment.
package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// newRequestIDRouter builds a minimal router that records the context value.
func newRequestIDRouter(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		*captured = GetRequestID(c)
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestIDGenerated(t *testing.T) {
	var captured string
	r := newRequestIDRouter(&captured)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	r.ServeHTTP(w, req)

	if captured == "" {
		t.Fatal("no request ID stored in context")
	}
	if got := w.Header().Get(RequestIDHeader); got != captured {
		t.Errorf("response header %q != context value %q", got, captured)
	}
}

func TestRequestIDPropagated(t *testing.T) {
	var captured string
	r := newRequestIDRouter(&captured)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	r.ServeHTTP(w, req)

	if captured != "client-supplied-id" {
		t.Errorf("request ID = %q, want client-supplied value", captured)
	}
	if got := w.Header().Get(RequestIDHeader); got != "client-supplied-id" {
		t.Errorf("response header = %q, want client-supplied value", got)
	}
}

func TestRequestIDOversizedReplaced(t *testing.T) {
	var captured string
	r := newRequestIDRouter(&captured)

	oversized := strings.Repeat("x", maxRequestIDLen+1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, oversized)
	r.ServeHTTP(w, req)

	if captured == oversized {
		t.Error("oversized client ID was propagated, want replacement")
	}
	if captured == "" {
		t.Error("no replacement ID generated")
	}
}
