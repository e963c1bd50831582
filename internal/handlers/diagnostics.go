// diagnostics.go serves the startup diagnostics snapshot (LK-13).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDiagnostics returns process/environment metadata captured at startup,
// plus current uptime.
// GET /api/v1/diagnostics
func (h *Handler) GetDiagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, h.Diagnostics.Report())
}
