// Package handlers contains HTTP handler functions for the API.
//
// Go Pattern: Handlers in Gin receive a *gin.Context which provides request
// data, response methods, and middleware values. Related handlers are grouped
// into a struct (Handler) holding shared dependencies — dependency injection
// via struct fields, which makes testing easy.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lingokit/lingo-api/internal/database"
	"github.com/lingokit/lingo-api/internal/models"
	"github.com/lingokit/lingo-api/internal/services/diagnostics"
	"github.com/lingokit/lingo-api/internal/services/speech"
)

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	DB           *database.DB
	Transcriber  *speech.Transcriber
	Diagnostics  *diagnostics.Service
	JWTSecret    string
	AccessSecret string
	TokenTTLMin  int
}

// NewHandler creates a new handler with all dependencies.
func NewHandler(db *database.DB, tr *speech.Transcriber, diag *diagnostics.Service, jwtSecret, accessSecret string, tokenTTLMin int) *Handler {
	return &Handler{
		DB:           db,
		Transcriber:  tr,
		Diagnostics:  diag,
		JWTSecret:    jwtSecret,
		AccessSecret: accessSecret,
		TokenTTLMin:  tokenTTLMin,
	}
}

// HealthCheck returns the API health status.
// GET /api/v1/health
func (h *Handler) HealthCheck(c *gin.Context) {
	// Check database connectivity
	dbStatus := "healthy"
	if err := h.DB.HealthCheck(c.Request.Context()); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	speechStatus := "configured"
	if !h.Transcriber.IsConfigured() {
		speechStatus = "not_configured"
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "ok",
		Version:  "1.0.0",
		Database: dbStatus,
		Speech:   speechStatus,
	})
}
