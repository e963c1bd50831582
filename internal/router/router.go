// Package router sets up all HTTP routes for the API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lingokit/lingo-api/internal/config"
	"github.com/lingokit/lingo-api/internal/database"
	"github.com/lingokit/lingo-api/internal/handlers"
	"github.com/lingokit/lingo-api/internal/middleware"
	"github.com/lingokit/lingo-api/internal/services/diagnostics"
	"github.com/lingokit/lingo-api/internal/services/speech"
)

// Setup creates and configures the Gin router with all routes.
func Setup(cfg *config.Config, db *database.DB, tr *speech.Transcriber, diag *diagnostics.Service) *gin.Engine {
	// gin reads GIN_MODE at package init, before config is loaded, so the
	// configured mode has to be applied explicitly.
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.HTTPLogger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	h := handlers.NewHandler(db, tr, diag, cfg.JWTSecret, cfg.AccessSecret, cfg.TokenTTLMin)
	rateLimiter := middleware.NewRateLimiter(cfg.DefaultRateLimit)

	// --- Public Routes (no auth required) ---
	r.GET("/api/v1/health", h.HealthCheck)
	r.POST("/api/v1/auth/token", h.IssueToken)

	// --- Device-token protected routes ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.DeviceAuth(db, cfg.JWTSecret))
	protected.Use(rateLimiter.RateLimit())
	{
		// Session
		protected.POST("/auth/refresh", h.RefreshToken)
		protected.GET("/auth/device", h.GetDevice)
		protected.PATCH("/auth/device", h.UpdateDevice)

		// Speech transcription (LK-7, LK-8)
		protected.POST("/speech/transcribe", h.Transcribe)
		protected.GET("/speech/health", h.SpeechHealth)
		protected.GET("/speech/transcriptions", h.ListTranscriptions)
		protected.GET("/speech/transcriptions/:id", h.GetTranscription)
		protected.GET("/speech/transcriptions/:id/export", h.ExportTranscription)

		// Vocabulary & drills (LK-9, LK-11)
		protected.GET("/vocab/sets", h.ListVocabSets)
		protected.GET("/vocab/sets/:level/:topic", h.GetVocabSet)
		protected.POST("/drills", h.CreateDrill)
		protected.POST("/drills/results", h.RecordResults)
		protected.GET("/stats", h.GetStats)

		// Diagnostics (LK-13)
		protected.GET("/diagnostics", h.GetDiagnostics)
	}

	return r
}
