// speech.go handles speech transcription HTTP endpoints (LK-7).
//
// POST /api/v1/speech/transcribe — Upload audio for Whisper transcription
// GET  /api/v1/speech/transcriptions — List recent transcriptions
// GET  /api/v1/speech/transcriptions/:id — Get one transcription
// GET  /api/v1/speech/health — Upstream transcription API health
package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/middleware"
	"github.com/lingokit/lingo-api/internal/models"
	"github.com/lingokit/lingo-api/internal/services/speech"
)

// maxAudioSize is the max upload size for audio files (25MB, upstream limit).
const maxAudioSize = 25 << 20 // 25MB

// defaultLanguage matches the app's primary drill language.
const defaultLanguage = "zh"

// Transcribe handles audio file upload and proxies it to the Whisper API.
// POST /api/v1/speech/transcribe
//
// Accepts a multipart upload with field name "file" and an optional
// "language" form field (ISO 639-1, default "zh"). Processing is
// synchronous: the upstream result comes back in this response.
func (h *Handler) Transcribe(c *gin.Context) {
	if !h.Transcriber.IsConfigured() {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "service_unavailable",
			Message: "Speech transcription is not configured. Set the GROQ_API_KEY environment variable.",
			Code:    http.StatusServiceUnavailable,
		})
		return
	}

	device := middleware.GetDevice(c)

	// Limit request body size
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAudioSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "No audio file provided. Upload a file with the field name 'file'. Max size: 25MB.",
			Code:    http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	filename, ok := speech.NormalizeFilename(header.Filename)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_file_type",
			Message: fmt.Sprintf("Unsupported audio format. Supported formats: %s", speech.SupportedExtensions()),
			Code:    http.StatusBadRequest,
		})
		return
	}

	language := c.DefaultPostForm("language", defaultLanguage)

	// Create a processing record first so failed upstream calls still leave
	// a trace in the history.
	t := &models.Transcription{
		DeviceID:     device.DeviceID,
		Filename:     uuid.New().String() + filepath.Ext(filename),
		OriginalName: filename,
		Language:     language,
		Status:       models.StatusProcessing,
	}
	if err := h.DB.CreateTranscription(c.Request.Context(), t); err != nil {
		log.Printf("❌ Failed to create transcription record: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to create transcription record",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	result, err := h.Transcriber.Transcribe(c.Request.Context(), file, filename, language)
	if err != nil {
		log.Printf("❌ Transcription failed for %s: %v", filename, err)
		t.Status = models.StatusFailed
		t.ErrorMessage = err.Error()
		if err := h.DB.UpdateTranscription(c.Request.Context(), t); err != nil {
			log.Printf("⚠️  Failed to mark transcription failed: %v", err)
		}

		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "transcription_failed",
			Message: "Audio transcription failed: " + err.Error(),
			Code:    http.StatusBadGateway,
		})
		return
	}

	segmentsJSON, _ := json.Marshal(result.Segments)

	t.Text = result.Text
	t.Language = result.Language
	t.Duration = result.Duration
	t.WordCount = speech.CountWords(result.Text)
	t.Segments = segmentsJSON
	t.Status = models.StatusCompleted

	if err := h.DB.UpdateTranscription(c.Request.Context(), t); err != nil {
		log.Printf("⚠️  Failed to update transcription record: %v", err)
		// Still return the result to the client
	}

	c.JSON(http.StatusOK, t)
}

// GetTranscription retrieves a single transcription by ID.
// GET /api/v1/speech/transcriptions/:id
func (h *Handler) GetTranscription(c *gin.Context) {
	device := middleware.GetDevice(c)

	t, err := h.DB.GetTranscription(c.Request.Context(), c.Param("id"), device.DeviceID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Transcription not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, t)
}

// ListTranscriptions returns the device's recent transcriptions.
// GET /api/v1/speech/transcriptions?limit=50
func (h *Handler) ListTranscriptions(c *gin.Context) {
	device := middleware.GetDevice(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	list, err := h.DB.ListTranscriptions(c.Request.Context(), device.DeviceID, limit)
	if err != nil {
		log.Printf("❌ Failed to list transcriptions: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to list transcriptions",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if list == nil {
		list = []models.Transcription{}
	}

	c.JSON(http.StatusOK, list)
}

// SpeechHealth reports upstream transcription API reachability.
// GET /api/v1/speech/health
//
// Shape mirrors the standalone whisper service's /health endpoint so the
// frontend's existing status indicator keeps working.
func (h *Handler) SpeechHealth(c *gin.Context) {
	resp := models.SpeechHealthResponse{
		Status:     "ok",
		Configured: h.Transcriber.IsConfigured(),
		Model:      h.Transcriber.Model(),
	}

	if !resp.Configured {
		resp.Status = "not_configured"
		c.JSON(http.StatusOK, resp)
		return
	}

	if err := h.Transcriber.Health(c.Request.Context()); err != nil {
		log.Printf("⚠️  Speech upstream health check failed: %v", err)
		resp.Status = "unreachable"
		c.JSON(http.StatusOK, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
