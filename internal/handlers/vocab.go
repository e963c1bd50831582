// vocab.go handles vocabulary set and drill HTTP endpoints (LK-9, LK-11).
//
// GET  /api/v1/vocab/sets — List vocabulary sets
// GET  /api/v1/vocab/sets/:level/:topic — Get one set with its words
// POST /api/v1/drills — Generate a multiple-choice drill
// POST /api/v1/drills/results — Record answered drill questions
// GET  /api/v1/stats — Per-device performance summary
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lingokit/lingo-api/internal/middleware"
	"github.com/lingokit/lingo-api/internal/models"
	"github.com/lingokit/lingo-api/internal/services/vocab"
)

// ListVocabSets returns all available vocabulary sets.
// GET /api/v1/vocab/sets
func (h *Handler) ListVocabSets(c *gin.Context) {
	sets, err := h.DB.ListVocabSets(c.Request.Context())
	if err != nil {
		log.Printf("❌ Failed to list vocab sets: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to list vocabulary sets",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if sets == nil {
		sets = []models.VocabSet{}
	}

	c.JSON(http.StatusOK, sets)
}

// GetVocabSet returns one set with its full word list.
// GET /api/v1/vocab/sets/:level/:topic
func (h *Handler) GetVocabSet(c *gin.Context) {
	slug := vocab.SetSlug(c.Param("level"), c.Param("topic"))
	if err := vocab.ValidateSetSlug(slug); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_slug",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	set, err := h.DB.GetVocabSet(c.Request.Context(), slug)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Vocabulary set not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	words, err := h.DB.ListVocabWords(c.Request.Context(), slug)
	if err != nil {
		log.Printf("❌ Failed to list words for %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to load vocabulary words",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"set":   set,
		"words": words,
	})
}

// CreateDrill generates a multiple-choice drill from a set.
// POST /api/v1/drills
func (h *Handler) CreateDrill(c *gin.Context) {
	var req models.CreateDrillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "set_slug is required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	if err := vocab.ValidateSetSlug(req.SetSlug); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_slug",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	words, err := h.DB.ListVocabWords(c.Request.Context(), req.SetSlug)
	if err != nil {
		log.Printf("❌ Failed to list words for %s: %v", req.SetSlug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to load vocabulary words",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	if len(words) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Vocabulary set not found or empty",
			Code:    http.StatusNotFound,
		})
		return
	}

	drill, err := vocab.BuildDrill(req.SetSlug, words, req.Size, req.Choices)
	if err != nil {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "drill_failed",
			Message: err.Error(),
			Code:    http.StatusConflict,
		})
		return
	}

	c.JSON(http.StatusOK, drill)
}

// RecordResults stores a batch of answered drill questions.
// POST /api/v1/drills/results
func (h *Handler) RecordResults(c *gin.Context) {
	device := middleware.GetDevice(c)

	var req models.RecordResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "set_slug and 1-100 answers are required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	if err := vocab.ValidateSetSlug(req.SetSlug); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_slug",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	if err := h.DB.RecordDrillResults(c.Request.Context(), device.DeviceID, req.SetSlug, req.Answers); err != nil {
		log.Printf("❌ Failed to record drill results: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to record drill results",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetStats returns the device's aggregated drill performance.
// GET /api/v1/stats
func (h *Handler) GetStats(c *gin.Context) {
	device := middleware.GetDevice(c)

	sets, err := h.DB.GetSetStats(c.Request.Context(), device.DeviceID)
	if err != nil {
		log.Printf("❌ Failed to aggregate stats: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to compute stats",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	resp := models.StatsResponse{
		DeviceID: device.DeviceID,
		Sets:     make([]models.SetStats, 0, len(sets)),
	}
	for _, s := range sets {
		s.Accuracy = accuracy(s.Correct, s.Answered)
		resp.TotalAnswered += s.Answered
		resp.TotalCorrect += s.Correct
		resp.Sets = append(resp.Sets, s)
	}
	resp.Accuracy = accuracy(resp.TotalCorrect, resp.TotalAnswered)

	c.JSON(http.StatusOK, resp)
}

// accuracy returns correct/answered rounded to one decimal percent.
// Zero answered means zero accuracy, not a division panic.
func accuracy(correct, answered int) float64 {
	if answered == 0 {
		return 0
	}
	return float64(int(float64(correct)/float64(answered)*1000+0.5)) / 10
}
