// export.go handles transcription export in multiple formats (LK-8).
//
// Supported formats:
//   - txt  — Plain text transcript
//   - srt  — SubRip subtitle format rendered from the segment list
//   - json — Full JSON with all metadata
//
// Go Pattern: Each export format is its own function. Adding a format later
// means one new case in the switch and one new formatter.
package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lingokit/lingo-api/internal/middleware"
	"github.com/lingokit/lingo-api/internal/models"
)

// ExportTranscription exports a transcription in the requested format.
// GET /api/v1/speech/transcriptions/:id/export?format=txt|srt|json
func (h *Handler) ExportTranscription(c *gin.Context) {
	format := c.DefaultQuery("format", "txt")

	// Validate format before doing any database work
	validFormats := map[string]bool{"txt": true, "srt": true, "json": true}
	if !validFormats[format] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_format",
			Message: "Supported formats: txt, srt, json",
			Code:    http.StatusBadRequest,
		})
		return
	}

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

	if t.Status != models.StatusCompleted {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "not_ready",
			Message: "Transcription is not completed (status: " + string(t.Status) + ")",
			Code:    http.StatusConflict,
		})
		return
	}

	filename := sanitizeFilename(strings.TrimSuffix(t.OriginalName, filepath.Ext(t.OriginalName)))
	if filename == "" {
		filename = t.ID
	}

	switch format {
	case "txt":
		exportTXT(c, t, filename)
	case "srt":
		exportSRT(c, t, filename)
	case "json":
		exportJSON(c, t, filename)
	}
}

// exportTXT returns the transcription as plain text.
func exportTXT(c *gin.Context, t *models.Transcription, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.txt"`, filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(t.Text))
}

// exportSRT returns the transcription in SubRip subtitle format.
// The upstream verbose response carries per-segment timestamps, so cues map
// one-to-one onto segments. A transcription with no segments gets a single
// cue spanning its duration.
func exportSRT(c *gin.Context, t *models.Transcription, filename string) {
	var segments []models.Segment
	json.Unmarshal(t.Segments, &segments)

	var sb strings.Builder
	if len(segments) == 0 {
		end := t.Duration
		if end <= 0 {
			end = 1
		}
		sb.WriteString("1\n")
		sb.WriteString(fmt.Sprintf("%s --> %s\n", formatSRTTime(0), formatSRTTime(end)))
		sb.WriteString(t.Text)
		sb.WriteString("\n\n")
	}

	for i, seg := range segments {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n", formatSRTTime(seg.Start), formatSRTTime(seg.End)))
		sb.WriteString(seg.Text)
		sb.WriteString("\n\n")
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.srt"`, filename))
	c.Data(http.StatusOK, "text/srt; charset=utf-8", []byte(sb.String()))
}

// exportJSON returns the full transcription data as JSON.
func exportJSON(c *gin.Context, t *models.Transcription, filename string) {
	jsonBytes, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "export_error",
			Message: "Failed to generate JSON export",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.json"`, filename))
	c.Data(http.StatusOK, "application/json; charset=utf-8", jsonBytes)
}

// --- Helper Functions ---

// formatSRTTime converts seconds to SRT timestamp format: HH:MM:SS,mmm
// Rounding happens on total milliseconds so values like 1.2 (not exactly
// representable in binary) still render as ,200 and a carry into the next
// second is handled.
func formatSRTTime(seconds float64) string {
	total := int(math.Round(seconds * 1000))
	h := total / 3600000
	m := (total % 3600000) / 60000
	s := (total % 60000) / 1000
	ms := total % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// sanitizeFilename removes characters that aren't safe for filenames.
// This is just for the Content-Disposition header, so replacing unsafe
// characters with hyphens is enough.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-",
		"|", "-", "\n", " ", "\r", "",
	)
	name = replacer.Replace(name)

	// Collapse multiple hyphens/spaces
	for strings.Contains(name, "  ") {
		name = strings.ReplaceAll(name, "  ", " ")
	}
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}

	name = strings.TrimSpace(name)

	if len(name) > 100 {
		name = name[:100]
	}

	return name
}
