// export_test.go contains tests for the export format helpers (LK-8).
//
// Go Pattern: Table-driven tests are the standard Go testing pattern.
// Each case is a struct with inputs and expected outputs, and the test
// runner loops through them all with t.Run sub-tests.
package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lingokit/lingo-api/internal/models"
)

// TestFormatSRTTime verifies the SRT timestamp formatting.
// SRT format requires: HH:MM:SS,mmm (note: comma, not period)
func TestFormatSRTTime(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{
			name:     "zero seconds",
			seconds:  0,
			expected: "00:00:00,000",
		},
		{
			name:     "fractional seconds",
			seconds:  1.5,
			expected: "00:00:01,500",
		},
		{
			name:     "one minute",
			seconds:  60,
			expected: "00:01:00,000",
		},
		{
			name:     "one hour",
			seconds:  3600,
			expected: "01:00:00,000",
		},
		{
			name:     "complex time",
			seconds:  3723.456,
			expected: "01:02:03,456",
		},
		{
			// 1.2 has no exact binary representation; truncation
			// renders it as ,199.
			name:     "inexact fraction rounds up",
			seconds:  1.2,
			expected: "00:00:01,200",
		},
		{
			name:     "millisecond carry into next second",
			seconds:  1.9996,
			expected: "00:00:02,000",
		},
		{
			name:     "just under a minute",
			seconds:  59.999,
			expected: "00:00:59,999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSRTTime(tt.seconds)
			if result != tt.expected {
				t.Errorf("formatSRTTime(%f) = %q, want %q", tt.seconds, result, tt.expected)
			}
		})
	}
}

// TestExportSRT verifies the rendered SubRip output: one numbered cue per
// segment, and a single cue spanning the duration when no segments exist.
func TestExportSRT(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("segments become numbered cues", func(t *testing.T) {
		segments, _ := json.Marshal([]models.Segment{
			{Start: 0, End: 1.2, Text: "你好"},
			{Start: 1.2, End: 2.5, Text: "谢谢"},
		})
		tr := &models.Transcription{
			Text:     "你好 谢谢",
			Duration: 2.5,
			Segments: segments,
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		exportSRT(c, tr, "lesson")

		expected := "1\n00:00:00,000 --> 00:00:01,200\n你好\n\n" +
			"2\n00:00:01,200 --> 00:00:02,500\n谢谢\n\n"
		if got := w.Body.String(); got != expected {
			t.Errorf("exportSRT body = %q, want %q", got, expected)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, `"lesson.srt"`) {
			t.Errorf("Content-Disposition = %q, want lesson.srt attachment", cd)
		}
	})

	t.Run("no segments falls back to one cue", func(t *testing.T) {
		tr := &models.Transcription{
			Text:     "你好",
			Duration: 3,
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		exportSRT(c, tr, "short")

		expected := "1\n00:00:00,000 --> 00:00:03,000\n你好\n\n"
		if got := w.Body.String(); got != expected {
			t.Errorf("exportSRT body = %q, want %q", got, expected)
		}
	})
}

// TestSanitizeFilename verifies filename sanitization for the
// Content-Disposition header.
func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean filename",
			input:    "Morning Practice",
			expected: "Morning Practice",
		},
		{
			name:     "slashes and colons",
			input:    "Lesson 1/2: Greetings",
			expected: "Lesson 1-2- Greetings",
		},
		{
			name:     "special characters",
			input:    "What is this? <A Clip>",
			expected: "What is this- -A Clip-",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "long name gets truncated",
			input:    strings.Repeat("a", 200),
			expected: strings.Repeat("a", 100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizeFilename(tt.input)
			if result != tt.expected {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
