// transcriber_test.go — Tests for the Whisper upstream client.
//
// Go Pattern: httptest.NewServer stands in for the real upstream, so these
// tests exercise the full request/response path without network access.
package speech

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestTranscriber points a Transcriber at a fake upstream.
func newTestTranscriber(ts *httptest.Server) *Transcriber {
	return NewTranscriber("test-key", "whisper-large-v3", ts.URL)
}

func TestTranscribe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/audio/transcriptions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("failed to parse multipart form: %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		if got := r.FormValue("model"); got != "whisper-large-v3" {
			t.Errorf("model = %q", got)
		}
		if got := r.FormValue("response_format"); got != "verbose_json" {
			t.Errorf("response_format = %q", got)
		}
		if got := r.FormValue("language"); got != "zh" {
			t.Errorf("language = %q", got)
		}
		if files := r.MultipartForm.File["file"]; len(files) != 1 {
			t.Errorf("got %d file parts, want 1", len(files))
		} else if got := files[0].Header.Get("Content-Type"); got != "audio/webm" {
			t.Errorf("file part Content-Type = %q, want audio/webm", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"text": " 你好世界 ",
			"language": "zh",
			"duration": 2.5,
			"segments": [
				{"start": 0, "end": 1.2, "text": " 你好 "},
				{"start": 1.2, "end": 2.5, "text": " 世界 "}
			]
		}`))
	}))
	defer ts.Close()

	tr := newTestTranscriber(ts)
	result, err := tr.Transcribe(context.Background(), strings.NewReader("fake-audio-bytes"), "clip.webm", "zh")
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}

	if result.Text != "你好世界" {
		t.Errorf("Text = %q, want trimmed %q", result.Text, "你好世界")
	}
	if result.Language != "zh" {
		t.Errorf("Language = %q, want zh", result.Language)
	}
	if result.Duration != 2.5 {
		t.Errorf("Duration = %v, want 2.5", result.Duration)
	}
	if len(result.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(result.Segments))
	}
	if result.Segments[0].Text != "你好" || result.Segments[0].End != 1.2 {
		t.Errorf("segment 0 = %+v", result.Segments[0])
	}
}

func TestTranscribeUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	tr := newTestTranscriber(ts)
	_, err := tr.Transcribe(context.Background(), strings.NewReader("audio"), "clip.mp3", "")
	if err == nil {
		t.Fatal("expected error from non-200 upstream")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error %q does not mention upstream status", err)
	}
}

func TestTranscribeNotConfigured(t *testing.T) {
	tr := NewTranscriber("", "whisper-large-v3", "")
	if tr.IsConfigured() {
		t.Error("IsConfigured = true with empty key")
	}
	if _, err := tr.Transcribe(context.Background(), strings.NewReader("audio"), "clip.mp3", ""); err == nil {
		t.Error("Transcribe succeeded without an API key")
	}
}

func TestHealth(t *testing.T) {
	t.Run("healthy upstream", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/openai/v1/models" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"data":[]}`))
		}))
		defer ts.Close()

		if err := newTestTranscriber(ts).Health(context.Background()); err != nil {
			t.Errorf("Health failed: %v", err)
		}
	})

	t.Run("failing upstream", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusServiceUnavailable)
		}))
		defer ts.Close()

		if err := newTestTranscriber(ts).Health(context.Background()); err == nil {
			t.Error("Health succeeded against a 503 upstream")
		}
	})
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"single word", "hello", 1},
		{"english sentence", "the quick brown fox", 4},
		{"extra whitespace", "  hello   world  ", 2},
		{"cjk counted per character", "你好世界", 4},
		{"mixed cjk and latin", "我 like 苹果", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.text); got != tt.want {
				t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
