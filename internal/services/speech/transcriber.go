// Package speech proxies audio to the Groq Whisper API (LK-7).
//
// Groq exposes an OpenAI-compatible transcription endpoint, so the client is
// a plain multipart upload with net/http — full control over timeouts and
// connection reuse, no SDK needed.
//
// Max upload size is 25MB (the upstream limit for free-tier Whisper).
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

// DefaultBaseURL is the Groq API root.
const DefaultBaseURL = "https://api.groq.com"

// Result holds the output from an upstream transcription call.
type Result struct {
	Text     string    `json:"text"`
	Language string    `json:"language"`
	Duration float64   `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is one timed span of transcribed speech.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// whisperResponse is the JSON shape returned by the upstream API when
// response_format is "verbose_json".
type whisperResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// Transcriber forwards audio to the Groq Whisper API.
type Transcriber struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewTranscriber creates a Transcriber for the given API key and model.
// An empty baseURL falls back to the Groq production endpoint.
func NewTranscriber(apiKey, model, baseURL string) *Transcriber {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Transcriber{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			// Whisper can take a while for long audio files
			Timeout: 5 * time.Minute,
		},
	}
}

// IsConfigured returns true if the API key is set.
func (t *Transcriber) IsConfigured() bool {
	return t.apiKey != ""
}

// Model returns the configured Whisper model name.
func (t *Transcriber) Model() string {
	return t.model
}

// Transcribe sends an audio file upstream and returns the transcription.
// language may be empty, in which case the upstream auto-detects.
func (t *Transcriber) Transcribe(ctx context.Context, audioData io.Reader, filename, language string) (*Result, error) {
	if !t.IsConfigured() {
		return nil, fmt.Errorf("Groq API key not configured; set GROQ_API_KEY environment variable")
	}

	// Build multipart form body. The file part carries the real audio MIME
	// type — some upstreams reject application/octet-stream.
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	if mime := MIMEType(filename); mime != "" {
		partHeader.Set("Content-Type", mime)
	}
	part, err := writer.CreatePart(partHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := io.Copy(part, audioData); err != nil {
		return nil, fmt.Errorf("failed to copy audio data: %w", err)
	}

	if err := writer.WriteField("model", t.model); err != nil {
		return nil, fmt.Errorf("failed to write model field: %w", err)
	}

	// Request verbose JSON for language detection, duration, and segments
	if err := writer.WriteField("response_format", "verbose_json"); err != nil {
		return nil, fmt.Errorf("failed to write response_format field: %w", err)
	}

	if language != "" {
		if err := writer.WriteField("language", language); err != nil {
			return nil, fmt.Errorf("failed to write language field: %w", err)
		}
	}

	// Close the writer to finalize the multipart body
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", t.baseURL+"/openai/v1/audio/transcriptions", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcription API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transcription API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var whisperResp whisperResponse
	if err := json.Unmarshal(respBody, &whisperResp); err != nil {
		return nil, fmt.Errorf("failed to parse transcription response: %w", err)
	}

	result := &Result{
		Text:     strings.TrimSpace(whisperResp.Text),
		Language: whisperResp.Language,
		Duration: whisperResp.Duration,
		Segments: make([]Segment, 0, len(whisperResp.Segments)),
	}
	for _, s := range whisperResp.Segments {
		result.Segments = append(result.Segments, Segment{
			Start: s.Start,
			End:   s.End,
			Text:  strings.TrimSpace(s.Text),
		})
	}

	return result, nil
}

// Health checks upstream reachability by listing models. A non-200 response
// or transport error means the upstream (or our key) is unusable.
func (t *Transcriber) Health(ctx context.Context) error {
	if !t.IsConfigured() {
		return fmt.Errorf("Groq API key not configured")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", t.baseURL+"/openai/v1/models", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}
	return nil
}

// CountWords counts the number of words in a text string.
// CJK transcripts come back unsegmented, so runs of CJK characters are
// counted per-character rather than per-field.
func CountWords(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		switch {
		case isCJK(r):
			count++
			inWord = false
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			inWord = false
		default:
			if !inWord {
				count++
				inWord = true
			}
		}
	}
	return count
}

// isCJK reports whether r is a CJK unified ideograph.
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF)
}
