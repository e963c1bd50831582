// Package models defines the data structures used throughout the application.
//
// Go Pattern: Models are plain structs with JSON tags for serialization.
// The `db` tags work with sqlx for database column mapping — no ORM magic,
// the database package handles persistence with raw SQL.
package models

import (
	"encoding/json"
	"time"
)

// TranscriptionStatus represents the processing state of a transcription.
// Go Pattern: We use string constants instead of enums (Go doesn't have enums).
type TranscriptionStatus string

const (
	StatusProcessing TranscriptionStatus = "processing"
	StatusCompleted  TranscriptionStatus = "completed"
	StatusFailed     TranscriptionStatus = "failed"
)

// Theme is a device display preference ("light", "dark", or "system").
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ValidThemes enumerates the accepted theme values.
var ValidThemes = map[Theme]bool{
	ThemeLight:  true,
	ThemeDark:   true,
	ThemeSystem: true,
}

// Device represents a registered client device. Devices are identified by a
// client-supplied device_id and authenticate with short-lived JWTs — there
// are no user accounts.
type Device struct {
	ID         string    `json:"id" db:"id"`
	DeviceID   string    `json:"device_id" db:"device_id"`
	Label      string    `json:"label" db:"label"`
	Theme      Theme     `json:"theme" db:"theme"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at" db:"last_seen_at"`
}

// Transcription represents one speech-to-text request forwarded to the
// upstream Whisper API, including failed attempts.
type Transcription struct {
	ID           string              `json:"id" db:"id"`
	DeviceID     string              `json:"device_id" db:"device_id"`
	Filename     string              `json:"filename" db:"filename"`
	OriginalName string              `json:"original_name" db:"original_name"`
	Language     string              `json:"language" db:"language"`
	Duration     float64             `json:"duration" db:"duration"` // Audio duration in seconds
	Text         string              `json:"text" db:"text"`
	WordCount    int                 `json:"word_count" db:"word_count"`
	Segments     json.RawMessage     `json:"segments,omitempty" db:"segments"` // JSONB — [{start,end,text}]
	Status       TranscriptionStatus `json:"status" db:"status"`
	ErrorMessage string              `json:"error_message,omitempty" db:"error_message"`
	CreatedAt    time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at" db:"updated_at"`
}

// Segment is one timed span of a transcription.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// VocabSet is a named collection of vocabulary words, seeded from YAML files
// and served to the drill UI. The slug is a "level/topic" path.
type VocabSet struct {
	Slug      string    `json:"slug" db:"slug"`
	Title     string    `json:"title" db:"title"`
	Language  string    `json:"language" db:"language"`
	Level     string    `json:"level" db:"level"`
	WordCount int       `json:"word_count" db:"word_count"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// VocabWord is a single drill item within a set.
type VocabWord struct {
	ID       string `json:"id" db:"id"`
	SetSlug  string `json:"set_slug" db:"set_slug"`
	Term     string `json:"term" db:"term"`
	Reading  string `json:"reading,omitempty" db:"reading"`
	Meaning  string `json:"meaning" db:"meaning"`
	Position int    `json:"position" db:"position"`
}

// DrillResult records the outcome of one drill answer for a device.
type DrillResult struct {
	ID         string    `json:"id" db:"id"`
	DeviceID   string    `json:"device_id" db:"device_id"`
	SetSlug    string    `json:"set_slug" db:"set_slug"`
	Term       string    `json:"term" db:"term"`
	Correct    bool      `json:"correct" db:"correct"`
	ResponseMs int       `json:"response_ms" db:"response_ms"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// --- Request/Response DTOs ---
// Go Pattern: Separate structs for API input/output vs database models.
// This keeps the API contract independent of the database schema.

// TokenRequest is the JSON body for POST /api/v1/auth/token.
// Secret is optional — required only when the server has ACCESS_SECRET set.
type TokenRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
	Secret   string `json:"secret,omitempty"`
}

// TokenResponse returns a signed device token and its expiry.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Device    Device    `json:"device"`
}

// UpdateDeviceRequest is the JSON body for PATCH /api/v1/auth/device.
type UpdateDeviceRequest struct {
	Label *string `json:"label,omitempty"`
	Theme *Theme  `json:"theme,omitempty"`
}

// CreateDrillRequest is the JSON body for POST /api/v1/drills.
type CreateDrillRequest struct {
	SetSlug string `json:"set_slug" binding:"required"`
	Size    int    `json:"size,omitempty"`    // Number of questions, default 10
	Choices int    `json:"choices,omitempty"` // Options per question, default 4
}

// RecordResultsRequest is the JSON body for POST /api/v1/drills/results.
type RecordResultsRequest struct {
	SetSlug string        `json:"set_slug" binding:"required"`
	Answers []DrillAnswer `json:"answers" binding:"required,min=1,max=100"`
}

// DrillAnswer is one answered question within a submitted drill.
type DrillAnswer struct {
	Term       string `json:"term" binding:"required"`
	Correct    bool   `json:"correct"`
	ResponseMs int    `json:"response_ms,omitempty"`
}

// SetStats is the per-set slice of a device's performance summary.
type SetStats struct {
	SetSlug  string  `json:"set_slug" db:"set_slug"`
	Answered int     `json:"answered" db:"answered"`
	Correct  int     `json:"correct" db:"correct"`
	Accuracy float64 `json:"accuracy"`
	AvgMs    float64 `json:"avg_ms" db:"avg_ms"`
}

// StatsResponse aggregates drill performance for one device.
type StatsResponse struct {
	DeviceID      string     `json:"device_id"`
	TotalAnswered int        `json:"total_answered"`
	TotalCorrect  int        `json:"total_correct"`
	Accuracy      float64    `json:"accuracy"`
	Sets          []SetStats `json:"sets"`
}

// ErrorResponse is a standard error format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
	Speech   string `json:"speech"`
}

// SpeechHealthResponse mirrors the upstream transcription service health
// shape: status, whether a key is configured, and the active model.
type SpeechHealthResponse struct {
	Status     string `json:"status"`
	Configured bool   `json:"configured"`
	Model      string `json:"model"`
}
