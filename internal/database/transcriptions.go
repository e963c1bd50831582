// transcriptions.go contains queries for speech transcription records (LK-7).
package database

import (
	"context"
	"fmt"

	"github.com/lingokit/lingo-api/internal/models"
)

// CreateTranscription inserts a new transcription record.
// Returns the created record with its generated ID and timestamps.
func (db *DB) CreateTranscription(ctx context.Context, t *models.Transcription) error {
	query := `
		INSERT INTO transcriptions (device_id, filename, original_name, language, duration, text, word_count, segments, status, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	return db.QueryRowContext(ctx, query,
		t.DeviceID, t.Filename, t.OriginalName, t.Language,
		t.Duration, t.Text, t.WordCount, t.Segments,
		t.Status, t.ErrorMessage,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// UpdateTranscription updates a transcription's fields after the upstream
// call completes (or fails).
func (db *DB) UpdateTranscription(ctx context.Context, t *models.Transcription) error {
	query := `
		UPDATE transcriptions
		SET language = $2, duration = $3, text = $4, word_count = $5,
			segments = $6, status = $7, error_message = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return db.QueryRowContext(ctx, query,
		t.ID, t.Language, t.Duration, t.Text, t.WordCount,
		t.Segments, t.Status, t.ErrorMessage,
	).Scan(&t.UpdatedAt)
}

// GetTranscription retrieves a single transcription by ID, scoped to the
// owning device so one device cannot read another's history.
func (db *DB) GetTranscription(ctx context.Context, id, deviceID string) (*models.Transcription, error) {
	var t models.Transcription
	err := db.GetContext(ctx, &t,
		`SELECT * FROM transcriptions WHERE id = $1 AND device_id = $2`, id, deviceID)
	if err != nil {
		return nil, fmt.Errorf("transcription not found: %w", err)
	}
	return &t, nil
}

// ListTranscriptions returns the most recent transcriptions for a device.
func (db *DB) ListTranscriptions(ctx context.Context, deviceID string, limit int) ([]models.Transcription, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	var list []models.Transcription
	err := db.SelectContext(ctx, &list,
		`SELECT * FROM transcriptions WHERE device_id = $1 ORDER BY created_at DESC LIMIT $2`,
		deviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transcriptions: %w", err)
	}
	return list, nil
}
