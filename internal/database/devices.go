// devices.go contains queries for registered devices (LK-4).
package database

import (
	"context"
	"fmt"

	"github.com/lingokit/lingo-api/internal/models"
)

// UpsertDevice inserts a device on first sight or bumps last_seen_at on
// subsequent token requests. Returns the stored row either way.
func (db *DB) UpsertDevice(ctx context.Context, deviceID string) (*models.Device, error) {
	var d models.Device
	query := `
		INSERT INTO devices (device_id)
		VALUES ($1)
		ON CONFLICT (device_id) DO UPDATE SET last_seen_at = NOW()
		RETURNING id, device_id, label, theme, created_at, last_seen_at`

	if err := db.GetContext(ctx, &d, query, deviceID); err != nil {
		return nil, fmt.Errorf("failed to upsert device: %w", err)
	}
	return &d, nil
}

// GetDevice retrieves a device by its client-supplied device_id.
func (db *DB) GetDevice(ctx context.Context, deviceID string) (*models.Device, error) {
	var d models.Device
	err := db.GetContext(ctx, &d, `SELECT * FROM devices WHERE device_id = $1`, deviceID)
	if err != nil {
		return nil, fmt.Errorf("device not found: %w", err)
	}
	return &d, nil
}

// UpdateDevicePrefs updates a device's label and theme preference.
func (db *DB) UpdateDevicePrefs(ctx context.Context, d *models.Device) error {
	query := `
		UPDATE devices
		SET label = $2, theme = $3, last_seen_at = NOW()
		WHERE device_id = $1
		RETURNING last_seen_at`

	return db.QueryRowContext(ctx, query, d.DeviceID, d.Label, d.Theme).Scan(&d.LastSeenAt)
}

// TouchDevice updates last_seen_at without changing anything else.
// Fire-and-forget from middleware — errors are ignored by callers.
func (db *DB) TouchDevice(ctx context.Context, deviceID string) error {
	_, err := db.ExecContext(ctx, `UPDATE devices SET last_seen_at = NOW() WHERE device_id = $1`, deviceID)
	return err
}
