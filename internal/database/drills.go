// drills.go contains queries for drill results and performance stats (LK-11).
package database

import (
	"context"
	"fmt"

	"github.com/lingokit/lingo-api/internal/models"
)

// RecordDrillResults inserts a batch of answered drill questions in one
// transaction so a submitted drill is stored all-or-nothing.
func (db *DB) RecordDrillResults(ctx context.Context, deviceID, setSlug string, answers []models.DrillAnswer) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, a := range answers {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO drill_results (device_id, set_slug, term, correct, response_ms)
			 VALUES ($1, $2, $3, $4, $5)`,
			deviceID, setSlug, a.Term, a.Correct, a.ResponseMs)
		if err != nil {
			return fmt.Errorf("failed to record result for %q: %w", a.Term, err)
		}
	}

	return tx.Commit()
}

// GetSetStats aggregates drill performance per set for one device.
// Accuracy is computed in Go, not SQL — see stats handler.
func (db *DB) GetSetStats(ctx context.Context, deviceID string) ([]models.SetStats, error) {
	var stats []models.SetStats
	query := `
		SELECT set_slug,
			COUNT(*) AS answered,
			COUNT(*) FILTER (WHERE correct) AS correct,
			COALESCE(AVG(response_ms) FILTER (WHERE response_ms > 0), 0)::double precision AS avg_ms
		FROM drill_results
		WHERE device_id = $1
		GROUP BY set_slug
		ORDER BY set_slug`

	if err := db.SelectContext(ctx, &stats, query, deviceID); err != nil {
		return nil, fmt.Errorf("failed to aggregate drill stats: %w", err)
	}
	return stats, nil
}
