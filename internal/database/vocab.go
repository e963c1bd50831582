// vocab.go contains queries for vocabulary sets and words (LK-9).
//
// Sets are seeded from YAML files at startup (see services/vocab) and are
// read-only at runtime, so there are no per-request writes here beyond the
// seeding upserts.
package database

import (
	"context"
	"fmt"

	"github.com/lingokit/lingo-api/internal/models"
)

// UpsertVocabSet inserts or refreshes a vocabulary set's metadata.
func (db *DB) UpsertVocabSet(ctx context.Context, s *models.VocabSet) error {
	query := `
		INSERT INTO vocab_sets (slug, title, language, level, word_count)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO UPDATE
		SET title = EXCLUDED.title, language = EXCLUDED.language,
			level = EXCLUDED.level, word_count = EXCLUDED.word_count,
			updated_at = NOW()
		RETURNING created_at, updated_at`

	return db.QueryRowContext(ctx, query,
		s.Slug, s.Title, s.Language, s.Level, s.WordCount,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

// ReplaceVocabWords swaps out a set's word list atomically.
// Seeding reloads whole files, so delete-and-insert is simpler and safer
// than diffing individual rows.
func (db *DB) ReplaceVocabWords(ctx context.Context, setSlug string, words []models.VocabWord) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM vocab_words WHERE set_slug = $1`, setSlug); err != nil {
		return fmt.Errorf("failed to clear words for %s: %w", setSlug, err)
	}

	for i := range words {
		w := &words[i]
		err := tx.QueryRowContext(ctx,
			`INSERT INTO vocab_words (set_slug, term, reading, meaning, position)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			setSlug, w.Term, w.Reading, w.Meaning, w.Position,
		).Scan(&w.ID)
		if err != nil {
			return fmt.Errorf("failed to insert word %q: %w", w.Term, err)
		}
	}

	return tx.Commit()
}

// ListVocabSets returns all vocabulary sets ordered by slug.
func (db *DB) ListVocabSets(ctx context.Context) ([]models.VocabSet, error) {
	var sets []models.VocabSet
	err := db.SelectContext(ctx, &sets, `SELECT * FROM vocab_sets ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("failed to list vocab sets: %w", err)
	}
	return sets, nil
}

// GetVocabSet retrieves a single set by slug.
func (db *DB) GetVocabSet(ctx context.Context, slug string) (*models.VocabSet, error) {
	var s models.VocabSet
	err := db.GetContext(ctx, &s, `SELECT * FROM vocab_sets WHERE slug = $1`, slug)
	if err != nil {
		return nil, fmt.Errorf("vocab set not found: %w", err)
	}
	return &s, nil
}

// ListVocabWords returns a set's words in seed order.
func (db *DB) ListVocabWords(ctx context.Context, setSlug string) ([]models.VocabWord, error) {
	var words []models.VocabWord
	err := db.SelectContext(ctx, &words,
		`SELECT * FROM vocab_words WHERE set_slug = $1 ORDER BY position`, setSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to list vocab words: %w", err)
	}
	return words, nil
}
