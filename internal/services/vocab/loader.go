// loader.go seeds vocabulary sets from YAML files into the database.
//
// Layout under the vocab directory mirrors the set slug:
//
//	vocab/
//	  hsk1/
//	    food.yaml      -> set "hsk1/food"
//	    numbers.yaml   -> set "hsk1/numbers"
//
// Files are reloaded on every startup; the database rows are replaced so the
// YAML files stay the single source of truth.
package vocab

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lingokit/lingo-api/internal/database"
	"github.com/lingokit/lingo-api/internal/models"
)

// setFile is the YAML shape of one vocabulary set seed file.
type setFile struct {
	Title    string `yaml:"title"`
	Language string `yaml:"language"`
	Words    []struct {
		Term    string `yaml:"term"`
		Reading string `yaml:"reading"`
		Meaning string `yaml:"meaning"`
	} `yaml:"words"`
}

// Loader seeds vocabulary sets from a directory of YAML files.
type Loader struct {
	dir string
	db  *database.DB
}

// NewLoader creates a Loader for the given directory.
func NewLoader(dir string, db *database.DB) *Loader {
	return &Loader{dir: dir, db: db}
}

// Load walks the vocab directory and upserts every set it finds.
// A missing directory is not an error — the server just starts with
// whatever sets are already in the database.
func (l *Loader) Load(ctx context.Context) (int, error) {
	if _, err := os.Stat(l.dir); os.IsNotExist(err) {
		log.Printf("⚠️  Vocab directory %q not found, skipping seed", l.dir)
		return 0, nil
	}

	loaded := 0
	err := filepath.WalkDir(l.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}

		slug, err := l.slugFor(path)
		if err != nil {
			log.Printf("⚠️  Skipping vocab file %s: %v", path, err)
			return nil
		}

		if err := l.loadFile(ctx, path, slug); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		loaded++
		return nil
	})
	if err != nil {
		return loaded, err
	}

	return loaded, nil
}

// slugFor derives the set slug from a file path relative to the vocab dir.
// vocab/hsk1/food.yaml -> "hsk1/food"
func (l *Loader) slugFor(path string) (string, error) {
	rel, err := filepath.Rel(l.dir, path)
	if err != nil {
		return "", err
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	slug := filepath.ToSlash(rel)
	if err := ValidateSetSlug(slug); err != nil {
		return "", err
	}
	return slug, nil
}

// loadFile parses one seed file and replaces the set's rows.
func (l *Loader) loadFile(ctx context.Context, path, slug string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}

	var sf setFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parsing seed file: %w", err)
	}

	if sf.Title == "" {
		sf.Title = slug
	}
	if len(sf.Words) == 0 {
		return fmt.Errorf("seed file has no words")
	}

	level := strings.SplitN(slug, "/", 2)[0]
	set := &models.VocabSet{
		Slug:      slug,
		Title:     sf.Title,
		Language:  sf.Language,
		Level:     level,
		WordCount: len(sf.Words),
	}
	if err := l.db.UpsertVocabSet(ctx, set); err != nil {
		return err
	}

	words := make([]models.VocabWord, 0, len(sf.Words))
	for i, w := range sf.Words {
		if w.Term == "" || w.Meaning == "" {
			return fmt.Errorf("word %d is missing term or meaning", i+1)
		}
		words = append(words, models.VocabWord{
			SetSlug:  slug,
			Term:     w.Term,
			Reading:  w.Reading,
			Meaning:  w.Meaning,
			Position: i + 1,
		})
	}

	return l.db.ReplaceVocabWords(ctx, slug, words)
}
