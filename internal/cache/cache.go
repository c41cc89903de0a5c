package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultFileName is the cache database file created under the base
// output directory.
const DefaultFileName = "translations.db"

// Store is a persistent translation cache keyed by content hash, model
// and target language.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the cache database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS translations (
		content_hash TEXT NOT NULL,
		model        TEXT NOT NULL,
		language     TEXT NOT NULL,
		translated   TEXT NOT NULL,
		created_at   INTEGER NOT NULL,
		PRIMARY KEY (content_hash, model, language)
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached translation for the given key, if present.
func (s *Store) Get(contentHash, model, language string) (string, bool, error) {
	var translated string
	err := s.db.QueryRow(
		`SELECT translated FROM translations WHERE content_hash = ? AND model = ? AND language = ?`,
		contentHash, model, language,
	).Scan(&translated)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache lookup failed: %w", err)
	}
	return translated, true, nil
}

// Put stores a translation, replacing any previous entry for the key.
func (s *Store) Put(contentHash, model, language, translated string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO translations (content_hash, model, language, translated, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		contentHash, model, language, translated, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("cache store failed: %w", err)
	}
	return nil
}

// Size returns the number of cached translations.
func (s *Store) Size() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM translations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("cache count failed: %w", err)
	}
	return n, nil
}
