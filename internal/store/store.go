// Package store persists rendered swatches in a SQLite catalog so batch
// runs can be browsed and diffed without re-rendering. A swatch is keyed
// by (pattern, seed, frame); the stored blob is the encoded PNG.
package store

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver
)

// DefaultBatchSize is the number of swatches buffered before flushing.
const DefaultBatchSize = 64

// Entry is a single swatch to be written.
type Entry struct {
	Pattern   string
	Seed      int64
	Frame     int
	Width     int
	Height    int
	Scale     int
	Variation float64
	PNG       []byte
}

// Metadata describes the catalog.
type Metadata struct {
	Name        string
	Description string
	Version     string
}

// ToMap converts Metadata to a map for database insertion.
func (m Metadata) ToMap() map[string]string {
	result := make(map[string]string)
	if m.Name != "" {
		result["name"] = m.Name
	}
	if m.Description != "" {
		result["description"] = m.Description
	}
	if m.Version != "" {
		result["version"] = m.Version
	}
	return result
}

// Writer writes swatches to a catalog database.
type Writer struct {
	db        *sql.DB
	path      string
	batch     []Entry
	batchSize int
	mu        sync.Mutex
}

// NewWriter opens (creating if necessary) a catalog at path and
// initializes its schema.
func NewWriter(path string, metadata Metadata) (*Writer, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	if err := insertMetadata(db, metadata); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to insert metadata: %w", err)
	}

	return &Writer{
		db:        db,
		path:      path,
		batch:     make([]Entry, 0, DefaultBatchSize),
		batchSize: DefaultBatchSize,
	}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS metadata (
			name TEXT NOT NULL,
			value TEXT
		);

		CREATE TABLE IF NOT EXISTS swatches (
			pattern TEXT NOT NULL,
			seed INTEGER NOT NULL,
			frame INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			scale INTEGER NOT NULL,
			variation REAL NOT NULL,
			png BLOB NOT NULL
		);

		CREATE UNIQUE INDEX IF NOT EXISTS swatch_index ON swatches (pattern, seed, frame);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

func insertMetadata(db *sql.DB, meta Metadata) error {
	if _, err := db.Exec("DELETE FROM metadata"); err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}

	stmt, err := db.Prepare("INSERT INTO metadata (name, value) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare metadata insert: %w", err)
	}
	defer stmt.Close()

	for key, value := range meta.ToMap() {
		if _, err := stmt.Exec(key, value); err != nil {
			return fmt.Errorf("failed to insert metadata %q: %w", key, err)
		}
	}
	return nil
}

// Write adds a swatch to the batch, flushing automatically when the
// batch fills.
func (w *Writer) Write(e Entry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.batch = append(w.batch, e)
	if len(w.batch) >= w.batchSize {
		return w.flushLocked()
	}
	return nil
}

// Flush writes any buffered swatches to the database.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.flushLocked()
}

func (w *Writer) flushLocked() error {
	if len(w.batch) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO swatches
		(pattern, seed, frame, width, height, scale, variation, png)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range w.batch {
		if _, err := stmt.Exec(e.Pattern, e.Seed, e.Frame, e.Width, e.Height, e.Scale, e.Variation, e.PNG); err != nil {
			return fmt.Errorf("failed to insert swatch %s/%d/%d: %w", e.Pattern, e.Seed, e.Frame, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.batch = w.batch[:0]
	return nil
}

// Close flushes remaining swatches and closes the database.
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		w.db.Close()
		return err
	}
	return w.db.Close()
}

// Reader reads swatches from a catalog database.
type Reader struct {
	db   *sql.DB
	path string
}

// OpenReader opens a catalog for reading.
func OpenReader(path string) (*Reader, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='swatches'").Scan(&count)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to verify schema: %w", err)
	}
	if count == 0 {
		db.Close()
		return nil, fmt.Errorf("database does not contain a swatches table")
	}

	return &Reader{db: db, path: path}, nil
}

// Read returns the swatch stored under (pattern, seed, frame).
func (r *Reader) Read(pattern string, seed int64, frame int) (Entry, error) {
	e := Entry{Pattern: pattern, Seed: seed, Frame: frame}
	err := r.db.QueryRow(
		"SELECT width, height, scale, variation, png FROM swatches WHERE pattern=? AND seed=? AND frame=?",
		pattern, seed, frame,
	).Scan(&e.Width, &e.Height, &e.Scale, &e.Variation, &e.PNG)

	if err == sql.ErrNoRows {
		return Entry{}, fmt.Errorf("swatch not found: %s/%d/%d", pattern, seed, frame)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to query swatch: %w", err)
	}
	return e, nil
}

// List returns the stored (pattern, seed, frame) keys in catalog order.
func (r *Reader) List() ([]Entry, error) {
	rows, err := r.db.Query("SELECT pattern, seed, frame, width, height, scale, variation FROM swatches ORDER BY pattern, seed, frame")
	if err != nil {
		return nil, fmt.Errorf("failed to query swatches: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Pattern, &e.Seed, &e.Frame, &e.Width, &e.Height, &e.Scale, &e.Variation); err != nil {
			return nil, fmt.Errorf("failed to scan swatch row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Metadata reads the catalog metadata.
func (r *Reader) Metadata() (Metadata, error) {
	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to query metadata: %w", err)
	}
	defer rows.Close()

	meta := Metadata{}
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return Metadata{}, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		switch name {
		case "name":
			meta.Name = value
		case "description":
			meta.Description = value
		case "version":
			meta.Version = value
		}
	}
	return meta, rows.Err()
}

// Close closes the database.
func (r *Reader) Close() error {
	return r.db.Close()
}
