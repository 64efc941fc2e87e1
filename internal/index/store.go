// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index persists extracted icons in a local SQLite database with
// full-text search over aliases and art text. The index is rebuilt from
// a fresh scan of the source tree, never from the emitted document.
//
// The FTS5 virtual table requires go-sqlite3 built with the sqlite_fts5
// tag (go build -tags sqlite_fts5); the mage Build target sets it.
package index

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/iconpack/pkg/types"
)

const dbFile = "icons.db"

// Store manages the icon index SQLite database.
type Store struct {
	db         *sql.DB
	indexDir   string
	maxResults int
}

// NewStore opens or creates the index database at indexDir/icons.db and
// creates the schema if it does not exist.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		indexDir:   cfg.IndexDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS icons (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			aliases TEXT NOT NULL,
			width INTEGER NOT NULL,
			colors TEXT NOT NULL,
			art TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_icons_name ON icons(name)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='icons_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE icons_fts USING fts5(aliases, art, content=icons, content_rowid=rowid)`,
			`CREATE TRIGGER icons_ai AFTER INSERT ON icons BEGIN
				INSERT INTO icons_fts(rowid, aliases, art) VALUES (new.rowid, new.aliases, new.art);
			END`,
			`CREATE TRIGGER icons_ad AFTER DELETE ON icons BEGIN
				INSERT INTO icons_fts(icons_fts, rowid, aliases, art) VALUES('delete', old.rowid, old.aliases, old.art);
			END`,
			`CREATE TRIGGER icons_au AFTER UPDATE ON icons BEGIN
				INSERT INTO icons_fts(icons_fts, rowid, aliases, art) VALUES('delete', old.rowid, old.aliases, old.art);
				INSERT INTO icons_fts(rowid, aliases, art) VALUES (new.rowid, new.aliases, new.art);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Ingest replaces the index contents with the given records in one
// transaction. A failed ingest leaves the previous contents intact.
func (s *Store) Ingest(ctx context.Context, records []*types.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM icons`); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO icons (id, name, aliases, width, colors, art)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		name := ""
		if len(rec.Names) > 0 {
			name = rec.Names[0]
		}
		aliasesJSON, _ := json.Marshal(rec.Names)
		colorsJSON, _ := json.Marshal(rec.Colors)
		art := strings.Join(rec.Art, "\n")

		_, err := stmt.ExecContext(ctx,
			stableID(rec), name, string(aliasesJSON), rec.Width, string(colorsJSON), art,
		)
		if err != nil {
			return fmt.Errorf("inserting icon %s: %w", name, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of indexed icons.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM icons`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting icons: %w", err)
	}
	return n, nil
}

// stableID generates a deterministic ID from the aliases and art text.
// The ID is the first 12 hex characters of the SHA-256 digest.
func stableID(rec *types.Record) string {
	h := sha256.New()
	for _, n := range rec.Names {
		h.Write([]byte(n))
	}
	for _, line := range rec.Art {
		h.Write([]byte(line))
	}
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}
