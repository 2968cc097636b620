// Package store provides the SQLite persistence layer for checklist items
// and defects. Severity and status columns are deliberately unvalidated
// free text; only the command layer constrains the input vocabulary.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS checklist_items (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	category   TEXT NOT NULL,
	severity   TEXT NOT NULL,
	status     TEXT DEFAULT 'pending',
	notes      TEXT DEFAULT '',
	created_at TEXT,
	updated_at TEXT
);

CREATE TABLE IF NOT EXISTS defects (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	severity    TEXT NOT NULL,
	component   TEXT NOT NULL,
	status      TEXT DEFAULT 'open',
	assignee    TEXT DEFAULT '',
	created_at  TEXT,
	resolved_at TEXT
);
`

// timeLayout is a fixed-width ISO-8601 local-time layout. Fixed width keeps
// lexicographic ordering of stored values equal to chronological ordering.
const timeLayout = "2006-01-02T15:04:05.000000-07:00"

// DB wraps a sql.DB with tracker-specific operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database at path and applies the schema.
// Parent directories are created as needed. Safe to call on every startup:
// table creation is conditional on non-existence.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create db dir: %w", err)
		}
	}
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

// parseTime tolerates malformed values (manual edits) by returning the zero
// time rather than failing the whole listing.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
