// Package sqlite persists the registration attempt journal.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/signup/internal/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS attempts (
	id           TEXT PRIMARY KEY,
	email        TEXT NOT NULL,
	full_name    TEXT NOT NULL,
	status       TEXT NOT NULL,
	status_code  INTEGER NOT NULL DEFAULT 0,
	detail       TEXT,
	started_at   INTEGER NOT NULL,
	finished_at  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attempts_finished_at ON attempts(finished_at DESC);
`

// DB wraps the journal database connection.
type DB struct {
	conn *sql.DB
	path string
}

// NewDB opens (or creates) the journal at path and ensures the schema.
func NewDB(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := "file:" + path +
		"?_pragma=journal_mode(wal)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Debug(log.CatDB, "Opened journal", "path", path)
	return &DB{conn: conn, path: path}, nil
}

// Path returns the database file location.
func (db *DB) Path() string {
	return db.path
}

// AttemptRepository returns the repository over the attempts table.
func (db *DB) AttemptRepository() *AttemptRepository {
	return newAttemptRepository(db.conn)
}

// Close closes the connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
