// Package db stores the apply-run journal, a local record of every merge
// attempt for later inspection.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB is the journal database handle.
type DB struct {
	*sql.DB
}

// New opens (or creates) the journal at path and brings its schema up to
// date.
func New(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL keeps journal writes from blocking history reads; the busy
	// timeout covers a CLI invocation racing a still-open TUI session.
	if _, err := sqlDB.Exec("PRAGMA journal_mode = WAL; PRAGMA busy_timeout = 5000;"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("setting pragmas: %w", err)
	}

	journal := &DB{DB: sqlDB}
	if err := journal.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return journal, nil
}
