package db

import "fmt"

// migrations run in order; schema_migrations records the highest applied
// version so reruns are no-ops.
var migrations = []func(*DB) error{
	migrateV1,
}

func (d *DB) migrate() error {
	if _, err := d.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}

	var version int
	if err := d.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version); err != nil {
		return fmt.Errorf("getting schema version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		if err := migrations[i](d); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
		if _, err := d.Exec("INSERT INTO schema_migrations (version) VALUES (?)", i+1); err != nil {
			return fmt.Errorf("recording migration %d: %w", i+1, err)
		}
	}
	return nil
}

// migrateV1 creates the apply-run journal. One row per apply attempt,
// ordered for newest-first history reads.
func migrateV1(d *DB) error {
	statements := []string{
		`CREATE TABLE apply_runs (
			id TEXT PRIMARY KEY,
			started_at DATETIME NOT NULL,
			finished_at DATETIME NOT NULL,
			mod_count INTEGER NOT NULL,
			mods TEXT NOT NULL,
			outcome TEXT NOT NULL,
			error TEXT
		)`,
		`CREATE INDEX idx_apply_runs_started ON apply_runs(started_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := d.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
