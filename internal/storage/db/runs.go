package db

import (
	"fmt"
	"strings"
	"time"
)

// Run outcomes. A "restored" run is the zero-mods case where the pristine
// cpk_list.cfg.bin is copied back without merging.
const (
	OutcomeSuccess     = "success"
	OutcomeRestored    = "restored"
	OutcomeMergeFailed = "merge_failed"
	OutcomeCopyFailed  = "copy_failed"
	OutcomeError       = "error"
)

// ApplyRun is one journaled apply attempt.
type ApplyRun struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Mods       []string // Ordered enabled mod identities at the time of the run
	Outcome    string
	Error      string
}

// RecordApplyRun inserts a finished run into the journal.
func (d *DB) RecordApplyRun(run *ApplyRun) error {
	_, err := d.Exec(`
        INSERT INTO apply_runs (id, started_at, finished_at, mod_count, mods, outcome, error)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `, run.ID, run.StartedAt, run.FinishedAt, len(run.Mods),
		strings.Join(run.Mods, "\n"), run.Outcome, run.Error)
	if err != nil {
		return fmt.Errorf("recording apply run: %w", err)
	}
	return nil
}

// RecentApplyRuns returns the most recent runs, newest first.
func (d *DB) RecentApplyRuns(limit int) ([]ApplyRun, error) {
	rows, err := d.Query(`
        SELECT id, started_at, finished_at, mods, outcome, COALESCE(error, '')
        FROM apply_runs
        ORDER BY started_at DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("querying apply runs: %w", err)
	}
	defer rows.Close()

	var runs []ApplyRun
	for rows.Next() {
		var run ApplyRun
		var mods string
		if err := rows.Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &mods, &run.Outcome, &run.Error); err != nil {
			return nil, fmt.Errorf("scanning apply run: %w", err)
		}
		if mods != "" {
			run.Mods = strings.Split(mods, "\n")
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
