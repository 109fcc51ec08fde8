package core

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"vmm/internal/domain"
	"vmm/internal/storage/config"
	"vmm/internal/storage/db"

	"github.com/google/uuid"
)

// Apply validates the configured paths and starts the merge worker. Path
// validation happens synchronously: a bad path blocks the apply with no
// side effects and no worker started. With zero enabled mods the pristine
// cpk_list.cfg.bin is restored directly, also synchronously.
//
// started reports which of the two happened: true means a worker is
// running and the caller must drain Events() until the Done event; false
// with a nil error means the restore already completed. Callers must not
// infer this from Running(), which a fast worker may already have cleared.
func (s *Service) Apply() (started bool, err error) {
	if s.runner.Running() {
		return false, domain.ErrJobRunning
	}

	s.mu.Lock()
	cfg := *s.config
	modPaths := s.list.EnabledPaths()
	modIDs := make([]string, 0, len(modPaths))
	for _, e := range s.list.Entries() {
		if e.Enabled {
			modIDs = append(modIDs, e.ID)
		}
	}
	s.mu.Unlock()

	if err := cfg.ValidateForApply(); err != nil {
		return false, err
	}

	if len(modPaths) == 0 {
		return false, s.restoreBaseline(&cfg)
	}

	tmpRoot := s.TmpRoot()
	ok := s.runner.TryStart(func(ctx context.Context, emit func(string, domain.Level)) error {
		return s.runMergeAndCopy(ctx, emit, &cfg, modPaths, modIDs, tmpRoot)
	})
	if !ok {
		return false, domain.ErrJobRunning
	}
	return true, nil
}

// restoreBaseline copies the pristine cfg.bin into the game data directory
// when no mods are selected.
func (s *Service) restoreBaseline(cfg *config.Config) error {
	run := s.newRun(nil)

	warn := func(m string) { s.log.Warning(m) }

	err := s.merger.RestoreBaseline(cfg.CfgBinPath, cfg.GamePath)
	if err != nil {
		s.log.Error(fmt.Sprintf("Error applying changes: %v", err))
		s.finishRun(run, db.OutcomeError, err, warn)
		return err
	}

	s.log.Success("CHANGES APPLIED!! No mods selected.")
	s.finishRun(run, db.OutcomeRestored, nil, warn)
	return nil
}

// runMergeAndCopy is the background worker body: merge, then copy, then
// cleanup. Copy runs only after a successful merge; cleanup only after a
// successful copy, so a failed copy leaves the merged output in the work
// directory for inspection.
func (s *Service) runMergeAndCopy(ctx context.Context, emit func(string, domain.Level),
	cfg *config.Config, modPaths, modIDs []string, tmpRoot string) error {

	run := s.newRun(modIDs)
	warn := func(m string) { emit(m, domain.LevelWarning) }
	emit(fmt.Sprintf("Merging %d mods...", len(modPaths)), domain.LevelInfo)

	result, err := s.merger.Merge(ctx, cfg.ViolaPath, cfg.CfgBinPath, modPaths, tmpRoot)
	if err != nil {
		if result != nil && result.Stderr != "" {
			emit(result.Stderr, domain.LevelError)
		}
		emit("violacli returned error; aborting copy.", domain.LevelError)
		s.finishRun(run, db.OutcomeMergeFailed, err, warn)
		return err
	}

	tmpData := filepath.Join(tmpRoot, "data")
	destData := filepath.Join(cfg.GamePath, "data")

	if err := s.merger.CopyOutput(tmpData, destData); err != nil {
		emit("Failed to copy merged files.", domain.LevelError)
		s.finishRun(run, db.OutcomeCopyFailed, err, warn)
		return err
	}

	if err := s.merger.Cleanup(tmpData); err != nil {
		// Mods are applied at this point; a stuck tmp dir is log-worthy
		// but not a failed run.
		emit(fmt.Sprintf("Could not clean temporary folder: %v", err), domain.LevelWarning)
		s.finishRun(run, db.OutcomeSuccess, err, warn)
	} else {
		s.finishRun(run, db.OutcomeSuccess, nil, warn)
	}

	emit("MODS APPLIED!!", domain.LevelSuccess)
	return nil
}

func (s *Service) newRun(modIDs []string) *db.ApplyRun {
	return &db.ApplyRun{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Mods:      modIDs,
	}
}

// finishRun journals a completed apply attempt. Journal failures are
// reported through warn; they never fail the apply itself. warn exists
// because the worker goroutine must not touch the host-owned log directly.
func (s *Service) finishRun(run *db.ApplyRun, outcome string, cause error, warn func(string)) {
	run.FinishedAt = time.Now()
	run.Outcome = outcome
	if cause != nil {
		run.Error = cause.Error()
	}
	if err := s.db.RecordApplyRun(run); err != nil && warn != nil {
		warn(fmt.Sprintf("Could not record apply run: %v", err))
	}
}
