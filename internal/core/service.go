// Package core wires the mod list, activity log, config store, scanner and
// merge runner into one session-scoped service.
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"vmm/internal/domain"
	"vmm/internal/eventlog"
	"vmm/internal/merge"
	"vmm/internal/modlist"
	"vmm/internal/scanner"
	"vmm/internal/storage/config"
	"vmm/internal/storage/db"
)

// ServiceConfig holds configuration for the core service
type ServiceConfig struct {
	ConfigDir string        // Directory for the config file
	DataDir   string        // Directory for the apply-run journal database
	SaveDelay time.Duration // Auto-save coalescing window, 0 = default
}

// Service is the main orchestrator for the mod-merger session. Its mod list
// and activity log have a single logical owner; the mutex exists only so
// the auto-save timer can snapshot state safely.
type Service struct {
	mu        sync.Mutex
	config    *config.Config
	configDir string
	list      *modlist.List
	log       *eventlog.Log
	db        *db.DB
	merger    *merge.Runner
	runner    *JobRunner
	saver     *Saver

	saveErrs chan error
	done     chan struct{}
}

// NewService loads configuration, opens the journal database and starts the
// auto-save subscription.
func NewService(cfg ServiceConfig) (*Service, error) {
	appConfig, err := config.Load(cfg.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "vmm.db")
	database, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Service{
		config:    appConfig,
		configDir: cfg.ConfigDir,
		list:      modlist.New(),
		log:       eventlog.New(0),
		db:        database,
		merger:    merge.NewRunner(),
		runner:    NewJobRunner(),
		saveErrs:  make(chan error, 8),
		done:      make(chan struct{}),
	}
	s.saver = NewSaver(cfg.SaveDelay, s.persist, func(err error) {
		// Config save failure is both an alert and a log record; the log
		// side happens here, hosts watch SaveErrors for the alert.
		s.log.Error("Could not save configuration.")
		select {
		case s.saveErrs <- err:
		default:
		}
	})

	// Single subscription to list changes; each burst coalesces into one
	// config write.
	go func() {
		for {
			select {
			case <-s.done:
				return
			case <-s.list.Changes():
				s.saver.Schedule()
			}
		}
	}()

	s.log.Info(fmt.Sprintf("Configuration loaded from %s", config.Path(cfg.ConfigDir)))
	return s, nil
}

// Close flushes pending state and releases resources.
func (s *Service) Close() error {
	close(s.done)
	s.saver.Stop()
	if err := s.SaveNow(); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}

// Log returns the session activity log.
func (s *Service) Log() *eventlog.Log {
	return s.log
}

// List returns the mod list.
func (s *Service) List() *modlist.List {
	return s.list
}

// Config returns the current configuration.
func (s *Service) Config() *config.Config {
	return s.config
}

// DB exposes the apply-run journal.
func (s *Service) DB() *db.DB {
	return s.db
}

// Events returns the background job event channel.
func (s *Service) Events() <-chan JobEvent {
	return s.runner.Events()
}

// SaveErrors delivers auto-save failures so hosts can raise a blocking
// alert on top of the log record.
func (s *Service) SaveErrors() <-chan error {
	return s.saveErrs
}

// Running reports whether an apply job is in flight.
func (s *Service) Running() bool {
	return s.runner.Running()
}

// RequestStop asks the in-flight apply to stop, best effort.
func (s *Service) RequestStop() {
	s.runner.RequestStop()
}

// ModsRoot returns the absolute mods directory.
func (s *Service) ModsRoot() string {
	return absOr(s.config.ModsDir, config.DefaultModsDir)
}

// TmpRoot returns the absolute merge work directory.
func (s *Service) TmpRoot() string {
	return absOr(s.config.TmpDir, config.DefaultTmpDir)
}

func absOr(path, fallback string) string {
	if path == "" {
		path = fallback
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// ScanMods rebuilds the mod list from a fresh filesystem scan. The first
// scan reconciles against the saved order from the config file; later scans
// reconcile against the list's own current state.
func (s *Service) ScanMods() ([]domain.ModEntry, error) {
	discovered, err := scanner.Scan(s.ModsRoot())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.list.Len() == 0 {
		s.list.Reconcile(discovered, s.config.Mods)
	} else {
		s.list.Rescan(discovered)
	}

	entries := s.list.Entries()
	s.log.Info(fmt.Sprintf("Found %d mods in %s", len(entries), s.ModsRoot()))
	return entries, nil
}

// MoveMod moves the mod with the given identity one position up or down.
func (s *Service) MoveMod(id string, up bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.list.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrModNotFound, id)
	}
	if up {
		s.list.MoveUp(i)
	} else {
		s.list.MoveDown(i)
	}
	return nil
}

// ToggleMod flips one mod's enabled flag.
func (s *Service) ToggleMod(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.list.Toggle(id) {
		return fmt.Errorf("%w: %s", domain.ErrModNotFound, id)
	}
	return nil
}

// SetModEnabled sets one mod's enabled flag.
func (s *Service) SetModEnabled(id string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.list.SetEnabled(id, enabled) {
		return fmt.Errorf("%w: %s", domain.ErrModNotFound, id)
	}
	return nil
}

// SetEnabledAll enables or disables every mod.
func (s *Service) SetEnabledAll(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.SetEnabledAll(enabled)
}

// SetGamePath updates the configured game path and schedules a save.
func (s *Service) SetGamePath(path string) {
	s.mu.Lock()
	s.config.GamePath = path
	s.mu.Unlock()
	s.saver.Schedule()
}

// SetCfgBinPath updates the configured cpk_list.cfg.bin path and schedules
// a save.
func (s *Service) SetCfgBinPath(path string) {
	s.mu.Lock()
	s.config.CfgBinPath = path
	s.mu.Unlock()
	s.saver.Schedule()
}

// SetViolaPath updates the configured ViolaCLI path and schedules a save.
func (s *Service) SetViolaPath(path string) {
	s.mu.Lock()
	s.config.ViolaPath = path
	s.mu.Unlock()
	s.saver.Schedule()
}

// SetTmpDir updates the merge work directory and schedules a save.
func (s *Service) SetTmpDir(path string) {
	s.mu.Lock()
	s.config.TmpDir = path
	s.mu.Unlock()
	s.saver.Schedule()
}

// SetModsDir updates the mods directory and schedules a save. Callers
// should rescan afterwards.
func (s *Service) SetModsDir(path string) {
	s.mu.Lock()
	s.config.ModsDir = path
	s.mu.Unlock()
	s.saver.Schedule()
}

// SaveNow writes the configuration immediately, bypassing the coalescing
// window.
func (s *Service) SaveNow() error {
	return s.saver.Flush()
}

// persist snapshots the list order into the config and writes it. It runs
// on the saver's timer goroutine, hence the lock.
func (s *Service) persist() error {
	s.mu.Lock()
	s.config.Mods = s.list.SavedState()
	snapshot := *s.config
	s.mu.Unlock()
	return snapshot.Save(s.configDir)
}

// ResetTmpDir wipes and recreates the merge work directory. Called once at
// startup so stale output from a crashed run never leaks into a copy.
func (s *Service) ResetTmpDir() error {
	tmp := s.TmpRoot()
	if err := os.RemoveAll(tmp); err != nil {
		return fmt.Errorf("cleaning tmp dir: %w", err)
	}
	if err := os.MkdirAll(tmp, 0755); err != nil {
		return fmt.Errorf("creating tmp dir: %w", err)
	}
	return nil
}
