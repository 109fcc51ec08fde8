package core

import (
	"sync"
	"time"
)

// DefaultSaveDelay is how long the saver waits for a burst of mutations to
// settle before writing the config once.
const DefaultSaveDelay = 250 * time.Millisecond

// Saver coalesces auto-save requests. Every list or path mutation calls
// Schedule; one save runs per burst instead of one per keystroke. Save
// failures are reported through onError so the host can alert the user.
type Saver struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	stopped bool

	save    func() error
	onError func(error)
}

// NewSaver creates a saver invoking save after delay; delay <= 0 selects
// DefaultSaveDelay. onError may be nil.
func NewSaver(delay time.Duration, save func() error, onError func(error)) *Saver {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	return &Saver{delay: delay, save: save, onError: onError}
}

// Schedule requests a save. Requests within the delay window coalesce into
// a single write.
func (s *Saver) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if s.timer == nil {
		s.timer = time.AfterFunc(s.delay, s.fire)
	} else {
		s.timer.Reset(s.delay)
	}
}

func (s *Saver) fire() {
	if err := s.save(); err != nil && s.onError != nil {
		s.onError(err)
	}
}

// Flush cancels any pending save and writes immediately, returning the save
// error to the caller instead of onError. Used on exit.
func (s *Saver) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()
	return s.save()
}

// Stop cancels any pending save without writing.
func (s *Saver) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
	}
}
