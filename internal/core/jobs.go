package core

import (
	"context"
	"fmt"
	"sync"

	"vmm/internal/domain"
)

// JobEvent is one observation from the background worker. Workers never
// touch host-owned state (the mod list, the activity log) directly; every
// message crosses the thread boundary through the events channel and is
// applied by whoever owns that state.
type JobEvent struct {
	Message string
	Level   domain.Level
	Done    bool  // Last event of the job
	Err     error // Terminal failure, set only on the Done event
}

// JobRunner accepts at most one in-flight background task. A second start
// request while one is running is rejected, not queued.
type JobRunner struct {
	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc

	events chan JobEvent
}

// NewJobRunner creates an idle runner.
func NewJobRunner() *JobRunner {
	return &JobRunner{events: make(chan JobEvent, 128)}
}

// Events returns the channel the worker reports through. The single-threaded
// host drains it and renders/logs each event.
func (r *JobRunner) Events() <-chan JobEvent {
	return r.events
}

// Running reports whether a job is in flight.
func (r *JobRunner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// RequestStop cancels the in-flight job's context, if any. Stop is best
// effort: the external tool gets the cancellation and a short grace period,
// nothing more.
func (r *JobRunner) RequestStop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running && r.cancel != nil {
		r.cancel()
	}
}

// TryStart runs task on a new goroutine if no job is in flight, reporting
// whether it was admitted. Panics inside task are caught at the job
// boundary and surfaced as an error-level Done event, never as a crash.
func (r *JobRunner) TryStart(task func(ctx context.Context, emit func(string, domain.Level)) error) bool {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.running = true
	r.cancel = cancel
	r.mu.Unlock()

	emit := func(message string, level domain.Level) {
		r.events <- JobEvent{Message: message, Level: level}
	}

	go func() {
		var err error
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("unexpected error: %v", p)
			}
			cancel()

			r.mu.Lock()
			r.running = false
			r.cancel = nil
			r.mu.Unlock()

			done := JobEvent{Done: true, Err: err}
			if err != nil {
				done.Message = err.Error()
				done.Level = domain.LevelError
			}
			r.events <- done
		}()

		err = task(ctx, emit)
	}()

	return true
}
