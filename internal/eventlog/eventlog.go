// Package eventlog provides the bounded activity log shown to the user.
package eventlog

import (
	"time"

	"vmm/internal/domain"
)

// DefaultMaxRecords is the retention cap when none is given. Eviction is
// record-count FIFO: the oldest record goes first once the cap is exceeded.
const DefaultMaxRecords = 1000

// EventKind classifies a log notification
type EventKind int

const (
	EventAppended EventKind = iota
	EventCleared
)

// Event is delivered to the display subscriber so it can render
// incrementally instead of redrawing the whole buffer.
type Event struct {
	Kind   EventKind
	Record domain.LogRecord // Valid for EventAppended only
}

// Log is an append-only, insertion-ordered sequence of log records capped at
// a maximum count. It is owned by a single goroutine; background workers
// must hand messages over via the job event channel, never append directly.
type Log struct {
	max     int
	records []domain.LogRecord
	notify  func(Event)
	now     func() time.Time
}

// New creates a log retaining at most max records. max <= 0 selects
// DefaultMaxRecords.
func New(max int) *Log {
	if max <= 0 {
		max = DefaultMaxRecords
	}
	return &Log{max: max, now: time.Now}
}

// Subscribe registers the display subscriber. At most one subscriber is
// supported; a later call replaces the earlier one.
func (l *Log) Subscribe(fn func(Event)) {
	l.notify = fn
}

// Append creates a record with a capture-time timestamp, appends it and
// evicts from the front until the record count is within the cap. Append
// never fails, for any message content.
func (l *Log) Append(message string, level domain.Level) domain.LogRecord {
	rec := domain.LogRecord{Time: l.now(), Level: level, Message: message}
	l.records = append(l.records, rec)

	if n := len(l.records) - l.max; n > 0 {
		l.records = append(l.records[:0], l.records[n:]...)
	}

	if l.notify != nil {
		l.notify(Event{Kind: EventAppended, Record: rec})
	}
	return rec
}

// Info appends an info-level record.
func (l *Log) Info(message string) domain.LogRecord {
	return l.Append(message, domain.LevelInfo)
}

// Success appends a success-level record.
func (l *Log) Success(message string) domain.LogRecord {
	return l.Append(message, domain.LevelSuccess)
}

// Warning appends a warning-level record.
func (l *Log) Warning(message string) domain.LogRecord {
	return l.Append(message, domain.LevelWarning)
}

// Error appends an error-level record.
func (l *Log) Error(message string) domain.LogRecord {
	return l.Append(message, domain.LevelError)
}

// Clear removes all records and signals the subscriber once.
func (l *Log) Clear() {
	l.records = nil
	if l.notify != nil {
		l.notify(Event{Kind: EventCleared})
	}
}

// Records returns a copy of the retained records, oldest first.
func (l *Log) Records() []domain.LogRecord {
	out := make([]domain.LogRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of retained records.
func (l *Log) Len() int {
	return len(l.records)
}

// Max returns the retention cap.
func (l *Log) Max() int {
	return l.max
}
