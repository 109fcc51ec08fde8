package domain

import "time"

// Level classifies log records shown in the activity log
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel converts a string to Level, defaulting to info
func ParseLevel(s string) Level {
	switch s {
	case "success":
		return LevelSuccess
	case "warning":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// LogRecord is a single timestamped activity log message. Immutable once
// created.
type LogRecord struct {
	Time    time.Time
	Level   Level
	Message string
}
