package interfaces

import "context"

// Logger is the leveled logger ccpm services write to. Its method set
// matches github.com/goliatone/go-logger, which plugs in through
// internal/logging/gologger.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider returns the logger for a module name such as
// "ccpm.content" or "ccpm.commands.markdown".
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is implemented by loggers that can carry structured fields
// on every entry. Use logging.WithFields rather than asserting it directly.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
