package interfaces

import "context"

// Logger is the leveled logger the widget layout services write to. Its
// method set matches go-logger, so a glog logger plugs in directly.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// FieldsLogger is implemented by loggers that can bind structured fields,
// such as the module, area or command, to every later entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}

// LoggerProvider hands out a logger per module name (widgets.layout,
// widgets.http, ...).
type LoggerProvider interface {
	GetLogger(name string) Logger
}
