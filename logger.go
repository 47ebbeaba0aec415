package palettize

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with palettize-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogBuild logs mapper construction.
func (l *Logger) LogBuild(paletteSize int, err error) {
	if err != nil {
		l.Error("mapper build failed",
			"palette_size", paletteSize,
			"error", err,
		)
	} else {
		l.Debug("mapper built",
			"palette_size", paletteSize,
		)
	}
}

// LogQuantize logs an image quantization operation.
func (l *Logger) LogQuantize(width, height int, err error) {
	if err != nil {
		l.Error("quantize failed",
			"width", width,
			"height", height,
			"error", err,
		)
	} else {
		l.Debug("quantize completed",
			"width", width,
			"height", height,
		)
	}
}

// LogSnapshotSave logs a snapshot save operation.
func (l *Logger) LogSnapshotSave(filename string, err error) {
	if err != nil {
		l.Error("snapshot save failed",
			"filename", filename,
			"error", err,
		)
	} else {
		l.Info("snapshot saved",
			"filename", filename,
		)
	}
}

// LogSnapshotLoad logs a snapshot load operation.
func (l *Logger) LogSnapshotLoad(filename string, paletteSize int, err error) {
	if err != nil {
		l.Error("snapshot load failed",
			"filename", filename,
			"error", err,
		)
	} else {
		l.Info("snapshot loaded",
			"filename", filename,
			"palette_size", paletteSize,
		)
	}
}
