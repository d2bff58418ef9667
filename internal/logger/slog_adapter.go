package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SlogLogger adapts log/slog to the Logger interface
type SlogLogger struct {
	logger  *slog.Logger
	writers []io.Closer
}

// NewSlogLogger creates a logger writing to stderr, plus a rotating
// file when configured. Reports stay on stdout; logs never mix with
// them.
func NewSlogLogger(config Config) *SlogLogger {
	var writers []io.Writer
	var closers []io.Closer

	writers = append(writers, os.Stderr)

	if config.File.Enabled && config.File.Path != "" {
		rotator := &lumberjack.Logger{
			Filename:   config.File.Path,
			MaxSize:    orDefault(config.File.MaxSizeMB, 10),
			MaxBackups: orDefault(config.File.MaxBackups, 3),
			Compress:   config.File.Compress,
		}
		writers = append(writers, rotator)
		closers = append(closers, rotator)
	}

	opts := &slog.HandlerOptions{Level: convertLevel(config.Level)}
	out := io.MultiWriter(writers...)

	var handler slog.Handler
	if config.Format == FormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &SlogLogger{
		logger:  slog.New(handler),
		writers: closers,
	}
}

func (s *SlogLogger) Debug(msg string, args ...any) { s.logger.Debug(msg, args...) }
func (s *SlogLogger) Info(msg string, args ...any)  { s.logger.Info(msg, args...) }
func (s *SlogLogger) Warn(msg string, args ...any)  { s.logger.Warn(msg, args...) }
func (s *SlogLogger) Error(msg string, args ...any) { s.logger.Error(msg, args...) }

// With returns a child logger with bound attributes
func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{logger: s.logger.With(args...)}
}

// Shutdown closes the file writers owned by this logger
func (s *SlogLogger) Shutdown() error {
	var first error
	for _, c := range s.writers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func convertLevel(l Level) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
