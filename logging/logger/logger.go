// Package logger wraps logrus with context-aware, key-value structured
// logging. Every line carries the trace ID from the request context.
package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ncobase/notes/ctxutil"
)

// Config controls logger initialization.
type Config struct {
	Level      int    // logrus level, 0 panic .. 6 trace
	Format     string // "json" or "text"
	Output     string // "stdout", "stderr" or "file"
	OutputFile string // path when Output is "file"
}

// Logger is the application logger.
type Logger struct {
	*logrus.Logger
	logFile *os.File
}

var (
	standardLogger *Logger
	once           sync.Once
)

// StdLogger returns the singleton logger instance.
func StdLogger() *Logger {
	once.Do(func() {
		standardLogger = &Logger{Logger: logrus.New()}
		standardLogger.SetFormatter(&logrus.JSONFormatter{})
	})
	return standardLogger
}

// New initializes the standard logger from configuration and returns a
// cleanup function.
func New(cfg *Config) (func(), error) {
	l := StdLogger()
	if cfg == nil {
		return func() {}, nil
	}

	if cfg.Level > 0 {
		l.SetLevel(logrus.Level(cfg.Level))
	} else {
		l.SetLevel(logrus.InfoLevel)
	}

	switch cfg.Format {
	case "text":
		l.SetFormatter(&logrus.TextFormatter{})
	default:
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	// New may run again on config reload, so the previous log file is
	// released whenever the output changes.
	switch cfg.Output {
	case "stderr":
		l.closeLogFile()
		l.SetOutput(os.Stderr)
	case "file":
		if cfg.OutputFile == "" {
			return nil, fmt.Errorf("logger output is file but output_file is empty")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.OutputFile), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.closeLogFile()
		l.logFile = f
		l.SetOutput(f)
	default:
		l.closeLogFile()
		l.SetOutput(os.Stdout)
	}

	return func() {
		l.closeLogFile()
	}, nil
}

func (l *Logger) closeLogFile() {
	if l.logFile != nil {
		_ = l.logFile.Close()
		l.logFile = nil
	}
}

// Debug logs at debug level with key-value pairs.
func (l *Logger) Debug(ctx context.Context, msg string, kv ...any) {
	l.entry(ctx, kv...).Debug(msg)
}

// Info logs at info level with key-value pairs.
func (l *Logger) Info(ctx context.Context, msg string, kv ...any) {
	l.entry(ctx, kv...).Info(msg)
}

// Warn logs at warn level with key-value pairs.
func (l *Logger) Warn(ctx context.Context, msg string, kv ...any) {
	l.entry(ctx, kv...).Warn(msg)
}

// Error logs at error level with key-value pairs.
func (l *Logger) Error(ctx context.Context, msg string, kv ...any) {
	l.entry(ctx, kv...).Error(msg)
}

func (l *Logger) entry(ctx context.Context, kv ...any) *logrus.Entry {
	fields := logrus.Fields{}
	if traceID := ctxutil.GetTraceID(ctx); traceID != "" {
		fields["trace_id"] = traceID
	}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		fields[key] = kv[i+1]
	}
	return l.WithFields(fields)
}
