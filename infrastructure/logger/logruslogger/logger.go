// ABOUTME: Logger implementation backed by sirupsen/logrus
// ABOUTME: Supports text or JSON output and optional rotating file output via lumberjack

package logruslogger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"shopthelook-api/pkg/config"
)

// Logger implements the Logger interface on top of a logrus.Logger
type Logger struct {
	entry *logrus.Logger
	file  *lumberjack.Logger
}

// New builds a logrus-backed logger from the log configuration
func New(cfg config.LogConfig) (*Logger, error) {
	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	l := logrus.New()
	l.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	logger := &Logger{entry: l}

	if cfg.File != "" {
		logger.file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		l.SetOutput(io.MultiWriter(os.Stdout, logger.file))
	} else {
		l.SetOutput(os.Stdout)
	}

	return logger, nil
}

// NewWithWriter builds a logger writing to w, mostly for tests
func NewWithWriter(w io.Writer, level logrus.Level, json bool) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	if json {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return &Logger{entry: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
