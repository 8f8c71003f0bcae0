package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

	"github.com/natefinch/lumberjack"
)

// levels maps configured level names onto slog levels. slog has no critical level, so
// critical logs only errors.
var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

// levelFor falls back to info for unknown names.
func levelFor(name string) slog.Level {
	if level, ok := levels[name]; ok {
		return level
	}
	return slog.LevelInfo
}

// slogLogger adapts a *slog.Logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

// ConsoleLogger logs human-readable text to stdout.
type ConsoleLogger struct {
	slogLogger
}

// FileLogger logs JSON lines to a rotating file.
type FileLogger struct {
	slogLogger
	writer *lumberjack.Logger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	return newConsoleLogger(os.Stdout, level)
}

func newConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelFor(level)})
	return &ConsoleLogger{slogLogger{logger: slog.New(handler)}}
}

// NewFileLogger creates a new file logger with rotation settings.
func NewFileLogger(level, filePath string, maxSize, maxBackups, maxAge int, compress bool) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   compress,
	}
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: levelFor(level)})
	return &FileLogger{slogLogger: slogLogger{logger: slog.New(handler)}, writer: writer}
}

// Close flushes and closes the underlying log file.
func (l *FileLogger) Close() error {
	return l.writer.Close()
}

func (l *slogLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *slogLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *slogLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *slogLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

// Fatal logs at error level and exits.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}

// Panic logs at error level and panics with the message.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := fmt.Sprint(args...)
	l.logger.Error(msg)
	panic(msg)
}
