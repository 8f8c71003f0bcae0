package logger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
)

// ErrNotInitialized is returned by GetLogger until InitLogger has succeeded.
var ErrNotInitialized = errors.New("logger not initialized")

type processLogger struct {
	once   sync.Once
	logger Logger
	err    error
}

var process processLogger

// New builds a Logger from settings. Console loggers write text to stdout and file loggers
// write JSON lines through a rotating lumberjack writer.
func New(settings *config.LoggerSettings) (Logger, error) {
	if settings == nil {
		return nil, errors.New("logger settings are required")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	if settings.LogType == config.LogTypeFile {
		return NewFileLogger(settings.LogLevel, settings.FilePath,
			settings.MaxSize, settings.MaxBackups, settings.MaxAge, settings.Compress), nil
	}
	return NewConsoleLogger(settings.LogLevel), nil
}

// InitLogger builds the process-wide logger. Only the first call has an effect; later calls
// return its outcome.
func InitLogger(settings *config.LoggerSettings) error {
	process.once.Do(func() {
		process.logger, process.err = New(settings)
	})
	return process.err
}

// GetLogger returns the process-wide logger.
func GetLogger() (Logger, error) {
	if process.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotInitialized, process.err)
	}
	if process.logger == nil {
		return nil, fmt.Errorf("%w: call InitLogger first", ErrNotInitialized)
	}
	return process.logger, nil
}
