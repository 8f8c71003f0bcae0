//go:build unit
// +build unit

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetProcessLogger() {
	process = processLogger{}
}

func fileSettings(t *testing.T, level string, compress bool) *config.LoggerSettings {
	t.Helper()
	return &config.LoggerSettings{
		LogLevel:   level,
		LogType:    config.LogTypeFile,
		FilePath:   filepath.Join(t.TempDir(), "logs", "textbook-rsa.log"),
		MaxSize:    5,
		MaxBackups: 2,
		MaxAge:     7,
		Compress:   compress,
	}
}

func TestNew_ConsoleSettings(t *testing.T) {
	log, err := New(&config.LoggerSettings{LogLevel: config.LogLevelWarning, LogType: config.LogTypeConsole})
	require.NoError(t, err)
	assert.IsType(t, &ConsoleLogger{}, log)
}

func TestNew_FileSettingsCarryRotation(t *testing.T) {
	settings := fileSettings(t, config.LogLevelDebug, true)

	log, err := New(settings)
	require.NoError(t, err)
	fileLogger, ok := log.(*FileLogger)
	require.True(t, ok, "expected *FileLogger, got %T", log)
	t.Cleanup(func() { _ = fileLogger.Close() })

	assert.Equal(t, settings.FilePath, fileLogger.writer.Filename)
	assert.Equal(t, 5, fileLogger.writer.MaxSize)
	assert.Equal(t, 2, fileLogger.writer.MaxBackups)
	assert.Equal(t, 7, fileLogger.writer.MaxAge)
	assert.True(t, fileLogger.writer.Compress)

	// lumberjack creates missing parent directories on first write
	fileLogger.Debug("derived d=", 29)
	content, err := os.ReadFile(settings.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"derived d=29"`)
}

func TestNew_RejectsBadSettings(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logger settings")

	settings := fileSettings(t, config.LogLevelInfo, false)
	settings.MaxBackups = 0
	_, err = New(settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max backups")
}

func TestGetLogger_BeforeInit(t *testing.T) {
	resetProcessLogger()
	t.Cleanup(resetProcessLogger)

	log, err := GetLogger()
	assert.Nil(t, log)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestGetLogger_ReportsFailedInit(t *testing.T) {
	resetProcessLogger()
	t.Cleanup(resetProcessLogger)

	initErr := InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"})
	require.Error(t, initErr)

	log, err := GetLogger()
	assert.Nil(t, log)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Contains(t, err.Error(), "LogType")
}

func TestInitLogger_FirstCallWins(t *testing.T) {
	resetProcessLogger()
	t.Cleanup(resetProcessLogger)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}))
	first, err := GetLogger()
	require.NoError(t, err)

	// invalid settings are never built once a logger exists
	assert.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: "verbose"}))
	second, err := GetLogger()
	require.NoError(t, err)
	assert.Same(t, first, second)
}
