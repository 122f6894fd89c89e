package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

var (
	// InfoLogger logs informational messages
	InfoLogger *zerolog.Logger
	// ErrorLogger logs error messages
	ErrorLogger *zerolog.Logger
	// DebugLogger logs debug messages
	DebugLogger *zerolog.Logger
)

// InitLogger initializes the loggers, one JSON-lines file per level
func InitLogger(logsDir string) error {
	if logsDir == "" {
		logsDir = DefaultLogDir
	}
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02")
	infoFile, err := openLogFile(logsDir, "info", timestamp)
	if err != nil {
		return err
	}
	errorFile, err := openLogFile(logsDir, "error", timestamp)
	if err != nil {
		return err
	}
	debugFile, err := openLogFile(logsDir, "debug", timestamp)
	if err != nil {
		return err
	}

	SetLoggers(infoFile, errorFile, debugFile)
	return nil
}

// SetLoggers points the level loggers at arbitrary writers
func SetLoggers(info, errs, debug io.Writer) {
	infoLogger := zerolog.New(info).With().Timestamp().Str("level", "info").Logger()
	errorLogger := zerolog.New(errs).With().Timestamp().Str("level", "error").Logger()
	debugLogger := zerolog.New(debug).With().Timestamp().Str("level", "debug").Logger()

	InfoLogger = &infoLogger
	ErrorLogger = &errorLogger
	DebugLogger = &debugLogger
}

func openLogFile(dir, level, timestamp string) (*os.File, error) {
	f, err := os.OpenFile(
		filepath.Join(dir, fmt.Sprintf("%s-%s.log", level, timestamp)),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s log file: %w", level, err)
	}
	return f, nil
}

// LogInfo logs an informational message
func LogInfo(format string, v ...interface{}) {
	if InfoLogger != nil {
		InfoLogger.Log().Msgf(format, v...)
	}
}

// LogError logs an error message
func LogError(format string, v ...interface{}) {
	if ErrorLogger != nil {
		ErrorLogger.Log().Msgf(format, v...)
	}
}

// LogDebug logs a debug message
func LogDebug(format string, v ...interface{}) {
	if DebugLogger != nil {
		DebugLogger.Log().Msgf(format, v...)
	}
}

// LogRequest logs HTTP request details
func LogRequest(method, path, ip, requestID string, status int, duration time.Duration) {
	if InfoLogger == nil {
		return
	}
	InfoLogger.Log().
		Str("method", method).
		Str("path", path).
		Str("ip", ip).
		Str("request_id", requestID).
		Int("status", status).
		Float64("duration_ms", float64(duration.Microseconds())/1000).
		Msg("request")
}

// LogErrorWithStack logs an error with stack trace
func LogErrorWithStack(err error, stack []byte) {
	if ErrorLogger != nil {
		ErrorLogger.Log().Err(err).Bytes("stack", stack).Msg("panic recovered")
	}
}
