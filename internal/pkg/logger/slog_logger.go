package logger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/arya2004/cybersecurity/internal/pkg/config"

	"github.com/natefinch/lumberjack"
)

// slogLogger adapts a slog.Logger to the Logger interface. The console and
// file variants differ only in the handler they are built on.
type slogLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger returns a Logger writing text records to stdout.
func NewConsoleLogger(level string) Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level)})
	return &slogLogger{logger: slog.New(handler)}
}

// NewFileLogger returns a Logger writing JSON records to a rotated log file.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(level)})
	return &slogLogger{logger: slog.New(handler)}
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

// parseLevel maps a configured level name to its slog level. Critical has no
// slog counterpart and falls back to info, as does anything unrecognized.
func parseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
