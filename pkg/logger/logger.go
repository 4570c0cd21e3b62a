// Package logger provides the process-wide logger. It is a thin
// package-level facade over a zap SugaredLogger in console format so
// call sites stay terse (logger.Infof, logger.Errorf).
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//nolint:gochecknoglobals // the logger is process-wide by design
var (
	level  = zap.NewAtomicLevelAt(zap.InfoLevel)
	global = build(false)
)

func build(noColor bool) *zap.SugaredLogger {
	encodeLevel := zapcore.CapitalColorLevelEncoder
	if noColor {
		encodeLevel = zapcore.CapitalLevelEncoder
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "time",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeDuration: zapcore.StringDurationEncoder,
	})

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)

	return zap.New(core).Sugar()
}

// ParseLevel converts a level name to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLevel adjusts the minimum level of the package logger.
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

// SetNoColor rebuilds the logger without ANSI level coloring.
func SetNoColor(noColor bool) {
	global = build(noColor)
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...any) { global.Debugf(format, args...) }

// Infof logs a formatted info message.
func Infof(format string, args ...any) { global.Infof(format, args...) }

// Warnf logs a formatted warning message.
func Warnf(format string, args ...any) { global.Warnf(format, args...) }

// Errorf logs a formatted error message.
func Errorf(format string, args ...any) { global.Errorf(format, args...) }

// Info logs an info message.
func Info(args ...any) { global.Info(args...) }

// Warn logs a warning message.
func Warn(args ...any) { global.Warn(args...) }

// Error logs an error message.
func Error(args ...any) { global.Error(args...) }
