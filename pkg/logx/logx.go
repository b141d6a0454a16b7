package logx

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level mirrors zerolog levels for callers that don't import zerolog directly
type Level = zerolog.Level

const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
)

var logger = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}).Level(zerolog.InfoLevel).With().Timestamp().Logger()

// SetLevel sets the minimum level emitted by the package logger
func SetLevel(level Level) {
	logger = logger.Level(level)
}

// UseJSON switches output to machine-readable JSON on stderr
func UseJSON() {
	logger = zerolog.New(os.Stderr).Level(logger.GetLevel()).With().Timestamp().Logger()
}

func Debug(msg string) {
	logger.Debug().Msg(msg)
}

func Debugf(format string, args ...any) {
	logger.Debug().Msg(fmt.Sprintf(format, args...))
}

func Info(msg string) {
	logger.Info().Msg(msg)
}

func Infof(format string, args ...any) {
	logger.Info().Msg(fmt.Sprintf(format, args...))
}

func Warn(msg string) {
	logger.Warn().Msg(msg)
}

func Warnf(format string, args ...any) {
	logger.Warn().Msg(fmt.Sprintf(format, args...))
}

func Error(msg string) {
	logger.Error().Msg(msg)
}

func Errorf(format string, args ...any) {
	logger.Error().Msg(fmt.Sprintf(format, args...))
}

// Fatalf logs at fatal level and exits the process
func Fatalf(format string, args ...any) {
	logger.Fatal().Msg(fmt.Sprintf(format, args...))
}
