package logger

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	defaultLogger zerolog.Logger
	once          sync.Once
)

// Init initializes the default logger once. Level is one of zerolog's level
// strings (debug, info, warn, error); format is "console" or "json". Output
// goes to os.Stderr: stdout is reserved for the MCP stdio transport.
func Init(level, format string) {
	once.Do(func() {
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(lvl)
		zerolog.TimeFieldFormat = time.RFC3339

		var out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		if strings.EqualFold(format, "json") {
			defaultLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		} else {
			defaultLogger = zerolog.New(out).With().Timestamp().Logger()
		}
	})
}

// Get returns the initialized default logger.
// It calls Init() with defaults to ensure the logger is ready before returning it.
func Get() *zerolog.Logger {
	Init("info", "console")
	return &defaultLogger
}

// Info logs an informational message using the default logger.
func Info(msg string) {
	Get().Info().Msg(msg)
}

// Warn logs a warning message using the default logger.
func Warn(msg string) {
	Get().Warn().Msg(msg)
}

// Error logs an error message using the default logger.
func Error(msg string, err error) {
	Get().Error().Err(err).Msg(msg)
}

// Debug logs a debug message using the default logger.
func Debug(msg string) {
	Get().Debug().Msg(msg)
}
