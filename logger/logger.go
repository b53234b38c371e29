// Package logger configures the global zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const milliTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Init configures the global logger from LOG_LEVEL (default info),
// LOG_FILE (optional copy of the output) and LOG_JSON (plain JSON lines
// instead of the console writer).
func Init() {
	zerolog.TimeFieldFormat = milliTimeFormat
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }

	const callerWidth = 24
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		path := fmt.Sprintf("%s:%d", filepath.Base(file), line)
		if len(path) >= callerWidth {
			return path[len(path)-callerWidth:]
		}
		return path + strings.Repeat(" ", callerWidth-len(path))
	}

	level := ParseLevel(os.Getenv("LOG_LEVEL"))
	zerolog.SetGlobalLevel(level)

	var output io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: milliTimeFormat,
	}
	if os.Getenv("LOG_JSON") == "true" {
		output = os.Stderr
	}

	logFile := os.Getenv("LOG_FILE")
	output, fileErr := withFile(output, logFile)

	log.Logger = zerolog.New(output).With().Timestamp().Caller().Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("file", logFile).Msg("logging to stderr only")
	}
	log.Debug().Str("level", level.String()).Msg("logger initialized")
}

// withFile tees output into the file at path, appending. An empty path or
// a failed open leaves output unchanged.
func withFile(output io.Writer, path string) (io.Writer, error) {
	if path == "" {
		return output, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return output, err
	}
	return io.MultiWriter(output, f), nil
}

// ParseLevel falls back to info for empty or unknown levels.
func ParseLevel(s string) zerolog.Level {
	if s == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// ForMatch returns the global logger tagged with a match ID.
func ForMatch(matchID string) zerolog.Logger {
	return log.Logger.With().Str("match", matchID).Logger()
}
