package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger creates the service-wide structured logger. An unparseable level
// falls back to info rather than failing startup.
func NewLogger(service, level string) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", service).
		Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return logger.Level(lvl)
}
