// Package logger настраивает корневой zerolog-логгер приложения.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New создаёт корневой логгер. В окружении development вывод цветной
// консольный, в production — JSON.
func New(appEnv string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if appEnv == "development" {
		out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		return zerolog.New(out).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
