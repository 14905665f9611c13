package logger

import (
	"log/slog"
	"os"
)

// New builds the process-wide logger: JSON on stdout, debug level in dev.
// Every record carries the service name so shipped logs stay attributable.
func New(env string) *slog.Logger {
	level := slog.LevelInfo
	if env == "dev" {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("service", "partsbot", "env", env)
}
