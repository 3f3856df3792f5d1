package logger

import (
	"log/slog"
	"os"
)

// Log is the process-wide structured logger. It is usable before Init.
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Init configures Log for one binary. Every line carries the service name so
// the store and the portal can share a log sink.
func Init(env, service string) {
	level := slog.LevelDebug
	if env == "production" {
		level = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler).With("service", service, "env", env)
	slog.SetDefault(Log)
}
