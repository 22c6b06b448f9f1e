package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the process-wide JSON logger. The level comes from
// LOG_LEVEL (debug/info/warn/error, default info). The Postgres handler
// is attached later, once a database connection exists.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	slog.SetDefault(slog.New(handler))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
