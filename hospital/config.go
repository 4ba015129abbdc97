package hospital

import (
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config carries the runtime settings. Values come from the environment,
// with a .env file honored when present.
type Config struct {
	DBPath    string
	LogLevel  string
	LogFormat string // "text" or "json"
}

// LoadConfig reads the environment (and .env, if any) with defaults
// suitable for running from a checkout.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		DBPath:    getEnv("HOSPITAL_DB", "hospital.db"),
		LogLevel:  getEnv("HOSPITAL_LOG_LEVEL", "info"),
		LogFormat: getEnv("HOSPITAL_LOG_FORMAT", "text"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NewLogger builds the slog logger the CLI and store log through. The
// core entity types never log; they return errors.
func NewLogger(cfg Config, out io.Writer) *slog.Logger {
	if out == nil {
		out = os.Stderr
	}

	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler)
}
