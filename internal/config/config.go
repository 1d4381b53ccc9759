package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Addr         string
	DBPath       string
	LogLevel     string
	PrettyLog    bool
	HistoryLimit int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:         envOr("ADDR", ":8080"),
		DBPath:       envOr("DB_PATH", "file:memodeck.db"),
		LogLevel:     envOr("LOG_LEVEL", "info"),
		PrettyLog:    envBoolOr("PRETTY_LOG", false),
		HistoryLimit: envIntOr("HISTORY_LIMIT", 30),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Warn().Str("key", key).Str("value", v).Int("default", def).Msg("invalid integer value, using default")
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Warn().Str("key", key).Str("value", v).Bool("default", def).Msg("invalid boolean value, using default")
	}
	return def
}
