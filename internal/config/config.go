package config

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Port         string
	DatabaseDSN  string
	Env          string
	GeminiAPIKey string
	GeminiURL    string
	SeedData     bool
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "file:ycbg.db?_pragma=busy_timeout(5000)")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.GeminiURL = getEnv("GEMINI_URL", "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent")
	cfg.SeedData = ParseBool("DB_SEED", true)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logrus.Warnf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}

// NewLogger builds the process logger. JSON output outside development so the
// logs stay machine-readable in deployment.
func NewLogger(env string) *logrus.Logger {
	logg := logrus.New()
	logg.SetOutput(os.Stdout)
	logg.SetLevel(logrus.InfoLevel)
	if env != "development" {
		logg.SetFormatter(&logrus.JSONFormatter{})
	}
	return logg
}
