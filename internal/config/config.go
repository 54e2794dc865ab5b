// Package config loads the studio server configuration from environment
// variables with working defaults.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds the studio configuration.
type Config struct {
	Port           string
	DBPath         string
	VisionBaseURL  string
	VisionModel    string
	VisionAPIKey   string
	VisionTimeout  time.Duration
	MaxUploadBytes int64
	LogLevel       slog.Level
}

// Load reads the configuration from the environment. Every variable has a
// default so a bare invocation works against a local vision endpoint.
func Load() *Config {
	return &Config{
		Port:           getenv("PORT", ":8080"),
		DBPath:         getenv("DB_PATH", "./data/studio.db"),
		VisionBaseURL:  getenv("VISION_BASE_URL", "http://localhost:11434/v1"),
		VisionModel:    getenv("VISION_MODEL", "llava"),
		VisionAPIKey:   os.Getenv("VISION_API_KEY"),
		VisionTimeout:  getduration("VISION_TIMEOUT", 90*time.Second),
		MaxUploadBytes: getint64("MAX_UPLOAD_BYTES", 10<<20),
		LogLevel:       getlevel("LOG_LEVEL", slog.LevelInfo),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getint64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getlevel(key string, fallback slog.Level) slog.Level {
	switch os.Getenv(key) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
