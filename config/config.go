package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

const defaultInquiryDelay = 1000 * time.Millisecond

type Config struct {
	Port           string
	LogLevel       slog.Level
	InquiryDelay   time.Duration
	AllowedOrigins []string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       parseLogLevel(getEnv("LOG_LEVEL", "info")),
		InquiryDelay:   defaultInquiryDelay,
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}

	if raw := os.Getenv("INQUIRY_DELAY_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			slog.Warn("invalid INQUIRY_DELAY_MS, using default", "value", raw)
		} else {
			cfg.InquiryDelay = time.Duration(ms) * time.Millisecond
		}
	}

	return cfg
}

// InitLogger installs the tint console handler as the process-wide logger.
func InitLogger(level slog.Level) {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		slog.Warn("unknown log level, defaulting to info", "value", raw)
		return slog.LevelInfo
	}
}
