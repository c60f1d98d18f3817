package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the service.
type Config struct {
	DatabaseURL    string
	OwnerID        string
	OwnerEmail     string
	Demo           bool
	TelegramToken  string
	TelegramChatID int64
	ReportInterval time.Duration
	ReportTime     string // HH:MM; when set, a daily digest replaces the interval
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:   strings.TrimSpace(os.Getenv("TASKBOARD_DB")),
		OwnerID:       strings.TrimSpace(os.Getenv("TASKBOARD_OWNER")),
		OwnerEmail:    strings.TrimSpace(os.Getenv("TASKBOARD_OWNER_EMAIL")),
		Demo:          parseBool(strings.TrimSpace(os.Getenv("TASKBOARD_DEMO"))),
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		ReportTime:    strings.TrimSpace(os.Getenv("REPORT_TIME")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "taskboard.db"
	}

	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q", raw)
		}
		cfg.TelegramChatID = chatID
	}

	cfg.ReportInterval = parseInterval(strings.TrimSpace(os.Getenv("REPORT_INTERVAL_HOURS")))
	if cfg.ReportInterval == 0 {
		cfg.ReportInterval = 24 * time.Hour
	}

	if cfg.TelegramToken != "" && cfg.TelegramChatID == 0 {
		return cfg, fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}

	return cfg, nil
}

func parseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
