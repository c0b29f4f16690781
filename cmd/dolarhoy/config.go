package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string
	LogLevel string

	// DatabaseURL is optional; without it requests are not audited.
	DatabaseURL string

	RetentionCron string
	RetentionDays int
	Location      string
}

// LoadConfig reads the environment. The boolean reports whether a .env file was loaded.
func LoadConfig() (Config, bool, error) {
	loaded := godotenv.Overload() == nil

	cfg := Config{
		HTTPPort:      "8080",
		LogLevel:      "info",
		RetentionCron: "0 3 * * *",
		RetentionDays: 30,
		Location:      "America/Argentina/Buenos_Aires",
	}

	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.HTTPPort = p
	}
	if l := strings.TrimSpace(os.Getenv("LOG_LEVEL")); l != "" {
		cfg.LogLevel = l
	}
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))

	if c := strings.TrimSpace(os.Getenv("REQUEST_LOG_RETENTION_CRON")); c != "" {
		cfg.RetentionCron = c
	}
	if d := strings.TrimSpace(os.Getenv("REQUEST_LOG_RETENTION_DAYS")); d != "" {
		days, err := strconv.Atoi(d)
		if err != nil {
			return Config{}, loaded, fmt.Errorf("REQUEST_LOG_RETENTION_DAYS: %w", err)
		}
		if days <= 0 {
			return Config{}, loaded, fmt.Errorf("REQUEST_LOG_RETENTION_DAYS must be positive, got %d", days)
		}
		cfg.RetentionDays = days
	}
	if loc := strings.TrimSpace(os.Getenv("LOCATION")); loc != "" {
		cfg.Location = loc
	}

	return cfg, loaded, nil
}
