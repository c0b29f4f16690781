package logger

import (
	"context"
	"fmt"
	"strings"
)

type DBRequestLogger struct {
	storage LoggerStorage
}

func New(storage LoggerStorage) *DBRequestLogger {
	return &DBRequestLogger{storage: storage}
}

func (l *DBRequestLogger) LogRequest(ctx context.Context, endpoint string, status int, records int) error {
	p := strings.TrimSpace(endpoint)
	p = strings.Trim(p, "/")
	if p == "" {
		p = "index"
	}
	if records < 0 {
		records = 0
	}

	if err := l.storage.Insert(ctx, p, status, records); err != nil {
		return fmt.Errorf("log request %s: %w", p, err)
	}
	return nil
}

// Nop is used when no DATABASE_URL is configured.
type Nop struct{}

func (Nop) LogRequest(context.Context, string, int, int) error { return nil }
