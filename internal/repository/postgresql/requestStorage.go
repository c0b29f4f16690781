package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestLogStorage struct {
	pgpool *pgxpool.Pool
}

func NewRequestLogStorage(pgpool *pgxpool.Pool) *RequestLogStorage {
	return &RequestLogStorage{pgpool: pgpool}
}

func (s *RequestLogStorage) Insert(ctx context.Context, path string, status int, records int) error {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "unknown"
	}

	_, err := s.pgpool.Exec(ctx, `
insert into request_log (path, status, records)
values ($1, $2, $3);
`, path, status, records)
	if err != nil {
		return fmt.Errorf("insert request_log: %w", err)
	}
	return nil
}

// DeleteOlderThan removes request_log rows created before cutoff and reports how many went.
func (s *RequestLogStorage) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.pgpool.Exec(ctx, `
delete from request_log
where created_at < $1;
`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete request_log: %w", err)
	}
	return tag.RowsAffected(), nil
}
