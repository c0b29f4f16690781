package retention

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type Storage interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service prunes the request audit log.
type Service struct {
	st   Storage
	keep time.Duration
	now  func() time.Time
	log  logrus.FieldLogger
}

func New(st Storage, days int, log logrus.FieldLogger) *Service {
	return &Service{
		st:   st,
		keep: time.Duration(days) * 24 * time.Hour,
		now:  time.Now,
		log:  log,
	}
}

func (s *Service) Prune(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.keep)
	n, err := s.st.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune request_log before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	s.log.WithFields(logrus.Fields{"deleted": n, "cutoff": cutoff.Format(time.RFC3339)}).Info("request_log pruned")
	return n, nil
}
