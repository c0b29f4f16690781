package main

import (
	"context"
	"io"
	"testing"

	"dolar-hoy/internal/service/retention"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRetentionScheduler(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	pruner := retention.New(nil, 30, log)

	cfg := Config{RetentionCron: "0 3 * * *", Location: "America/Argentina/Buenos_Aires"}
	c, err := newRetentionScheduler(context.Background(), cfg, pruner, log)
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)

	cfg.RetentionCron = "every day"
	_, err = newRetentionScheduler(context.Background(), cfg, pruner, log)
	assert.ErrorContains(t, err, "add cron func")

	cfg.RetentionCron = "0 3 * * *"
	cfg.Location = "Mars/Olympus_Mons"
	_, err = newRetentionScheduler(context.Background(), cfg, pruner, log)
	assert.ErrorContains(t, err, "load location")
}
