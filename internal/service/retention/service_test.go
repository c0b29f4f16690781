package retention_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dolar-hoy/internal/service/retention"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	cutoff time.Time
	n      int64
	err    error
}

func (f *fakeStorage) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return f.n, f.err
}

func TestService_Prune(t *testing.T) {
	now := time.Date(2021, 2, 2, 15, 52, 0, 0, time.UTC)
	st := &fakeStorage{n: 7}
	log, hook := test.NewNullLogger()

	svc := retention.New(st, 30, log)
	svc.SetClock(func() time.Time { return now })

	n, err := svc.Prune(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, now.AddDate(0, 0, -30), st.cutoff)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, int64(7), hook.LastEntry().Data["deleted"])
}

func TestService_Prune_Error(t *testing.T) {
	st := &fakeStorage{err: errors.New("database error")}
	log, hook := test.NewNullLogger()

	_, err := retention.New(st, 1, log).Prune(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, st.err)
	assert.Empty(t, hook.Entries)
}
