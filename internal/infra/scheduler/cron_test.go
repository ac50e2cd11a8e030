//go:build unit

package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_Register(t *testing.T) {
	s := New(time.Second)
	noop := func(context.Context) (int64, error) { return 0, nil }

	assert.NoError(t, s.Register("expire-orders", "@every 1m", noop))
	assert.NoError(t, s.Register("disabled", "", noop))
	assert.Len(t, s.cron.Entries(), 1)

	err := s.Register("broken", "every tuesday", noop)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestScheduler_RunAppliesTimeout(t *testing.T) {
	s := New(20 * time.Millisecond)

	var deadline bool
	s.run("slow", func(ctx context.Context) (int64, error) {
		_, deadline = ctx.Deadline()
		<-ctx.Done()
		return 0, ctx.Err()
	})
	assert.True(t, deadline)

	called := false
	s.run("failing", func(context.Context) (int64, error) {
		called = true
		return 0, errors.New("db down")
	})
	assert.True(t, called)
}

func TestScheduler_StopCancelsRunningJobs(t *testing.T) {
	s := New(time.Minute)
	started := make(chan struct{})
	finished := make(chan error, 1)
	require.NoError(t, s.Register("sweep", "@every 1s", func(ctx context.Context) (int64, error) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-ctx.Done()
		finished <- ctx.Err()
		return 0, ctx.Err()
	}))
	s.Start()

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("job never started")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.ErrorIs(t, <-finished, context.Canceled)
}
