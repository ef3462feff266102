package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"feed_digest/internal/domain"
)

type countingSweeper struct {
	calls    atomic.Int32
	err      error
	deadline atomic.Pointer[time.Time]
}

func (c *countingSweeper) Sweep(ctx context.Context) (*domain.SweepStats, error) {
	c.calls.Add(1)
	if d, ok := ctx.Deadline(); ok {
		c.deadline.Store(&d)
	}
	if c.err != nil {
		return nil, c.err
	}
	return &domain.SweepStats{}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_SweepsImmediatelyAndOnTick(t *testing.T) {
	sweeper := &countingSweeper{}
	s := NewScheduler(sweeper, 10*time.Millisecond, time.Minute, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()

	err := s.Start(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, sweeper.calls.Load(), int32(3))
}

func TestScheduler_KeepsRunningAfterFailure(t *testing.T) {
	sweeper := &countingSweeper{err: errors.New("database unavailable")}
	s := NewScheduler(sweeper, 5*time.Millisecond, time.Minute, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_ = s.Start(ctx)

	assert.Greater(t, sweeper.calls.Load(), int32(1))
}

func TestScheduler_StopsOnCancel(t *testing.T) {
	sweeper := &countingSweeper{}
	s := NewScheduler(sweeper, time.Hour, time.Minute, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.Equal(t, int32(1), sweeper.calls.Load())
}

func TestScheduler_BoundsSweepByTimeout(t *testing.T) {
	sweeper := &countingSweeper{}
	s := NewScheduler(sweeper, time.Hour, 2*time.Second, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	started := time.Now()

	_ = s.Start(ctx)

	deadline := sweeper.deadline.Load()
	if assert.NotNil(t, deadline) {
		assert.WithinDuration(t, started.Add(2*time.Second), *deadline, time.Second)
	}
}
