package scheduler

import (
	"context"
	"log/slog"
	"time"

	"feed_digest/internal/domain"
)

// Sweeper defines the periodic maintenance run.
type Sweeper interface {
	Sweep(ctx context.Context) (*domain.SweepStats, error)
}

type Scheduler struct {
	sweeper  Sweeper
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

// NewScheduler bounds every sweep by timeout.
func NewScheduler(sweeper Sweeper, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With("component", "scheduler"),
	}
}

// Start runs a sweep immediately and then on every tick until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSweep(ctx)
		}
	}
}

func (s *Scheduler) runSweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.sweeper.Sweep(sweepCtx); err != nil {
		s.logger.Error("sweep failed", "error", err)
	}
}
