package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"feed_digest/internal/domain"
	"feed_digest/internal/metrics"
)

// RefreshCoordinator fetches stale feeds concurrently. Every fetch settles
// before Refresh returns; a failing fetch never cancels its siblings.
type RefreshCoordinator struct {
	refresher    Refresher
	fetchTimeout time.Duration
	maxParallel  int
	logger       *slog.Logger
}

func NewRefreshCoordinator(refresher Refresher, fetchTimeout time.Duration, maxParallel int, logger *slog.Logger) *RefreshCoordinator {
	return &RefreshCoordinator{
		refresher:    refresher,
		fetchTimeout: fetchTimeout,
		maxParallel:  maxParallel,
		logger:       logger.With("component", "refresh"),
	}
}

func (c *RefreshCoordinator) Refresh(ctx context.Context, feedIDs []string) domain.RefreshStats {
	stats := domain.RefreshStats{Requested: len(feedIDs)}
	if len(feedIDs) == 0 {
		return stats
	}

	startTime := time.Now()
	results := make([]domain.RefreshResult, len(feedIDs))

	var g errgroup.Group
	if c.maxParallel > 0 {
		g.SetLimit(c.maxParallel)
	}

	for i, feedID := range feedIDs {
		i, feedID := i, feedID
		g.Go(func() error {
			results[i] = c.refreshOne(ctx, feedID)
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range results {
		if r.Err != nil {
			stats.Failed++
			continue
		}
		stats.Succeeded++
		stats.ArticlesWritten += r.Outcome.ArticlesWritten
	}
	stats.Results = results
	stats.Duration = time.Since(startTime)

	metrics.RecordRefreshBatch(stats.Succeeded, stats.Failed, stats.Duration.Seconds())
	c.logger.Info("feed refresh complete",
		"successful", stats.Succeeded,
		"failed", stats.Failed,
		"articles_written", stats.ArticlesWritten,
		"duration", stats.Duration,
	)

	return stats
}

func (c *RefreshCoordinator) refreshOne(ctx context.Context, feedID string) domain.RefreshResult {
	fetchCtx := ctx
	if c.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, c.fetchTimeout)
		defer cancel()
	}

	outcome, err := c.refresher.Refresh(fetchCtx, feedID)
	if err == nil && outcome == nil {
		err = fmt.Errorf("refresher returned no outcome")
	}
	if err != nil {
		c.logger.Warn("feed refresh failed", "feed_id", feedID, "error", err)
		return domain.RefreshResult{FeedID: feedID, Err: fmt.Errorf("refresh feed %s: %w", feedID, err)}
	}

	return domain.RefreshResult{FeedID: feedID, Outcome: outcome}
}
