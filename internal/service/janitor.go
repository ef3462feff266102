package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"feed_digest/internal/domain"
	"feed_digest/internal/metrics"
)

// Janitor removes articles nothing references and fetch cache entries for
// URLs nobody subscribes to anymore. It never refreshes feeds.
type Janitor struct {
	articles ArticleStore
	cache    FetchCache
	window   time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

func NewJanitor(articles ArticleStore, cache FetchCache, window time.Duration, logger *slog.Logger) *Janitor {
	return &Janitor{
		articles: articles,
		cache:    cache,
		window:   window,
		now:      time.Now,
		logger:   logger.With("component", "janitor"),
	}
}

func (j *Janitor) Sweep(ctx context.Context) (*domain.SweepStats, error) {
	startTime := time.Now()
	stats := &domain.SweepStats{}

	orphans, err := j.articles.DeleteOrphans(ctx)
	if err != nil {
		return nil, fmt.Errorf("delete orphan articles: %w", err)
	}
	stats.OrphansDeleted = orphans

	evicted, err := j.cache.Evict(ctx, j.now().Add(-j.window))
	if err != nil {
		return stats, fmt.Errorf("evict fetch cache: %w", err)
	}
	stats.CacheEvicted = evicted
	stats.Duration = time.Since(startTime)

	metrics.RecordSweep(stats.OrphansDeleted, stats.CacheEvicted)
	j.logger.Info("sweep completed",
		"orphans_deleted", stats.OrphansDeleted,
		"cache_evicted", stats.CacheEvicted,
		"duration", stats.Duration,
	)

	return stats, nil
}
