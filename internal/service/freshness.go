package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"feed_digest/internal/domain"
	"feed_digest/internal/metrics"
)

// FreshnessOracle decides which feeds need a refresh. Freshness is keyed by
// source URL, so a fetch by any tenant's registration counts for everyone.
type FreshnessOracle struct {
	feeds  FeedStore
	cache  FetchCache
	window time.Duration
	now    func() time.Time
	logger *slog.Logger
}

func NewFreshnessOracle(feeds FeedStore, cache FetchCache, window time.Duration, logger *slog.Logger) *FreshnessOracle {
	return &FreshnessOracle{
		feeds:  feeds,
		cache:  cache,
		window: window,
		now:    time.Now,
		logger: logger.With("component", "freshness"),
	}
}

// Threshold is the oldest fetch time still considered fresh (inclusive).
func (o *FreshnessOracle) Threshold() time.Time {
	return o.now().Add(-o.window)
}

// StaleFeeds returns the subset of validated feed ids whose URL has no fetch
// at or after the cache threshold.
func (o *FreshnessOracle) StaleFeeds(ctx context.Context, tenantID domain.TenantID, feedIDs []string) ([]string, error) {
	if len(feedIDs) == 0 {
		return nil, nil
	}

	feeds, err := o.feeds.GetByIDs(ctx, tenantID, feedIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve feed urls: %w", err)
	}

	threshold := o.Threshold()
	urls := lo.Uniq(lo.Map(feeds, func(f domain.Feed, _ int) string { return f.URL }))

	recent, err := o.cache.LastFetchedSince(ctx, urls, threshold)
	if err != nil {
		return nil, fmt.Errorf("lookup url fetch cache: %w", err)
	}

	byID := lo.KeyBy(feeds, func(f domain.Feed) string { return f.ID })

	var stale []string
	for _, id := range feedIDs {
		feed, ok := byID[id]
		if !ok {
			continue
		}
		fetchedAt, ok := recent[feed.URL]
		if ok && !fetchedAt.Before(threshold) {
			continue
		}
		stale = append(stale, id)
	}

	metrics.RecordFreshness(len(feeds)-len(stale), len(stale))
	o.logger.Debug("freshness checked",
		"feeds", len(feeds),
		"urls", len(urls),
		"stale", len(stale),
		"threshold", threshold,
	)

	return stale, nil
}
