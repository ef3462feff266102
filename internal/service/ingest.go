package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"feed_digest/internal/domain"
)

// IngestService is the fetch-and-store primitive. Concurrent refreshes of
// the same URL within this process share a single upstream fetch; storage
// writes are idempotent so duplicate refreshes across processes are safe.
type IngestService struct {
	feeds     FeedStore
	articles  ArticleStore
	cache     FetchCache
	source    Source
	txManager TransactionManager
	group     singleflight.Group
	now       func() time.Time
	logger    *slog.Logger
}

func NewIngestService(
	feeds FeedStore,
	articles ArticleStore,
	cache FetchCache,
	source Source,
	txManager TransactionManager,
	logger *slog.Logger,
) *IngestService {
	return &IngestService{
		feeds:     feeds,
		articles:  articles,
		cache:     cache,
		source:    source,
		txManager: txManager,
		now:       time.Now,
		logger:    logger.With("component", "ingest"),
	}
}

func (s *IngestService) Refresh(ctx context.Context, feedID string) (*domain.FetchOutcome, error) {
	feed, err := s.feeds.GetByID(ctx, feedID)
	if err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}

	items, err := s.fetch(ctx, feed.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrUpstreamFetch, feed.URL, err)
	}

	written := 0
	for i := range items {
		changed, err := s.storeItem(ctx, feed, &items[i])
		if err != nil {
			return nil, fmt.Errorf("store article %q: %w", items[i].GUID, err)
		}
		if changed {
			written++
		}
	}

	fetchedAt := s.now()
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.feeds.MarkFetched(txCtx, feed.ID, fetchedAt); err != nil {
			return fmt.Errorf("mark feed fetched: %w", err)
		}
		if err := s.cache.Touch(txCtx, feed.URL, fetchedAt); err != nil {
			return fmt.Errorf("touch fetch cache: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("feed refreshed",
		"feed_id", feed.ID,
		"url", feed.URL,
		"items", len(items),
		"articles_written", written,
	)

	return &domain.FetchOutcome{
		FeedID:          feed.ID,
		URL:             feed.URL,
		ItemsFetched:    len(items),
		ArticlesWritten: written,
		FetchedAt:       fetchedAt,
	}, nil
}

// maxFetchJoins bounds how often a caller re-issues a shared fetch that was
// cancelled by the caller who started it.
const maxFetchJoins = 3

func (s *IngestService) fetch(ctx context.Context, url string) ([]domain.FetchedItem, error) {
	for attempt := 1; ; attempt++ {
		ch := s.group.DoChan(url, func() (interface{}, error) {
			return s.source.Fetch(ctx, url)
		})

		var res singleflight.Result
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res = <-ch:
		}

		if res.Err == nil {
			if res.Shared {
				s.logger.Debug("shared in-flight fetch", "url", url)
			}
			items, _ := res.Val.([]domain.FetchedItem)
			return items, nil
		}

		// A joined fetch runs under its starter's context. Its cancellation
		// says nothing about ours.
		if res.Shared && isContextErr(res.Err) && ctx.Err() == nil && attempt < maxFetchJoins {
			s.group.Forget(url)
			s.logger.Debug("shared fetch cancelled by its starter, fetching again", "url", url)
			continue
		}
		return nil, res.Err
	}
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// storeItem upserts one article and links it to every registration of its URL.
func (s *IngestService) storeItem(ctx context.Context, feed *domain.Feed, item *domain.FetchedItem) (bool, error) {
	article := &domain.Article{
		SourceURL:     feed.URL,
		GUID:          item.GUID,
		PrimaryFeedID: feed.ID,
		Title:         item.Title,
		Link:          item.Link,
		Description:   item.Description,
		Content:       item.Content,
		Author:        item.Author,
		PublishedAt:   item.PublishedAt,
	}

	var written bool
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		articleID, changed, err := s.articles.Upsert(txCtx, article)
		if err != nil {
			return fmt.Errorf("upsert article: %w", err)
		}
		if _, err := s.articles.AttachToURLSubscribers(txCtx, articleID, feed.URL); err != nil {
			return fmt.Errorf("attach article: %w", err)
		}
		written = changed
		return nil
	})
	return written, err
}
