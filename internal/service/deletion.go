package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"feed_digest/internal/domain"
	"feed_digest/internal/metrics"
)

type detachAction int

const (
	detachNone detachAction = iota
	detachKept
	detachReassigned
	detachDeleted
)

// FeedDeletion removes a feed registration while keeping article reference
// counts consistent. The registration is deleted last; any earlier failure
// leaves it in place so the call can be retried.
type FeedDeletion struct {
	feeds     FeedStore
	articles  ArticleStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewFeedDeletion(feeds FeedStore, articles ArticleStore, txManager TransactionManager, logger *slog.Logger) *FeedDeletion {
	return &FeedDeletion{
		feeds:     feeds,
		articles:  articles,
		txManager: txManager,
		logger:    logger.With("component", "deletion"),
	}
}

func (d *FeedDeletion) Delete(ctx context.Context, tenantID domain.TenantID, feedID string) (*domain.DeletionStats, error) {
	feed, err := d.feeds.GetByID(ctx, feedID)
	if err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}
	if feed.TenantID != tenantID {
		return nil, &domain.UnauthorizedFeedsError{FeedIDs: []string{feedID}}
	}

	stats := &domain.DeletionStats{FeedID: feedID}

	articleIDs, err := d.articles.ListIDsByFeed(ctx, feedID)
	if err != nil {
		return stats, fmt.Errorf("%w: list referenced articles: %w", domain.ErrCleanup, err)
	}

	for _, articleID := range articleIDs {
		var action detachAction
		err := d.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			var err error
			action, err = d.detach(txCtx, articleID, feedID)
			return err
		})
		if err != nil {
			return stats, fmt.Errorf("%w: detach article %d: %w", domain.ErrCleanup, articleID, err)
		}

		switch action {
		case detachKept:
			stats.Detached++
		case detachReassigned:
			stats.Detached++
			stats.PrimaryReassigned++
		case detachDeleted:
			stats.Deleted++
		}
	}

	err = d.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		swept, err := d.articles.SweepFeedReferences(txCtx, feedID)
		if err != nil {
			return fmt.Errorf("%w: sweep references: %w", domain.ErrCleanup, err)
		}
		stats.Swept = swept

		rows, err := d.feeds.Delete(txCtx, feedID, tenantID)
		if err != nil {
			return fmt.Errorf("%w: delete feed: %w", domain.ErrCleanup, err)
		}
		if rows == 0 {
			return domain.ErrFeedNotFound
		}
		return nil
	})
	if err != nil {
		return stats, err
	}

	metrics.RecordDeletion(stats.Detached, stats.Deleted)
	d.logger.Info("feed deleted",
		"feed_id", feedID,
		"tenant_id", tenantID,
		"detached", stats.Detached,
		"primary_reassigned", stats.PrimaryReassigned,
		"articles_deleted", stats.Deleted,
		"swept", stats.Swept,
	)

	return stats, nil
}

// detach drops feedID from one article's source set under a row lock,
// deleting the article when nothing else references it.
func (d *FeedDeletion) detach(ctx context.Context, articleID int64, feedID string) (detachAction, error) {
	article, err := d.articles.GetForUpdate(ctx, articleID)
	if errors.Is(err, domain.ErrArticleNotFound) {
		return detachNone, nil
	}
	if err != nil {
		return detachNone, fmt.Errorf("lock article: %w", err)
	}

	if !lo.Contains(article.SourceFeedIDs, feedID) {
		return detachNone, nil
	}

	remaining := lo.Without(article.SourceFeedIDs, feedID)
	if len(remaining) == 0 {
		if err := d.articles.Delete(ctx, articleID); err != nil {
			return detachNone, fmt.Errorf("delete article: %w", err)
		}
		return detachDeleted, nil
	}

	action := detachKept
	if article.PrimaryFeedID == feedID {
		if err := d.articles.SetPrimaryFeed(ctx, articleID, remaining[0]); err != nil {
			return detachNone, fmt.Errorf("reassign primary feed: %w", err)
		}
		action = detachReassigned
	}

	if err := d.articles.RemoveSource(ctx, articleID, feedID); err != nil {
		return detachNone, fmt.Errorf("remove source: %w", err)
	}

	return action, nil
}
