package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"feed_digest/internal/domain"
	"feed_digest/internal/metrics"
)

// ArticleAggregator assembles the article set reachable from a set of feeds
// within a date range, most recent first.
type ArticleAggregator struct {
	articles ArticleStore
	limit    int
}

func NewArticleAggregator(articles ArticleStore, limit int) *ArticleAggregator {
	return &ArticleAggregator{articles: articles, limit: limit}
}

func (a *ArticleAggregator) Limit() int {
	return a.limit
}

// Aggregate fails with domain.ErrNoContent when nothing matches.
func (a *ArticleAggregator) Aggregate(ctx context.Context, feedIDs []string, r domain.DateRange) ([]domain.Article, error) {
	if err := validateRange(r); err != nil {
		return nil, err
	}

	articles, err := a.articles.ListByFeedsAndRange(ctx, feedIDs, r, a.limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	if len(articles) == 0 {
		return nil, domain.ErrNoContent
	}

	slices.SortStableFunc(articles, func(x, y domain.Article) int {
		if c := y.PublishedAt.Compare(x.PublishedAt); c != 0 {
			return c
		}
		return cmp.Compare(y.ID, x.ID)
	})
	if a.limit > 0 && len(articles) > a.limit {
		articles = articles[:a.limit]
	}

	metrics.ArticlesAggregated.Observe(float64(len(articles)))
	return articles, nil
}

// Count reports how many articles are available, capped at the limit.
func (a *ArticleAggregator) Count(ctx context.Context, feedIDs []string, r domain.DateRange) (int, error) {
	if err := validateRange(r); err != nil {
		return 0, err
	}

	n, err := a.articles.CountByFeedsAndRange(ctx, feedIDs, r)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	if a.limit > 0 && n > a.limit {
		n = a.limit
	}
	return n, nil
}

func validateRange(r domain.DateRange) error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", domain.ErrValidation)
	}
	if r.End.Before(r.Start) {
		return fmt.Errorf("%w: end date %s is before start date %s",
			domain.ErrValidation, r.End.Format("2006-01-02"), r.Start.Format("2006-01-02"))
	}
	return nil
}
