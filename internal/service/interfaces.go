package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"feed_digest/internal/domain"
)

type FeedStore interface {
	Create(ctx context.Context, feed *domain.Feed) error
	GetByID(ctx context.Context, id string) (*domain.Feed, error)
	GetByIDs(ctx context.Context, tenantID domain.TenantID, ids []string) ([]domain.Feed, error)
	ListOwnedIDs(ctx context.Context, tenantID domain.TenantID, ids []string) ([]string, error)
	ListByTenant(ctx context.Context, tenantID domain.TenantID) ([]domain.Feed, error)
	MarkFetched(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string, tenantID domain.TenantID) (int64, error)
}

type ArticleStore interface {
	Upsert(ctx context.Context, article *domain.Article) (int64, bool, error)
	AttachToURLSubscribers(ctx context.Context, articleID int64, url string) (int64, error)
	ListIDsByFeed(ctx context.Context, feedID string) ([]int64, error)
	GetForUpdate(ctx context.Context, articleID int64) (*domain.Article, error)
	RemoveSource(ctx context.Context, articleID int64, feedID string) error
	SetPrimaryFeed(ctx context.Context, articleID int64, feedID string) error
	Delete(ctx context.Context, articleID int64) error
	SweepFeedReferences(ctx context.Context, feedID string) (int64, error)
	DeleteOrphans(ctx context.Context) (int64, error)
	ListByFeedsAndRange(ctx context.Context, feedIDs []string, r domain.DateRange, limit int) ([]domain.Article, error)
	CountByFeedsAndRange(ctx context.Context, feedIDs []string, r domain.DateRange) (int, error)
}

// FetchCache records the latest successful fetch per source URL across all tenants.
type FetchCache interface {
	LastFetchedSince(ctx context.Context, urls []string, threshold time.Time) (map[string]time.Time, error)
	Touch(ctx context.Context, url string, at time.Time) error
	Evict(ctx context.Context, olderThan time.Time) (int64, error)
}

// NewsletterStore keeps generated newsletters per tenant.
type NewsletterStore interface {
	Create(ctx context.Context, n *domain.Newsletter) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Newsletter, error)
	ListByTenant(ctx context.Context, tenantID domain.TenantID, page domain.Page) ([]domain.Newsletter, error)
	CountByTenant(ctx context.Context, tenantID domain.TenantID) (int, error)
	Delete(ctx context.Context, id string, tenantID domain.TenantID) (int64, error)
}

type Source interface {
	Fetch(ctx context.Context, url string) ([]domain.FetchedItem, error)
}

// Refresher is the fetch-and-store primitive for a single registration.
type Refresher interface {
	Refresh(ctx context.Context, feedID string) (*domain.FetchOutcome, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishGenerationJob(ctx context.Context, job *domain.GenerationJob) error
	Close() error
}
