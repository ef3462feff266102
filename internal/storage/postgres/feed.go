package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"feed_digest/internal/domain"
)

const uniqueViolation = "23505"

type FeedStore struct {
	db        *sqlx.DB
	txManager *TransactionManager
}

func NewFeedStore(db *sqlx.DB) *FeedStore {
	return &FeedStore{db: db, txManager: NewTransactionManager(db)}
}

// Create inserts the registration and attaches every article already stored
// for its URL, so a new subscriber sees the shared history immediately.
func (s *FeedStore) Create(ctx context.Context, feed *domain.Feed) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		exec := GetExecutor(txCtx, s.db)

		_, err := exec.ExecContext(txCtx, `
			INSERT INTO feeds (id, tenant_id, url, title, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			feed.ID, feed.TenantID, feed.URL, feed.Title, feed.CreatedAt,
		)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
				return fmt.Errorf("%w: %s", domain.ErrDuplicateFeed, feed.URL)
			}
			return err
		}

		_, err = exec.ExecContext(txCtx, `
			INSERT INTO article_feeds (article_id, feed_id)
			SELECT id, $1 FROM articles WHERE source_url = $2
			ON CONFLICT DO NOTHING`,
			feed.ID, feed.URL,
		)
		return err
	})
}

func (s *FeedStore) GetByID(ctx context.Context, id string) (*domain.Feed, error) {
	var feed domain.Feed
	query := `
		SELECT id, tenant_id, url, title, created_at, last_fetched_at
		FROM feeds
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &feed, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrFeedNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &feed, nil
}

func (s *FeedStore) GetByIDs(ctx context.Context, tenantID domain.TenantID, ids []string) ([]domain.Feed, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var feeds []domain.Feed
	query := `
		SELECT id, tenant_id, url, title, created_at, last_fetched_at
		FROM feeds
		WHERE tenant_id = $1 AND id = ANY($2)`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &feeds, query, tenantID, pq.Array(ids)); err != nil {
		return nil, err
	}
	return feeds, nil
}

func (s *FeedStore) ListOwnedIDs(ctx context.Context, tenantID domain.TenantID, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var owned []string
	query := `SELECT id FROM feeds WHERE tenant_id = $1 AND id = ANY($2)`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &owned, query, tenantID, pq.Array(ids)); err != nil {
		return nil, err
	}
	return owned, nil
}

func (s *FeedStore) ListByTenant(ctx context.Context, tenantID domain.TenantID) ([]domain.Feed, error) {
	var feeds []domain.Feed
	query := `
		SELECT f.id, f.tenant_id, f.url, f.title, f.created_at, f.last_fetched_at,
			COUNT(af.article_id) AS article_count
		FROM feeds f
		LEFT JOIN article_feeds af ON af.feed_id = f.id
		WHERE f.tenant_id = $1
		GROUP BY f.id
		ORDER BY f.created_at DESC, f.id`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &feeds, query, tenantID); err != nil {
		return nil, err
	}
	return feeds, nil
}

// MarkFetched never moves last_fetched_at backwards.
func (s *FeedStore) MarkFetched(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE feeds
		SET last_fetched_at = GREATEST(COALESCE(last_fetched_at, $2), $2)
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, at)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", domain.ErrFeedNotFound, id)
	}
	return nil
}

// Delete removes the registration. It fails with a foreign key violation
// while any article still references the feed.
func (s *FeedStore) Delete(ctx context.Context, id string, tenantID domain.TenantID) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM feeds WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
