package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"feed_digest/internal/domain"
)

const articleColumns = `a.id, a.source_url, a.guid, a.primary_feed_id, a.title, a.link,
	a.description, a.content, a.author, a.published_at, a.created_at, a.updated_at`

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// Upsert keys articles by (source_url, guid). An existing row keeps its
// primary feed; only the content columns are refreshed. written is false
// when the stored row already matched and nothing was changed.
func (s *ArticleStore) Upsert(ctx context.Context, article *domain.Article) (id int64, written bool, err error) {
	exec := GetExecutor(ctx, s.db)
	query := `
		INSERT INTO articles (
			source_url, guid, primary_feed_id, title, link,
			description, content, author, published_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		ON CONFLICT (source_url, guid) DO UPDATE SET
			title = EXCLUDED.title,
			link = EXCLUDED.link,
			description = EXCLUDED.description,
			content = EXCLUDED.content,
			author = EXCLUDED.author,
			published_at = EXCLUDED.published_at,
			updated_at = NOW()
		WHERE (articles.title, articles.link, articles.description, articles.content, articles.author, articles.published_at)
			IS DISTINCT FROM
			(EXCLUDED.title, EXCLUDED.link, EXCLUDED.description, EXCLUDED.content, EXCLUDED.author, EXCLUDED.published_at)
		RETURNING id`

	err = exec.QueryRowxContext(ctx, query,
		article.SourceURL,
		article.GUID,
		article.PrimaryFeedID,
		article.Title,
		article.Link,
		article.Description,
		article.Content,
		article.Author,
		article.PublishedAt,
	).Scan(&id)
	if err == nil {
		return id, true, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, err
	}

	err = exec.QueryRowxContext(ctx,
		"SELECT id FROM articles WHERE source_url = $1 AND guid = $2",
		article.SourceURL, article.GUID,
	).Scan(&id)
	if err != nil {
		return 0, false, err
	}

	return id, false, nil
}

// AttachToURLSubscribers adds every registration of url to the article's source set.
func (s *ArticleStore) AttachToURLSubscribers(ctx context.Context, articleID int64, url string) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO article_feeds (article_id, feed_id)
		SELECT $1, id FROM feeds WHERE url = $2
		ON CONFLICT DO NOTHING`,
		articleID, url,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *ArticleStore) ListIDsByFeed(ctx context.Context, feedID string) ([]int64, error) {
	var ids []int64
	query := `
		SELECT article_id FROM article_feeds WHERE feed_id = $1
		UNION
		SELECT id FROM articles WHERE primary_feed_id = $1
		ORDER BY 1`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids, query, feedID); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetForUpdate locks the article row for the rest of the transaction and
// loads its source set ordered by feed id.
func (s *ArticleStore) GetForUpdate(ctx context.Context, articleID int64) (*domain.Article, error) {
	exec := GetExecutor(ctx, s.db)

	var article domain.Article
	err := sqlx.GetContext(ctx, exec, &article,
		`SELECT `+articleColumns+` FROM articles a WHERE a.id = $1 FOR UPDATE`,
		articleID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", domain.ErrArticleNotFound, articleID)
	}
	if err != nil {
		return nil, err
	}

	err = sqlx.SelectContext(ctx, exec, &article.SourceFeedIDs,
		`SELECT feed_id FROM article_feeds WHERE article_id = $1 ORDER BY feed_id`,
		articleID,
	)
	if err != nil {
		return nil, err
	}

	return &article, nil
}

func (s *ArticleStore) RemoveSource(ctx context.Context, articleID int64, feedID string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM article_feeds WHERE article_id = $1 AND feed_id = $2`,
		articleID, feedID,
	)
	return err
}

func (s *ArticleStore) SetPrimaryFeed(ctx context.Context, articleID int64, feedID string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE articles SET primary_feed_id = $2, updated_at = NOW() WHERE id = $1`,
		articleID, feedID,
	)
	return err
}

func (s *ArticleStore) Delete(ctx context.Context, articleID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM articles WHERE id = $1`,
		articleID,
	)
	return err
}

// SweepFeedReferences clears whatever still points at feedID, including
// references attached after the per-article pass. The feed row is locked so
// no new references can be attached until the transaction ends.
func (s *ArticleStore) SweepFeedReferences(ctx context.Context, feedID string) (int64, error) {
	exec := GetExecutor(ctx, s.db)

	if _, err := exec.ExecContext(ctx, `SELECT id FROM feeds WHERE id = $1 FOR UPDATE`, feedID); err != nil {
		return 0, fmt.Errorf("lock feed: %w", err)
	}

	var total int64

	res, err := exec.ExecContext(ctx, `
		DELETE FROM articles a
		WHERE (a.primary_feed_id = $1
			OR EXISTS (SELECT 1 FROM article_feeds af WHERE af.article_id = a.id AND af.feed_id = $1))
		AND NOT EXISTS (SELECT 1 FROM article_feeds af WHERE af.article_id = a.id AND af.feed_id <> $1)`,
		feedID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete exclusive articles: %w", err)
	}
	n, _ := res.RowsAffected()
	total += n

	res, err = exec.ExecContext(ctx, `
		UPDATE articles a
		SET primary_feed_id = (
				SELECT MIN(af.feed_id) FROM article_feeds af
				WHERE af.article_id = a.id AND af.feed_id <> $1
			),
			updated_at = NOW()
		WHERE a.primary_feed_id = $1`,
		feedID,
	)
	if err != nil {
		return 0, fmt.Errorf("reassign primary feed: %w", err)
	}
	n, _ = res.RowsAffected()
	total += n

	res, err = exec.ExecContext(ctx, `DELETE FROM article_feeds WHERE feed_id = $1`, feedID)
	if err != nil {
		return 0, fmt.Errorf("remove references: %w", err)
	}
	n, _ = res.RowsAffected()
	total += n

	return total, nil
}

// DeleteOrphans removes articles with an empty source set.
func (s *ArticleStore) DeleteOrphans(ctx context.Context) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		DELETE FROM articles a
		WHERE NOT EXISTS (SELECT 1 FROM article_feeds af WHERE af.article_id = a.id)`,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListByFeedsAndRange returns articles whose source set intersects feedIDs and
// whose publication time lies in r, most recent first. A limit of 0 means no limit.
func (s *ArticleStore) ListByFeedsAndRange(ctx context.Context, feedIDs []string, r domain.DateRange, limit int) ([]domain.Article, error) {
	if len(feedIDs) == 0 {
		return nil, nil
	}

	var articles []domain.Article
	query := `
		SELECT ` + articleColumns + `
		FROM articles a
		WHERE a.published_at BETWEEN $2 AND $3
		AND EXISTS (
			SELECT 1 FROM article_feeds af
			WHERE af.article_id = a.id AND af.feed_id = ANY($1)
		)
		ORDER BY a.published_at DESC, a.id DESC
		LIMIT NULLIF($4::int, 0)`

	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &articles, query,
		pq.Array(feedIDs), r.Start, r.End, limit,
	)
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *ArticleStore) CountByFeedsAndRange(ctx context.Context, feedIDs []string, r domain.DateRange) (int, error) {
	if len(feedIDs) == 0 {
		return 0, nil
	}

	var count int
	query := `
		SELECT COUNT(*)
		FROM articles a
		WHERE a.published_at BETWEEN $2 AND $3
		AND EXISTS (
			SELECT 1 FROM article_feeds af
			WHERE af.article_id = a.id AND af.feed_id = ANY($1)
		)`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count, query, pq.Array(feedIDs), r.Start, r.End)
	return count, err
}
