package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// FetchCacheStore records the last successful fetch per source URL.
type FetchCacheStore struct {
	db *sqlx.DB
}

func NewFetchCacheStore(db *sqlx.DB) *FetchCacheStore {
	return &FetchCacheStore{db: db}
}

func (s *FetchCacheStore) LastFetchedSince(ctx context.Context, urls []string, threshold time.Time) (map[string]time.Time, error) {
	result := make(map[string]time.Time)
	if len(urls) == 0 {
		return result, nil
	}

	query := `
		SELECT url, last_fetched_at
		FROM url_fetch_state
		WHERE url = ANY($1) AND last_fetched_at >= $2`

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, query, pq.Array(urls), threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var url string
		var fetchedAt time.Time
		if err := rows.Scan(&url, &fetchedAt); err != nil {
			return nil, err
		}
		result[url] = fetchedAt
	}

	return result, rows.Err()
}

// Touch never moves an entry backwards, so concurrent refreshes settle on the latest time.
func (s *FetchCacheStore) Touch(ctx context.Context, url string, at time.Time) error {
	query := `
		INSERT INTO url_fetch_state (url, last_fetched_at)
		VALUES ($1, $2)
		ON CONFLICT (url) DO UPDATE SET
			last_fetched_at = GREATEST(url_fetch_state.last_fetched_at, EXCLUDED.last_fetched_at)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, url, at)
	return err
}

// Evict drops stale entries for URLs that no registration points at anymore.
func (s *FetchCacheStore) Evict(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `
		DELETE FROM url_fetch_state s
		WHERE s.last_fetched_at < $1
		AND NOT EXISTS (SELECT 1 FROM feeds f WHERE f.url = s.url)`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, olderThan)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
