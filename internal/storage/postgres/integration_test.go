//go:build integration

package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"feed_digest/internal/domain"
	"feed_digest/internal/service"
)

const feedURL = "https://example.com/feed"

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
	feeds     *FeedStore
	articles  *ArticleStore
	cache     *FetchCacheStore
	history   *NewsletterStore
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_feeds.up.sql"),
			filepath.Join(migrationsPath, "002_create_articles.up.sql"),
			filepath.Join(migrationsPath, "003_create_url_fetch_state.up.sql"),
			filepath.Join(migrationsPath, "004_create_newsletters.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db

	s.feeds = NewFeedStore(db)
	s.articles = NewArticleStore(db)
	s.cache = NewFetchCacheStore(db)
	s.history = NewNewsletterStore(db)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM article_feeds")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM articles")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM feeds")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM url_fetch_state")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM newsletters")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) createFeed(id string, tenant domain.TenantID, url string) {
	err := s.feeds.Create(s.ctx, &domain.Feed{
		ID:        id,
		TenantID:  tenant,
		URL:       url,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	})
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) ingest(primary, url, guid string, published time.Time) int64 {
	id, _, err := s.articles.Upsert(s.ctx, &domain.Article{
		SourceURL:     url,
		GUID:          guid,
		PrimaryFeedID: primary,
		Title:         "Article " + guid,
		Link:          url + "/" + guid,
		PublishedAt:   published,
	})
	s.Require().NoError(err)
	_, err = s.articles.AttachToURLSubscribers(s.ctx, id, url)
	s.Require().NoError(err)
	return id
}

func (s *PostgresIntegrationSuite) articleExists(id int64) bool {
	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM articles WHERE id = $1", id))
	return count == 1
}

func (s *PostgresIntegrationSuite) TestFeedStore_CreateDuplicate() {
	s.createFeed("f1", "tenant-a", feedURL)

	err := s.feeds.Create(s.ctx, &domain.Feed{ID: "f2", TenantID: "tenant-a", URL: feedURL, CreatedAt: time.Now()})

	s.True(errors.Is(err, domain.ErrDuplicateFeed))
}

func (s *PostgresIntegrationSuite) TestFeedStore_CreateBackfillsExistingArticles() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	s.createFeed("a-feed", "tenant-a", feedURL)
	s.ingest("a-feed", feedURL, "g1", now)
	s.ingest("a-feed", feedURL, "g2", now)

	s.createFeed("b-feed", "tenant-b", feedURL)

	feeds, err := s.feeds.ListByTenant(s.ctx, "tenant-b")
	s.Require().NoError(err)
	s.Require().Len(feeds, 1)
	s.Equal(2, feeds[0].ArticleCount)
}

func (s *PostgresIntegrationSuite) TestFeedStore_OwnershipQueries() {
	s.createFeed("a1", "tenant-a", feedURL)
	s.createFeed("b1", "tenant-b", feedURL)

	owned, err := s.feeds.ListOwnedIDs(s.ctx, "tenant-a", []string{"a1", "b1", "missing"})
	s.NoError(err)
	s.Equal([]string{"a1"}, owned)

	_, err = s.feeds.GetByID(s.ctx, "missing")
	s.True(errors.Is(err, domain.ErrFeedNotFound))
}

func (s *PostgresIntegrationSuite) TestFeedStore_MarkFetchedNeverMovesBackwards() {
	s.createFeed("f1", "tenant-a", feedURL)
	later := time.Now().UTC().Truncate(time.Microsecond)

	s.Require().NoError(s.feeds.MarkFetched(s.ctx, "f1", later))
	s.Require().NoError(s.feeds.MarkFetched(s.ctx, "f1", later.Add(-time.Hour)))

	feed, err := s.feeds.GetByID(s.ctx, "f1")
	s.Require().NoError(err)
	s.True(feed.LastFetchedAt.Equal(later))
}

func (s *PostgresIntegrationSuite) TestArticleStore_UpsertIsIdempotent() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	s.createFeed("f1", "tenant-a", feedURL)

	first := s.ingest("f1", feedURL, "g1", now)
	second := s.ingest("f1", feedURL, "g1", now)

	s.Equal(first, second)

	var edges int
	s.NoError(s.db.GetContext(s.ctx, &edges, "SELECT COUNT(*) FROM article_feeds WHERE article_id = $1", first))
	s.Equal(1, edges)
}

func (s *PostgresIntegrationSuite) TestArticleStore_UpsertReportsWrites() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	s.createFeed("f1", "tenant-a", feedURL)
	article := &domain.Article{
		SourceURL:     feedURL,
		GUID:          "g1",
		PrimaryFeedID: "f1",
		Title:         "Original",
		PublishedAt:   now,
	}

	_, written, err := s.articles.Upsert(s.ctx, article)
	s.Require().NoError(err)
	s.True(written)

	_, written, err = s.articles.Upsert(s.ctx, article)
	s.Require().NoError(err)
	s.False(written)

	article.Title = "Edited"
	_, written, err = s.articles.Upsert(s.ctx, article)
	s.Require().NoError(err)
	s.True(written)
}

func (s *PostgresIntegrationSuite) TestArticleStore_ListByFeedsAndRange() {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s.createFeed("f1", "tenant-a", feedURL)
	s.ingest("f1", feedURL, "before", base.Add(-time.Hour))
	s.ingest("f1", feedURL, "start", base)
	s.ingest("f1", feedURL, "middle", base.Add(12*time.Hour))
	s.ingest("f1", feedURL, "end", base.Add(24*time.Hour))
	s.ingest("f1", feedURL, "after", base.Add(25*time.Hour))

	r := domain.DateRange{Start: base, End: base.Add(24 * time.Hour)}

	articles, err := s.articles.ListByFeedsAndRange(s.ctx, []string{"f1"}, r, 0)
	s.Require().NoError(err)
	s.Require().Len(articles, 3)
	s.Equal("end", articles[0].GUID)
	s.Equal("start", articles[2].GUID)

	limited, err := s.articles.ListByFeedsAndRange(s.ctx, []string{"f1"}, r, 2)
	s.NoError(err)
	s.Len(limited, 2)

	count, err := s.articles.CountByFeedsAndRange(s.ctx, []string{"f1"}, r)
	s.NoError(err)
	s.Equal(3, count)
}

func (s *PostgresIntegrationSuite) TestFeedStore_DeleteRefusedWhileReferenced() {
	s.createFeed("f1", "tenant-a", feedURL)
	s.ingest("f1", feedURL, "g1", time.Now())

	_, err := s.feeds.Delete(s.ctx, "f1", "tenant-a")

	s.Error(err)
	_, err = s.feeds.GetByID(s.ctx, "f1")
	s.NoError(err)
}

func (s *PostgresIntegrationSuite) TestFeedDeletion_SharedArticleSurvives() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	otherURL := "https://other.example.com/rss"

	s.createFeed("F", "tenant-a", feedURL)
	s.createFeed("G", "tenant-b", feedURL)
	s.createFeed("H", "tenant-a", otherURL)

	shared := s.ingest("F", feedURL, "m", now)
	exclusive := s.ingest("H", otherURL, "x", now)

	// N is referenced only by F.
	_, err := s.db.ExecContext(s.ctx, "DELETE FROM article_feeds WHERE article_id = $1", exclusive)
	s.Require().NoError(err)
	_, err = s.db.ExecContext(s.ctx, "UPDATE articles SET primary_feed_id = 'F' WHERE id = $1", exclusive)
	s.Require().NoError(err)
	_, err = s.db.ExecContext(s.ctx, "INSERT INTO article_feeds (article_id, feed_id) VALUES ($1, 'F')", exclusive)
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deletion := service.NewFeedDeletion(s.feeds, s.articles, NewTransactionManager(s.db), logger)

	stats, err := deletion.Delete(s.ctx, "tenant-a", "F")
	s.Require().NoError(err)
	s.Equal(1, stats.Deleted)
	s.Equal(1, stats.PrimaryReassigned)

	s.True(s.articleExists(shared))
	s.False(s.articleExists(exclusive))

	article, err := s.articles.GetForUpdate(s.ctx, shared)
	s.Require().NoError(err)
	s.Equal([]string{"G"}, article.SourceFeedIDs)
	s.Equal("G", article.PrimaryFeedID)

	_, err = s.feeds.GetByID(s.ctx, "F")
	s.True(errors.Is(err, domain.ErrFeedNotFound))

	_, err = deletion.Delete(s.ctx, "tenant-a", "F")
	s.True(errors.Is(err, domain.ErrFeedNotFound))
}

func (s *PostgresIntegrationSuite) TestArticleStore_SweepFeedReferences() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	s.createFeed("F", "tenant-a", feedURL)
	s.createFeed("G", "tenant-b", feedURL)

	// Attached after the per-article pass would have run, and only to F.
	exclusive := s.ingest("F", feedURL, "late", now)
	_, err := s.db.ExecContext(s.ctx, "DELETE FROM article_feeds WHERE feed_id = 'G'")
	s.Require().NoError(err)

	tm := NewTransactionManager(s.db)
	err = tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		swept, err := s.articles.SweepFeedReferences(ctx, "F")
		s.Positive(swept)
		return err
	})
	s.Require().NoError(err)

	s.False(s.articleExists(exclusive))

	rows, err := s.feeds.Delete(s.ctx, "F", "tenant-a")
	s.NoError(err)
	s.Equal(int64(1), rows)
}

func (s *PostgresIntegrationSuite) TestArticleStore_DeleteOrphans() {
	s.createFeed("f1", "tenant-a", feedURL)
	id := s.ingest("f1", feedURL, "g1", time.Now())
	_, err := s.db.ExecContext(s.ctx, "DELETE FROM article_feeds WHERE article_id = $1", id)
	s.Require().NoError(err)

	removed, err := s.articles.DeleteOrphans(s.ctx)

	s.NoError(err)
	s.Equal(int64(1), removed)
	s.False(s.articleExists(id))
}

func (s *PostgresIntegrationSuite) TestFetchCache_TouchAndLookup() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	threshold := now.Add(-3 * time.Hour)

	s.Require().NoError(s.cache.Touch(s.ctx, feedURL, now.Add(-time.Hour)))
	s.Require().NoError(s.cache.Touch(s.ctx, feedURL, now.Add(-5*time.Hour)))
	s.Require().NoError(s.cache.Touch(s.ctx, "https://old.example.com", threshold.Add(-time.Second)))
	s.Require().NoError(s.cache.Touch(s.ctx, "https://edge.example.com", threshold))

	got, err := s.cache.LastFetchedSince(s.ctx,
		[]string{feedURL, "https://old.example.com", "https://edge.example.com", "https://never.example.com"},
		threshold,
	)

	s.Require().NoError(err)
	s.Len(got, 2)
	s.True(got[feedURL].Equal(now.Add(-time.Hour)))
	s.Contains(got, "https://edge.example.com")
}

func (s *PostgresIntegrationSuite) TestFetchCache_EvictKeepsSubscribedURLs() {
	old := time.Now().UTC().Add(-24 * time.Hour)
	s.createFeed("f1", "tenant-a", feedURL)
	s.Require().NoError(s.cache.Touch(s.ctx, feedURL, old))
	s.Require().NoError(s.cache.Touch(s.ctx, "https://gone.example.com", old))

	evicted, err := s.cache.Evict(s.ctx, time.Now().Add(-3*time.Hour))

	s.NoError(err)
	s.Equal(int64(1), evicted)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := s.feeds.Create(ctx, &domain.Feed{ID: "f1", TenantID: "tenant-a", URL: feedURL, CreatedAt: time.Now()}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	_, err = s.feeds.GetByID(s.ctx, "f1")
	s.True(errors.Is(err, domain.ErrFeedNotFound))
}

func (s *PostgresIntegrationSuite) newsletter(id string, tenant domain.TenantID, createdAt time.Time) *domain.Newsletter {
	return &domain.Newsletter{
		ID:                    id,
		TenantID:              tenant,
		SuggestedTitles:       []string{"Title " + id},
		SuggestedSubjectLines: []string{"Subject " + id},
		Body:                  "Body " + id,
		DateRange:             domain.DateRange{Start: createdAt.Add(-72 * time.Hour), End: createdAt},
		FeedsUsed:             []string{"f1", "f2"},
		CreatedAt:             createdAt,
	}
}

func (s *PostgresIntegrationSuite) TestNewsletterStore_CreateAndGet() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	n := s.newsletter("n1", "tenant-a", now)
	info := "see attachments"
	n.AdditionalInfo = &info

	created, err := s.history.Create(s.ctx, n)
	s.Require().NoError(err)
	s.True(created)

	n.Body = "replayed"
	created, err = s.history.Create(s.ctx, n)
	s.Require().NoError(err)
	s.False(created)

	got, err := s.history.GetByID(s.ctx, "n1")
	s.Require().NoError(err)
	s.Equal(domain.TenantID("tenant-a"), got.TenantID)
	s.Equal("Body n1", got.Body)
	s.Equal([]string{"Title n1"}, got.SuggestedTitles)
	s.Empty(got.TopAnnouncements)
	s.Equal([]string{"f1", "f2"}, got.FeedsUsed)
	s.Require().NotNil(got.AdditionalInfo)
	s.Equal("see attachments", *got.AdditionalInfo)
	s.Nil(got.UserInput)
	s.True(got.CreatedAt.Equal(now))
	s.True(got.DateRange.End.Equal(now))

	_, err = s.history.GetByID(s.ctx, "missing")
	s.True(errors.Is(err, domain.ErrNewsletterNotFound))
}

func (s *PostgresIntegrationSuite) TestNewsletterStore_ListNewestFirstAndCount() {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"n1", "n2", "n3"} {
		_, err := s.history.Create(s.ctx, s.newsletter(id, "tenant-a", base.Add(time.Duration(i)*time.Hour)))
		s.Require().NoError(err)
	}
	_, err := s.history.Create(s.ctx, s.newsletter("other", "tenant-b", base))
	s.Require().NoError(err)

	first, err := s.history.ListByTenant(s.ctx, "tenant-a", domain.Page{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(first, 2)
	s.Equal("n3", first[0].ID)
	s.Equal("n2", first[1].ID)

	rest, err := s.history.ListByTenant(s.ctx, "tenant-a", domain.Page{Limit: 2, Offset: 2})
	s.Require().NoError(err)
	s.Require().Len(rest, 1)
	s.Equal("n1", rest[0].ID)

	count, err := s.history.CountByTenant(s.ctx, "tenant-a")
	s.NoError(err)
	s.Equal(3, count)
}

func (s *PostgresIntegrationSuite) TestNewsletterStore_DeleteScopedToTenant() {
	_, err := s.history.Create(s.ctx, s.newsletter("n1", "tenant-a", time.Now().UTC()))
	s.Require().NoError(err)

	rows, err := s.history.Delete(s.ctx, "n1", "tenant-b")
	s.NoError(err)
	s.Zero(rows)

	rows, err = s.history.Delete(s.ctx, "n1", "tenant-a")
	s.NoError(err)
	s.Equal(int64(1), rows)

	_, err = s.history.GetByID(s.ctx, "n1")
	s.True(errors.Is(err, domain.ErrNewsletterNotFound))
}

func (s *PostgresIntegrationSuite) TestNewsletterHistory_SurvivesFeedDeletion() {
	s.createFeed("f1", "tenant-a", feedURL)
	_, err := s.history.Create(s.ctx, s.newsletter("n1", "tenant-a", time.Now().UTC()))
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deletion := service.NewFeedDeletion(s.feeds, s.articles, NewTransactionManager(s.db), logger)
	_, err = deletion.Delete(s.ctx, "tenant-a", "f1")
	s.Require().NoError(err)

	history := service.NewNewsletterHistory(s.history, logger)
	got, err := history.Get(s.ctx, "tenant-a", "n1")
	s.Require().NoError(err)
	s.Equal([]string{"f1", "f2"}, got.FeedsUsed)
}
