package rss

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"feed_digest/internal/domain"
)

// Config holds RSS/Atom source configuration.
type Config struct {
	Timeout        time.Duration
	UserAgent      string
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source fetches and parses RSS, Atom and JSON feeds over HTTP.
type Source struct {
	httpClient     *http.Client
	parser         *gofeed.Parser
	userAgent      string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

// permanentError marks a failure that retrying cannot fix.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func New(cfg Config, logger *slog.Logger) *Source {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		parser:         gofeed.NewParser(),
		userAgent:      cfg.UserAgent,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		now:            time.Now,
		logger:         logger.With("component", "rss"),
	}
}

// Fetch downloads url and returns its entries.
func (s *Source) Fetch(ctx context.Context, url string) ([]domain.FetchedItem, error) {
	var feed *gofeed.Feed
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		feed, err = s.doRequest(ctx, url)
		if err == nil {
			return s.transform(url, feed), nil
		}

		var permanent *permanentError
		if errors.As(err, &permanent) || attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"url", url,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, url string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &permanentError{fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, application/json;q=0.9, */*;q=0.8")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status: %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, &permanentError{err}
		}
		return nil, err
	}

	feed, err := s.parser.Parse(resp.Body)
	if err != nil {
		return nil, &permanentError{fmt.Errorf("parse feed: %w", err)}
	}

	return feed, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func (s *Source) transform(url string, feed *gofeed.Feed) []domain.FetchedItem {
	items := make([]domain.FetchedItem, 0, len(feed.Items))
	fetchedAt := s.now().UTC()

	for _, it := range feed.Items {
		if it == nil {
			continue
		}

		guid := strings.TrimSpace(it.GUID)
		if guid == "" {
			guid = strings.TrimSpace(it.Link)
		}
		if guid == "" {
			s.logger.Warn("skipping entry without guid or link", "url", url, "title", it.Title)
			continue
		}

		item := domain.FetchedItem{
			GUID:        guid,
			Title:       strings.TrimSpace(it.Title),
			Link:        strings.TrimSpace(it.Link),
			Description: nonEmpty(it.Description),
			Content:     nonEmpty(it.Content),
			PublishedAt: fetchedAt,
		}

		switch {
		case it.PublishedParsed != nil:
			item.PublishedAt = it.PublishedParsed.UTC()
		case it.UpdatedParsed != nil:
			item.PublishedAt = it.UpdatedParsed.UTC()
		}

		if len(it.Authors) > 0 && it.Authors[0] != nil {
			item.Author = nonEmpty(it.Authors[0].Name)
		}

		items = append(items, item)
	}

	return items
}

func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
