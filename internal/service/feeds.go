package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"feed_digest/internal/domain"
)

// FeedService manages a tenant's feed registrations.
type FeedService struct {
	feeds    FeedStore
	deletion *FeedDeletion
	logger   *slog.Logger
}

func NewFeedService(feeds FeedStore, deletion *FeedDeletion, logger *slog.Logger) *FeedService {
	return &FeedService{
		feeds:    feeds,
		deletion: deletion,
		logger:   logger.With("component", "feeds"),
	}
}

// Subscribe registers rawURL for the tenant. Articles already stored for the
// URL are attached to the new registration by the store.
func (s *FeedService) Subscribe(ctx context.Context, tenantID domain.TenantID, rawURL, title string) (*domain.Feed, error) {
	feedURL, err := normalizeFeedURL(rawURL)
	if err != nil {
		return nil, err
	}

	feed := &domain.Feed{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		URL:       feedURL,
		Title:     strings.TrimSpace(title),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.feeds.Create(ctx, feed); err != nil {
		return nil, fmt.Errorf("create feed: %w", err)
	}

	s.logger.Info("feed subscribed", "feed_id", feed.ID, "tenant_id", tenantID, "url", feed.URL)
	return feed, nil
}

func (s *FeedService) List(ctx context.Context, tenantID domain.TenantID) ([]domain.Feed, error) {
	feeds, err := s.feeds.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}
	return feeds, nil
}

func (s *FeedService) Delete(ctx context.Context, tenantID domain.TenantID, feedID string) (*domain.DeletionStats, error) {
	return s.deletion.Delete(ctx, tenantID, feedID)
}

func normalizeFeedURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: url is required", domain.ErrValidation)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: invalid url: %v", domain.ErrValidation, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: invalid url scheme %q (must be http or https)", domain.ErrValidation, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host in url", domain.ErrValidation)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	return u.String(), nil
}
