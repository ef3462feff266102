package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"feed_digest/internal/domain"
	"feed_digest/internal/metrics"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// NewsletterHistory records generated newsletters and serves them back to
// the tenant that asked for them.
type NewsletterHistory struct {
	newsletters NewsletterStore
	now         func() time.Time
	logger      *slog.Logger
}

func NewNewsletterHistory(newsletters NewsletterStore, logger *slog.Logger) *NewsletterHistory {
	return &NewsletterHistory{
		newsletters: newsletters,
		now:         time.Now,
		logger:      logger.With("component", "history"),
	}
}

// Record stores a generation result. Recording the same job twice keeps the
// first copy.
func (h *NewsletterHistory) Record(ctx context.Context, result *domain.GenerationResult) (*domain.Newsletter, error) {
	switch {
	case strings.TrimSpace(result.JobID) == "":
		return nil, fmt.Errorf("%w: generation result has no job id", domain.ErrValidation)
	case result.TenantID == "":
		return nil, fmt.Errorf("%w: generation result %s has no tenant", domain.ErrValidation, result.JobID)
	case strings.TrimSpace(result.Body) == "":
		return nil, fmt.Errorf("%w: generation result %s has an empty body", domain.ErrValidation, result.JobID)
	}

	createdAt := result.CompletedAt
	if createdAt.IsZero() {
		createdAt = h.now()
	}

	newsletter := &domain.Newsletter{
		ID:                    result.JobID,
		TenantID:              result.TenantID,
		SuggestedTitles:       result.SuggestedTitles,
		SuggestedSubjectLines: result.SuggestedSubjectLines,
		Body:                  result.Body,
		TopAnnouncements:      result.TopAnnouncements,
		AdditionalInfo:        lo.EmptyableToPtr(strings.TrimSpace(result.AdditionalInfo)),
		DateRange:             result.DateRange,
		UserInput:             lo.EmptyableToPtr(strings.TrimSpace(result.UserInput)),
		FeedsUsed:             lo.Uniq(result.FeedIDs),
		CreatedAt:             createdAt.UTC(),
	}

	created, err := h.newsletters.Create(ctx, newsletter)
	if err != nil {
		metrics.RecordNewsletter("error")
		return nil, fmt.Errorf("store newsletter %s: %w", result.JobID, err)
	}

	if !created {
		metrics.RecordNewsletter("duplicate")
		h.logger.Debug("newsletter already recorded", "newsletter_id", newsletter.ID)
		return newsletter, nil
	}

	metrics.RecordNewsletter("recorded")
	h.logger.Info("newsletter recorded",
		"newsletter_id", newsletter.ID,
		"tenant_id", newsletter.TenantID,
		"feeds", len(newsletter.FeedsUsed),
	)
	return newsletter, nil
}

// List returns one page of the tenant's history, newest first.
func (h *NewsletterHistory) List(ctx context.Context, tenantID domain.TenantID, page domain.Page) (*domain.NewsletterPage, error) {
	if page.Limit < 0 || page.Offset < 0 {
		return nil, fmt.Errorf("%w: limit and offset must not be negative", domain.ErrValidation)
	}
	if page.Limit == 0 {
		page.Limit = defaultHistoryLimit
	}
	page.Limit = min(page.Limit, maxHistoryLimit)

	items, err := h.newsletters.ListByTenant(ctx, tenantID, page)
	if err != nil {
		return nil, fmt.Errorf("list newsletters: %w", err)
	}

	total, err := h.newsletters.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("count newsletters: %w", err)
	}

	return &domain.NewsletterPage{Items: items, Total: total, Page: page}, nil
}

func (h *NewsletterHistory) Get(ctx context.Context, tenantID domain.TenantID, id string) (*domain.Newsletter, error) {
	return h.owned(ctx, tenantID, id)
}

// Delete fails with domain.ErrNewsletterNotFound before it checks ownership.
func (h *NewsletterHistory) Delete(ctx context.Context, tenantID domain.TenantID, id string) error {
	if _, err := h.owned(ctx, tenantID, id); err != nil {
		return err
	}

	rows, err := h.newsletters.Delete(ctx, id, tenantID)
	if err != nil {
		return fmt.Errorf("delete newsletter %s: %w", id, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNewsletterNotFound, id)
	}

	h.logger.Info("newsletter deleted", "newsletter_id", id, "tenant_id", tenantID)
	return nil
}

func (h *NewsletterHistory) owned(ctx context.Context, tenantID domain.TenantID, id string) (*domain.Newsletter, error) {
	newsletter, err := h.newsletters.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get newsletter: %w", err)
	}
	if newsletter.TenantID != tenantID {
		return nil, fmt.Errorf("%w: newsletter %s does not belong to tenant", domain.ErrUnauthorized, id)
	}
	return newsletter, nil
}
