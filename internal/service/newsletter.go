package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"feed_digest/internal/config"
	"feed_digest/internal/domain"
	"feed_digest/internal/metrics"
)

// NewsletterService runs the prepare flow:
// ownership -> freshness -> refresh (when needed) -> aggregation.
type NewsletterService struct {
	validator   *OwnershipValidator
	oracle      *FreshnessOracle
	coordinator *RefreshCoordinator
	aggregator  *ArticleAggregator
	publisher   Publisher
	logger      *slog.Logger
	config      config.PrepareConfig
}

func NewNewsletterService(
	validator *OwnershipValidator,
	oracle *FreshnessOracle,
	coordinator *RefreshCoordinator,
	aggregator *ArticleAggregator,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.PrepareConfig,
) *NewsletterService {
	return &NewsletterService{
		validator:   validator,
		oracle:      oracle,
		coordinator: coordinator,
		aggregator:  aggregator,
		publisher:   publisher,
		logger:      logger.With("component", "newsletter"),
		config:      cfg,
	}
}

// Prepare returns a non-empty, authorized, in-range article set.
func (s *NewsletterService) Prepare(ctx context.Context, req domain.PrepareRequest) (*domain.PreparedSet, error) {
	if s.config.GenerateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.GenerateTimeout)
		defer cancel()
	}

	set, err := s.prepare(ctx, req)
	metrics.RecordPrepare(prepareOutcome(err))
	return set, err
}

func (s *NewsletterService) prepare(ctx context.Context, req domain.PrepareRequest) (*domain.PreparedSet, error) {
	if err := validateRange(req.DateRange); err != nil {
		return nil, err
	}

	feedIDs, err := s.validator.Validate(ctx, req.TenantID, req.FeedIDs)
	if err != nil {
		return nil, err
	}

	stale, err := s.oracle.StaleFeeds(ctx, req.TenantID, feedIDs)
	if err != nil {
		return nil, fmt.Errorf("check feed freshness: %w", err)
	}

	var refresh domain.RefreshStats
	if len(stale) > 0 {
		s.logger.Info("refreshing stale feeds",
			"tenant_id", req.TenantID,
			"stale", len(stale),
			"total", len(feedIDs),
		)
		refresh = s.coordinator.Refresh(ctx, stale)

		if s.config.StrictFreshness && refresh.Failed > 0 {
			failed := lo.FilterMap(refresh.Results, func(r domain.RefreshResult, _ int) (error, bool) {
				return r.Err, r.Err != nil
			})
			return nil, fmt.Errorf("%w: %d of %d feeds failed to refresh: %w",
				domain.ErrUpstreamFetch, refresh.Failed, refresh.Requested, errors.Join(failed...))
		}
	} else {
		s.logger.Info("all feeds are fresh, skipping refresh",
			"tenant_id", req.TenantID,
			"total", len(feedIDs),
		)
	}

	articles, err := s.aggregator.Aggregate(ctx, feedIDs, req.DateRange)
	if err != nil {
		if errors.Is(err, domain.ErrNoContent) && refresh.Failed > 0 {
			return nil, fmt.Errorf("%w (%d feeds failed to refresh)", err, refresh.Failed)
		}
		return nil, err
	}

	return &domain.PreparedSet{
		TenantID:  req.TenantID,
		FeedIDs:   feedIDs,
		DateRange: req.DateRange,
		Articles:  articles,
		Refresh:   refresh,
	}, nil
}

// Summarize reports how many feeds would be refreshed and how many articles
// are currently available, without refreshing anything.
func (s *NewsletterService) Summarize(ctx context.Context, req domain.PrepareRequest) (*domain.PrepareSummary, error) {
	if s.config.SummaryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.SummaryTimeout)
		defer cancel()
	}

	if err := validateRange(req.DateRange); err != nil {
		return nil, err
	}

	feedIDs, err := s.validator.Validate(ctx, req.TenantID, req.FeedIDs)
	if err != nil {
		return nil, err
	}

	stale, err := s.oracle.StaleFeeds(ctx, req.TenantID, feedIDs)
	if err != nil {
		return nil, fmt.Errorf("check feed freshness: %w", err)
	}

	found, err := s.aggregator.Count(ctx, feedIDs, req.DateRange)
	if err != nil {
		return nil, err
	}

	return &domain.PrepareSummary{
		FeedsToRefresh: len(stale),
		ArticlesFound:  found,
	}, nil
}

// Generate prepares the article set and hands it to the external generator.
func (s *NewsletterService) Generate(ctx context.Context, req domain.PrepareRequest) (*domain.GenerationJob, error) {
	set, err := s.Prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	job := &domain.GenerationJob{
		ID:        uuid.NewString(),
		TenantID:  set.TenantID,
		FeedIDs:   set.FeedIDs,
		DateRange: set.DateRange,
		UserInput: req.UserInput,
		Articles:  lo.Map(set.Articles, func(a domain.Article, _ int) domain.GenerationArticle { return domain.NewGenerationArticle(a) }),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.publisher.PublishGenerationJob(ctx, job); err != nil {
		return nil, fmt.Errorf("publish generation job: %w", err)
	}

	s.logger.Info("generation job published",
		"job_id", job.ID,
		"tenant_id", job.TenantID,
		"articles", len(job.Articles),
	)

	return job, nil
}

func prepareOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrNoContent):
		return "no_content"
	case errors.Is(err, domain.ErrUpstreamFetch):
		return "upstream_fetch"
	default:
		return "error"
	}
}
