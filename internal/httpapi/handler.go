package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"feed_digest/internal/domain"
)

// FeedManager is the feed registration surface.
type FeedManager interface {
	Subscribe(ctx context.Context, tenantID domain.TenantID, rawURL, title string) (*domain.Feed, error)
	List(ctx context.Context, tenantID domain.TenantID) ([]domain.Feed, error)
	Delete(ctx context.Context, tenantID domain.TenantID, feedID string) (*domain.DeletionStats, error)
}

// Newsletters is the newsletter preparation surface.
type Newsletters interface {
	Summarize(ctx context.Context, req domain.PrepareRequest) (*domain.PrepareSummary, error)
	Generate(ctx context.Context, req domain.PrepareRequest) (*domain.GenerationJob, error)
}

// History is the generated newsletter history surface.
type History interface {
	List(ctx context.Context, tenantID domain.TenantID, page domain.Page) (*domain.NewsletterPage, error)
	Get(ctx context.Context, tenantID domain.TenantID, id string) (*domain.Newsletter, error)
	Delete(ctx context.Context, tenantID domain.TenantID, id string) error
}

type Handler struct {
	feeds       FeedManager
	newsletters Newsletters
	history     History
	logger      *slog.Logger
}

func NewHandler(feeds FeedManager, newsletters Newsletters, history History, logger *slog.Logger) *Handler {
	return &Handler{
		feeds:       feeds,
		newsletters: newsletters,
		history:     history,
		logger:      logger.With("component", "http"),
	}
}

type subscribeRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

type feedResponse struct {
	ID            string     `json:"id"`
	URL           string     `json:"url"`
	Title         string     `json:"title"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastFetchedAt *time.Time `json:"lastFetchedAt,omitempty"`
	ArticleCount  int        `json:"articleCount"`
}

func newFeedResponse(f domain.Feed) feedResponse {
	return feedResponse{
		ID:            f.ID,
		URL:           f.URL,
		Title:         f.Title,
		CreatedAt:     f.CreatedAt,
		LastFetchedAt: f.LastFetchedAt,
		ArticleCount:  f.ArticleCount,
	}
}

type newsletterRequest struct {
	FeedIDs   []string `json:"feedIds"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	UserInput string   `json:"userInput"`
}

type generateResponse struct {
	JobID        string `json:"jobId"`
	ArticleCount int    `json:"articleCount"`
}

type newsletterResponse struct {
	ID                    string    `json:"id"`
	SuggestedTitles       []string  `json:"suggestedTitles"`
	SuggestedSubjectLines []string  `json:"suggestedSubjectLines"`
	Body                  string    `json:"body"`
	TopAnnouncements      []string  `json:"topAnnouncements"`
	AdditionalInfo        *string   `json:"additionalInfo,omitempty"`
	StartDate             time.Time `json:"startDate"`
	EndDate               time.Time `json:"endDate"`
	UserInput             *string   `json:"userInput,omitempty"`
	FeedsUsed             []string  `json:"feedsUsed"`
	CreatedAt             time.Time `json:"createdAt"`
}

func newNewsletterResponse(n domain.Newsletter) newsletterResponse {
	return newsletterResponse{
		ID:                    n.ID,
		SuggestedTitles:       n.SuggestedTitles,
		SuggestedSubjectLines: n.SuggestedSubjectLines,
		Body:                  n.Body,
		TopAnnouncements:      n.TopAnnouncements,
		AdditionalInfo:        n.AdditionalInfo,
		StartDate:             n.DateRange.Start,
		EndDate:               n.DateRange.End,
		UserInput:             n.UserInput,
		FeedsUsed:             n.FeedsUsed,
		CreatedAt:             n.CreatedAt,
	}
}

type newsletterListResponse struct {
	Items  []newsletterResponse `json:"items"`
	Total  int                  `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (h *Handler) Subscribe(c echo.Context) error {
	tenantID, err := tenantFrom(c)
	if err != nil {
		return h.fail(c, err)
	}

	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	feed, err := h.feeds.Subscribe(c.Request().Context(), tenantID, req.URL, req.Title)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, newFeedResponse(*feed))
}

func (h *Handler) ListFeeds(c echo.Context) error {
	tenantID, err := tenantFrom(c)
	if err != nil {
		return h.fail(c, err)
	}

	feeds, err := h.feeds.List(c.Request().Context(), tenantID)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, lo.Map(feeds, func(f domain.Feed, _ int) feedResponse {
		return newFeedResponse(f)
	}))
}

func (h *Handler) DeleteFeed(c echo.Context) error {
	tenantID, err := tenantFrom(c)
	if err != nil {
		return h.fail(c, err)
	}

	feedID := strings.TrimSpace(c.Param("id"))
	if feedID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "feed id is required")
	}

	if _, err := h.feeds.Delete(c.Request().Context(), tenantID, feedID); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) PrepareNewsletter(c echo.Context) error {
	req, err := h.bindNewsletterRequest(c)
	if err != nil {
		return h.fail(c, err)
	}

	summary, err := h.newsletters.Summarize(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) GenerateNewsletter(c echo.Context) error {
	req, err := h.bindNewsletterRequest(c)
	if err != nil {
		return h.fail(c, err)
	}

	job, err := h.newsletters.Generate(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusAccepted, generateResponse{
		JobID:        job.ID,
		ArticleCount: len(job.Articles),
	})
}

func (h *Handler) ListNewsletters(c echo.Context) error {
	tenantID, err := tenantFrom(c)
	if err != nil {
		return h.fail(c, err)
	}

	var page domain.Page
	err = echo.QueryParamsBinder(c).
		Int("limit", &page.Limit).
		Int("offset", &page.Offset).
		BindError()
	if err != nil {
		return h.fail(c, fmt.Errorf("%w: limit and offset must be integers", domain.ErrValidation))
	}

	result, err := h.history.List(c.Request().Context(), tenantID, page)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, newsletterListResponse{
		Items: lo.Map(result.Items, func(n domain.Newsletter, _ int) newsletterResponse {
			return newNewsletterResponse(n)
		}),
		Total:  result.Total,
		Limit:  result.Page.Limit,
		Offset: result.Page.Offset,
	})
}

func (h *Handler) GetNewsletter(c echo.Context) error {
	tenantID, err := tenantFrom(c)
	if err != nil {
		return h.fail(c, err)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "newsletter id is required")
	}

	newsletter, err := h.history.Get(c.Request().Context(), tenantID, id)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, newNewsletterResponse(*newsletter))
}

func (h *Handler) DeleteNewsletter(c echo.Context) error {
	tenantID, err := tenantFrom(c)
	if err != nil {
		return h.fail(c, err)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "newsletter id is required")
	}

	if err := h.history.Delete(c.Request().Context(), tenantID, id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) bindNewsletterRequest(c echo.Context) (domain.PrepareRequest, error) {
	tenantID, err := tenantFrom(c)
	if err != nil {
		return domain.PrepareRequest{}, err
	}

	var body newsletterRequest
	if err := c.Bind(&body); err != nil {
		return domain.PrepareRequest{}, fmt.Errorf("%w: invalid request body", domain.ErrValidation)
	}

	dateRange, err := parseDateRange(body.StartDate, body.EndDate)
	if err != nil {
		return domain.PrepareRequest{}, err
	}

	return domain.PrepareRequest{
		TenantID:  tenantID,
		FeedIDs:   body.FeedIDs,
		DateRange: dateRange,
		UserInput: strings.TrimSpace(body.UserInput),
	}, nil
}

// fail logs server-side failures and maps err to an HTTP error.
func (h *Handler) fail(c echo.Context, err error) error {
	he := mapDomainError(err)
	if he.Code >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"status", he.Code,
			"error", err,
		)
	}
	return he
}

// parseDateRange accepts RFC 3339 timestamps or plain dates. A plain end
// date covers the whole day.
func parseDateRange(start, end string) (domain.DateRange, error) {
	from, err := parseDate(start, false)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: startDate: %w", domain.ErrValidation, err)
	}
	to, err := parseDate(end, true)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: endDate: %w", domain.ErrValidation, err)
	}
	return domain.DateRange{Start: from, End: to}, nil
}

func parseDate(value string, endOfDay bool) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("is required")
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD or RFC 3339, got %q", value)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
