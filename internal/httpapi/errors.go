package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"feed_digest/internal/domain"
)

// mapDomainError converts a domain error into an echo.HTTPError.
func mapDomainError(err error) *echo.HTTPError {
	var unauthorized *domain.UnauthorizedFeedsError

	switch {
	case errors.As(err, &unauthorized):
		return echo.NewHTTPError(http.StatusForbidden, map[string]any{
			"message": "access denied to feeds",
			"feedIds": unauthorized.FeedIDs,
		})

	case errors.Is(err, domain.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, domain.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")

	case errors.Is(err, domain.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusForbidden, "access denied")

	case errors.Is(err, domain.ErrFeedNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "feed not found")

	case errors.Is(err, domain.ErrNewsletterNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "newsletter not found")

	case errors.Is(err, domain.ErrDuplicateFeed):
		return echo.NewHTTPError(http.StatusConflict, "feed already subscribed")

	case errors.Is(err, domain.ErrNoContent):
		return echo.NewHTTPError(http.StatusUnprocessableEntity,
			"no articles found for the selected feeds and date range, try a different date range")

	case errors.Is(err, domain.ErrUpstreamFetch):
		return echo.NewHTTPError(http.StatusBadGateway, "failed to refresh feeds")

	case errors.Is(err, domain.ErrCleanup):
		return echo.NewHTTPError(http.StatusInternalServerError, "feed cleanup failed, retry the request")

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
