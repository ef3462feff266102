package domain

import (
	"errors"
	"strings"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrFeedNotFound       = errors.New("feed not found")
	ErrArticleNotFound    = errors.New("article not found")
	ErrNewsletterNotFound = errors.New("newsletter not found")
	ErrDuplicateFeed      = errors.New("feed already registered")
	ErrNoContent          = errors.New("no articles found for the selected feeds and date range")
	ErrUpstreamFetch      = errors.New("upstream fetch failed")
	ErrCleanup            = errors.New("feed cleanup incomplete")
)

// UnauthorizedFeedsError lists the requested feed ids the caller does not own.
type UnauthorizedFeedsError struct {
	FeedIDs []string
}

func (e *UnauthorizedFeedsError) Error() string {
	return "unauthorized: no access to feed(s): " + strings.Join(e.FeedIDs, ", ")
}

func (e *UnauthorizedFeedsError) Is(target error) bool {
	return target == ErrUnauthorized
}
