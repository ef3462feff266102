package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnauthorizedFeedsError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("validate feed ownership: %w", &UnauthorizedFeedsError{FeedIDs: []string{"a", "b"}})

	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.False(t, errors.Is(err, ErrFeedNotFound))
	assert.Contains(t, err.Error(), "a, b")

	var target *UnauthorizedFeedsError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, []string{"a", "b"}, target.FeedIDs)
}

func TestDateRange_ContainsIsInclusive(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	r := DateRange{Start: start, End: end}

	assert.True(t, r.Contains(start))
	assert.True(t, r.Contains(end))
	assert.False(t, r.Contains(start.Add(-time.Nanosecond)))
	assert.False(t, r.Contains(end.Add(time.Nanosecond)))
}
