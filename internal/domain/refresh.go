package domain

import "time"

// FetchOutcome is what a single fetch-and-store reports on success.
// ArticlesWritten counts inserted or changed rows only.
type FetchOutcome struct {
	FeedID          string
	URL             string
	ItemsFetched    int
	ArticlesWritten int
	FetchedAt       time.Time
}

// RefreshResult is the settled outcome of one feed in a refresh batch.
type RefreshResult struct {
	FeedID  string
	Outcome *FetchOutcome
	Err     error
}

// RefreshStats holds the tally of a refresh batch.
type RefreshStats struct {
	Requested       int
	Succeeded       int
	Failed          int
	ArticlesWritten int
	Results         []RefreshResult
	Duration        time.Duration
}

// DeletionStats holds what a reference-counted feed deletion did.
type DeletionStats struct {
	FeedID            string
	Detached          int
	PrimaryReassigned int
	Deleted           int
	Swept             int64
}

// SweepStats holds the result of a janitor pass.
type SweepStats struct {
	OrphansDeleted int64
	CacheEvicted   int64
	Duration       time.Duration
}
