package domain

import "time"

// Article is a stored feed entry. SourceFeedIDs is its source set: every
// registration currently referencing it. PrimaryFeedID is always a member.
type Article struct {
	ID            int64     `db:"id"`
	SourceURL     string    `db:"source_url"`
	GUID          string    `db:"guid"`
	PrimaryFeedID string    `db:"primary_feed_id"`
	Title         string    `db:"title"`
	Link          string    `db:"link"`
	Description   *string   `db:"description"`
	Content       *string   `db:"content"`
	Author        *string   `db:"author"`
	PublishedAt   time.Time `db:"published_at"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	SourceFeedIDs []string  `db:"-"`
}

// FetchedItem is a raw entry returned by a feed source before it is stored.
type FetchedItem struct {
	GUID        string
	Title       string
	Link        string
	Description *string
	Content     *string
	Author      *string
	PublishedAt time.Time
}
