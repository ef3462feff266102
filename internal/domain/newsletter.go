package domain

import "time"

// PrepareRequest asks for an article set for one tenant.
type PrepareRequest struct {
	TenantID  TenantID
	FeedIDs   []string
	DateRange DateRange
	UserInput string
}

// PreparedSet is the authorized, in-range, non-empty article set handed to generation.
type PreparedSet struct {
	TenantID  TenantID
	FeedIDs   []string
	DateRange DateRange
	Articles  []Article
	Refresh   RefreshStats
}

// PrepareSummary is the metadata-only view of a prepare request.
type PrepareSummary struct {
	FeedsToRefresh int `json:"feedsToRefresh"`
	ArticlesFound  int `json:"articlesFound"`
}

// GenerationJob is the hand-off message to the external newsletter generator.
type GenerationJob struct {
	ID        string              `json:"id"`
	TenantID  TenantID            `json:"tenant_id"`
	FeedIDs   []string            `json:"feed_ids"`
	DateRange DateRange           `json:"date_range"`
	UserInput string              `json:"user_input,omitempty"`
	Articles  []GenerationArticle `json:"articles"`
	CreatedAt time.Time           `json:"created_at"`
}

// GenerationArticle is the subset of an article the generator consumes.
type GenerationArticle struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Summary     string    `json:"summary,omitempty"`
	Author      string    `json:"author,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// NewGenerationArticle picks the best available summary text for the generator.
func NewGenerationArticle(a Article) GenerationArticle {
	ga := GenerationArticle{
		Title:       a.Title,
		Link:        a.Link,
		PublishedAt: a.PublishedAt,
	}
	switch {
	case a.Description != nil && *a.Description != "":
		ga.Summary = *a.Description
	case a.Content != nil:
		ga.Summary = *a.Content
	}
	if a.Author != nil {
		ga.Author = *a.Author
	}
	return ga
}

// GenerationResult is the generator's reply to a GenerationJob.
type GenerationResult struct {
	JobID                 string    `json:"job_id"`
	TenantID              TenantID  `json:"tenant_id"`
	FeedIDs               []string  `json:"feed_ids"`
	DateRange             DateRange `json:"date_range"`
	UserInput             string    `json:"user_input,omitempty"`
	SuggestedTitles       []string  `json:"suggested_titles"`
	SuggestedSubjectLines []string  `json:"suggested_subject_lines"`
	Body                  string    `json:"body"`
	TopAnnouncements      []string  `json:"top_announcements"`
	AdditionalInfo        string    `json:"additional_info,omitempty"`
	CompletedAt           time.Time `json:"completed_at"`
}

// Newsletter is a generated newsletter kept in a tenant's history. Its id is
// the id of the job that produced it.
type Newsletter struct {
	ID                    string
	TenantID              TenantID
	SuggestedTitles       []string
	SuggestedSubjectLines []string
	Body                  string
	TopAnnouncements      []string
	AdditionalInfo        *string
	DateRange             DateRange
	UserInput             *string
	FeedsUsed             []string
	CreatedAt             time.Time
}

// Page selects a window of a newest-first listing.
type Page struct {
	Limit  int
	Offset int
}

// NewsletterPage is one page of a tenant's history plus the total count.
// Page is the window actually applied.
type NewsletterPage struct {
	Items []Newsletter
	Total int
	Page  Page
}
