package domain

import "time"

type TenantID string

// Feed is a tenant's registration of a source URL. Several registrations
// across tenants may point at the same URL.
type Feed struct {
	ID            string     `db:"id"`
	TenantID      TenantID   `db:"tenant_id"`
	URL           string     `db:"url"`
	Title         string     `db:"title"`
	CreatedAt     time.Time  `db:"created_at"`
	LastFetchedAt *time.Time `db:"last_fetched_at"`
	ArticleCount  int        `db:"article_count"`
}

// DateRange is an inclusive publication-time window.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
