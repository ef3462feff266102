package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"feed_digest/internal/domain"
)

const newsletterColumns = `id, tenant_id, suggested_titles, suggested_subject_lines, body,
	top_announcements, additional_info, start_date, end_date, user_input, feeds_used, created_at`

type newsletterRow struct {
	ID                    string         `db:"id"`
	TenantID              string         `db:"tenant_id"`
	SuggestedTitles       pq.StringArray `db:"suggested_titles"`
	SuggestedSubjectLines pq.StringArray `db:"suggested_subject_lines"`
	Body                  string         `db:"body"`
	TopAnnouncements      pq.StringArray `db:"top_announcements"`
	AdditionalInfo        *string        `db:"additional_info"`
	StartDate             time.Time      `db:"start_date"`
	EndDate               time.Time      `db:"end_date"`
	UserInput             *string        `db:"user_input"`
	FeedsUsed             pq.StringArray `db:"feeds_used"`
	CreatedAt             time.Time      `db:"created_at"`
}

func (r newsletterRow) toDomain() domain.Newsletter {
	return domain.Newsletter{
		ID:                    r.ID,
		TenantID:              domain.TenantID(r.TenantID),
		SuggestedTitles:       []string(r.SuggestedTitles),
		SuggestedSubjectLines: []string(r.SuggestedSubjectLines),
		Body:                  r.Body,
		TopAnnouncements:      []string(r.TopAnnouncements),
		AdditionalInfo:        r.AdditionalInfo,
		DateRange:             domain.DateRange{Start: r.StartDate, End: r.EndDate},
		UserInput:             r.UserInput,
		FeedsUsed:             []string(r.FeedsUsed),
		CreatedAt:             r.CreatedAt,
	}
}

type NewsletterStore struct {
	db *sqlx.DB
}

func NewNewsletterStore(db *sqlx.DB) *NewsletterStore {
	return &NewsletterStore{db: db}
}

// Create stores n. A newsletter whose id is already stored is left as is,
// so a redelivered result is recorded once; created reports which happened.
func (s *NewsletterStore) Create(ctx context.Context, n *domain.Newsletter) (created bool, err error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO newsletters (
			id, tenant_id, suggested_titles, suggested_subject_lines, body,
			top_announcements, additional_info, start_date, end_date, user_input,
			feeds_used, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		ON CONFLICT (id) DO NOTHING`,
		n.ID,
		n.TenantID,
		pq.Array(nonNil(n.SuggestedTitles)),
		pq.Array(nonNil(n.SuggestedSubjectLines)),
		n.Body,
		pq.Array(nonNil(n.TopAnnouncements)),
		n.AdditionalInfo,
		n.DateRange.Start,
		n.DateRange.End,
		n.UserInput,
		pq.Array(nonNil(n.FeedsUsed)),
		n.CreatedAt,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

func (s *NewsletterStore) GetByID(ctx context.Context, id string) (*domain.Newsletter, error) {
	var row newsletterRow
	query := `SELECT ` + newsletterColumns + ` FROM newsletters WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNewsletterNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	n := row.toDomain()
	return &n, nil
}

// ListByTenant returns the tenant's newsletters newest first.
func (s *NewsletterStore) ListByTenant(ctx context.Context, tenantID domain.TenantID, page domain.Page) ([]domain.Newsletter, error) {
	var rows []newsletterRow
	query := `
		SELECT ` + newsletterColumns + `
		FROM newsletters
		WHERE tenant_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, tenantID, page.Limit, page.Offset); err != nil {
		return nil, err
	}

	newsletters := make([]domain.Newsletter, 0, len(rows))
	for _, row := range rows {
		newsletters = append(newsletters, row.toDomain())
	}
	return newsletters, nil
}

func (s *NewsletterStore) CountByTenant(ctx context.Context, tenantID domain.TenantID) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		`SELECT COUNT(*) FROM newsletters WHERE tenant_id = $1`, tenantID)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *NewsletterStore) Delete(ctx context.Context, id string, tenantID domain.TenantID) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM newsletters WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
