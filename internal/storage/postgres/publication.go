package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"affiliate_bot/internal/domain"
)

type PublicationStore struct {
	db *sqlx.DB
}

func NewPublicationStore(db *sqlx.DB) *PublicationStore {
	return &PublicationStore{db: db}
}

func (s *PublicationStore) Insert(ctx context.Context, rec *domain.PublicationRecord) error {
	query := `
		INSERT INTO publications (
			id, referral_link, product_name, price, category, photo_count, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		rec.ID,
		rec.Submission.ReferralLink,
		rec.Submission.ProductName,
		rec.Submission.Price,
		rec.Submission.Category,
		len(rec.Submission.Photos),
		rec.CreatedAt,
	)
	return err
}

// InsertOutcomes stores one row per destination, keeping the report order in
// the position column.
func (s *PublicationStore) InsertOutcomes(ctx context.Context, publicationID string, report domain.PublishReport) error {
	if len(report) == 0 {
		return nil
	}

	positions := make([]int64, len(report))
	locales := make([]string, len(report))
	addresses := make([]string, len(report))
	succeeded := make([]bool, len(report))
	details := make([]string, len(report))
	for i, o := range report {
		positions[i] = int64(i)
		locales[i] = o.Target.Locale
		addresses[i] = o.Target.Address
		succeeded[i] = o.Succeeded
		details[i] = o.ErrorDetail
	}

	query := `
		INSERT INTO publication_outcomes (
			publication_id, position, locale, address, succeeded, error_detail
		)
		SELECT $1, * FROM unnest($2::int[], $3::text[], $4::text[], $5::bool[], $6::text[])`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		publicationID,
		pq.Array(positions),
		pq.Array(locales),
		pq.Array(addresses),
		pq.Array(succeeded),
		pq.Array(details),
	)
	if err != nil {
		return fmt.Errorf("insert outcomes for %s: %w", publicationID, err)
	}
	return nil
}

func (s *PublicationStore) Recent(ctx context.Context, limit int) ([]domain.PublicationSummary, error) {
	query := `
		SELECT
			p.id,
			p.product_name,
			p.price,
			p.category,
			COUNT(o.publication_id) FILTER (WHERE o.succeeded) AS succeeded,
			COUNT(o.publication_id) FILTER (WHERE NOT o.succeeded) AS failed,
			p.created_at
		FROM publications p
		LEFT JOIN publication_outcomes o ON o.publication_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1`

	var items []domain.PublicationSummary
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &items, query, limit); err != nil {
		return nil, err
	}
	return items, nil
}
