package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumalink/profile-service/internal/domain"
)

const pageColumns = `id, profile_id, type, slug, title, content, position, published, created_at, updated_at`

var pageConstraints = map[string]error{
	"pages_profile_id_slug_key": ErrDuplicateSlug,
}

// PageRepository encapsulates page persistence.
type PageRepository interface {
	Create(ctx context.Context, page *domain.Page) error
	Update(ctx context.Context, page *domain.Page) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Page, error)
	ListByProfile(ctx context.Context, profileID string, publishedOnly bool) ([]domain.Page, error)
	Reorder(ctx context.Context, profileID string, orderedIDs []string) error
}

type pageRepository struct {
	pool *pgxpool.Pool
}

// NewPageRepository instantiates repository.
func NewPageRepository(pool *pgxpool.Pool) PageRepository {
	return &pageRepository{pool: pool}
}

func (r *pageRepository) Create(ctx context.Context, page *domain.Page) error {
	const query = `
        INSERT INTO pages (profile_id, type, slug, title, content, position, published)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		page.ProfileID,
		page.Type,
		page.Slug,
		page.Title,
		contentOrEmpty(page.Content),
		page.Position,
		page.Published,
	).Scan(&page.ID, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		return duplicateFor(err, pageConstraints)
	}
	return nil
}

func (r *pageRepository) Update(ctx context.Context, page *domain.Page) error {
	const query = `
        UPDATE pages SET type=$1, slug=$2, title=$3, content=$4, position=$5,
            published=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		page.Type,
		page.Slug,
		page.Title,
		contentOrEmpty(page.Content),
		page.Position,
		page.Published,
		page.ID,
	)
	if err != nil {
		return duplicateFor(err, pageConstraints)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func contentOrEmpty(content json.RawMessage) []byte {
	if len(content) == 0 {
		return []byte("{}")
	}
	return []byte(content)
}

func (r *pageRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM pages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *pageRepository) GetByID(ctx context.Context, id string) (*domain.Page, error) {
	var page domain.Page
	if err := r.pool.QueryRow(ctx, `SELECT `+pageColumns+` FROM pages WHERE id=$1`, id).Scan(
		&page.ID,
		&page.ProfileID,
		&page.Type,
		&page.Slug,
		&page.Title,
		&page.Content,
		&page.Position,
		&page.Published,
		&page.CreatedAt,
		&page.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) ListByProfile(ctx context.Context, profileID string, publishedOnly bool) ([]domain.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages WHERE profile_id=$1`
	if publishedOnly {
		query += ` AND published=TRUE`
	}
	query += ` ORDER BY position ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []domain.Page
	for rows.Next() {
		var page domain.Page
		if err := rows.Scan(
			&page.ID,
			&page.ProfileID,
			&page.Type,
			&page.Slug,
			&page.Title,
			&page.Content,
			&page.Position,
			&page.Published,
			&page.CreatedAt,
			&page.UpdatedAt,
		); err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

// Reorder rewrites positions in a single transaction so a failed update
// never leaves a profile half-reordered.
func (r *pageRepository) Reorder(ctx context.Context, profileID string, orderedIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const query = `UPDATE pages SET position=$1, updated_at=NOW() WHERE id=$2 AND profile_id=$3`
	for position, id := range orderedIDs {
		cmd, err := tx.Exec(ctx, query, position, id, profileID)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
	}
	return tx.Commit(ctx)
}
