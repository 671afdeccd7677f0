package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumalink/profile-service/internal/domain"
)

// TemplateRepository provides read access to the template catalog.
type TemplateRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Template, error)
	List(ctx context.Context) ([]domain.Template, error)
}

type templateRepository struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository instantiates repository.
func NewTemplateRepository(pool *pgxpool.Pool) TemplateRepository {
	return &templateRepository{pool: pool}
}

func (r *templateRepository) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	const query = `
        SELECT id, name, preview_url, min_tier, created_at
        FROM templates WHERE id=$1`
	var tmpl domain.Template
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&tmpl.ID,
		&tmpl.Name,
		&tmpl.PreviewURL,
		&tmpl.MinTier,
		&tmpl.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

func (r *templateRepository) List(ctx context.Context) ([]domain.Template, error) {
	const query = `
        SELECT id, name, preview_url, min_tier, created_at
        FROM templates ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []domain.Template
	for rows.Next() {
		var tmpl domain.Template
		if err := rows.Scan(
			&tmpl.ID,
			&tmpl.Name,
			&tmpl.PreviewURL,
			&tmpl.MinTier,
			&tmpl.CreatedAt,
		); err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}
	return templates, rows.Err()
}
