package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumalink/profile-service/internal/domain"
)

// SocialLinkRepository encapsulates social link persistence.
type SocialLinkRepository interface {
	ListByProfile(ctx context.Context, profileID string) ([]domain.SocialLink, error)
	ReplaceAll(ctx context.Context, profileID string, links []domain.SocialLink) error
}

type socialLinkRepository struct {
	pool *pgxpool.Pool
}

// NewSocialLinkRepository instantiates repository.
func NewSocialLinkRepository(pool *pgxpool.Pool) SocialLinkRepository {
	return &socialLinkRepository{pool: pool}
}

func (r *socialLinkRepository) ListByProfile(ctx context.Context, profileID string) ([]domain.SocialLink, error) {
	const query = `
        SELECT id, profile_id, platform, url, position, created_at
        FROM social_links WHERE profile_id=$1
        ORDER BY position ASC`
	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.SocialLink
	for rows.Next() {
		var link domain.SocialLink
		if err := rows.Scan(
			&link.ID,
			&link.ProfileID,
			&link.Platform,
			&link.URL,
			&link.Position,
			&link.CreatedAt,
		); err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

// ReplaceAll swaps a profile's link set atomically. Editors submit the
// full ordered list, so delete-and-reinsert inside one transaction keeps
// the set consistent without per-row diffing.
func (r *socialLinkRepository) ReplaceAll(ctx context.Context, profileID string, links []domain.SocialLink) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM social_links WHERE profile_id=$1`, profileID); err != nil {
		return err
	}

	const insert = `
        INSERT INTO social_links (profile_id, platform, url, position)
        VALUES ($1,$2,$3,$4)`
	for i := range links {
		if _, err := tx.Exec(ctx, insert, profileID, links[i].Platform, links[i].URL, i); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
